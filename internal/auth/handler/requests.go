package handler

import (
	dErrors "idverify/pkg/domain-errors"
)

// TokenRequest is the HTTP request body for POST /auth/token. Only the
// client_credentials grant is supported.
type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *TokenRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.GrantType != "" && r.GrantType != "client_credentials" {
		return dErrors.New(dErrors.CodeValidation, "unsupported grant_type")
	}
	if r.ClientID == "" {
		return dErrors.New(dErrors.CodeValidation, "client_id is required")
	}
	if r.ClientSecret == "" {
		return dErrors.New(dErrors.CodeValidation, "client_secret is required")
	}
	return nil
}
