package handler

import (
	dErrors "idverify/pkg/domain-errors"
)

// maxFieldLength bounds every submitted value; OCR output beyond this is
// noise, not data.
const maxFieldLength = 2048

// VerifyRequest is the HTTP request body for POST /verification/verify.
// Keys inside both maps may use any of the accepted aliases; the service
// canonicalizes them. Weights optionally override the default field weights
// for this request.
type VerifyRequest struct {
	Extracted map[string]string  `json:"extracted"`
	Stated    map[string]string  `json:"stated"`
	Weights   map[string]float64 `json:"weights,omitempty"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *VerifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Extracted) == 0 {
		return dErrors.New(dErrors.CodeValidation, "extracted is required")
	}
	if len(r.Stated) == 0 {
		return dErrors.New(dErrors.CodeValidation, "stated is required")
	}
	if err := validateFieldMap("extracted", r.Extracted); err != nil {
		return err
	}
	return validateFieldMap("stated", r.Stated)
}

func validateFieldMap(name string, fields map[string]string) error {
	if len(fields) > 50 {
		return dErrors.New(dErrors.CodeValidation, name+" has too many keys")
	}
	for key, value := range fields {
		if len(key) > 64 {
			return dErrors.New(dErrors.CodeValidation, name+" contains an oversized key")
		}
		if len(value) > maxFieldLength {
			return dErrors.New(dErrors.CodeValidation, name+"."+key+" exceeds the maximum length")
		}
	}
	return nil
}
