package handler

import (
	dErrors "idverify/pkg/domain-errors"
)

const maxFieldLength = 2048

// SubmitRequest is the HTTP request body for POST /registration/submit.
// Threshold is optional; zero means the service default applies.
type SubmitRequest struct {
	Extracted map[string]string `json:"extracted"`
	Stated    map[string]string `json:"stated"`
	Threshold float64           `json:"threshold,omitempty"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Extracted) == 0 {
		return dErrors.New(dErrors.CodeValidation, "extracted is required")
	}
	if len(r.Stated) == 0 {
		return dErrors.New(dErrors.CodeValidation, "stated is required")
	}
	if r.Threshold < 0 || r.Threshold > 1 {
		return dErrors.New(dErrors.CodeValidation, "threshold must be within [0,1]")
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
