package handler

import (
	"strings"

	dErrors "idverify/pkg/domain-errors"
)

// maxDocumentLength bounds submitted OCR text.
const maxDocumentLength = 64 * 1024

// ExtractRequest is the HTTP request body for POST /extraction/extract-fields.
type ExtractRequest struct {
	RawText string `json:"raw_text"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ExtractRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.RawText) == "" {
		return dErrors.New(dErrors.CodeValidation, "raw_text is required")
	}
	if len(r.RawText) > maxDocumentLength {
		return dErrors.New(dErrors.CodeValidation, "raw_text exceeds the maximum length")
	}
	return nil
}

// MapAndVerifyRequest is the HTTP request body for POST /map-and-verify:
// extract fields from the document text, then verify them against the
// caller-stated values in one call.
type MapAndVerifyRequest struct {
	RawText string            `json:"raw_text"`
	Stated  map[string]string `json:"stated"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *MapAndVerifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.RawText) == "" {
		return dErrors.New(dErrors.CodeValidation, "raw_text is required")
	}
	if len(r.RawText) > maxDocumentLength {
		return dErrors.New(dErrors.CodeValidation, "raw_text exceeds the maximum length")
	}
	if len(r.Stated) == 0 {
		return dErrors.New(dErrors.CodeValidation, "stated is required")
	}
	return nil
}
