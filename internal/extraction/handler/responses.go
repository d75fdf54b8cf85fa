package handler

// ExtractResponse is the HTTP response for POST /extraction/extract-fields.
type ExtractResponse struct {
	Fields  map[string]string `json:"fields"`
	Missing []string          `json:"missing_fields"`
}

// NewExtractResponse normalizes nils so clients always see arrays and maps.
func NewExtractResponse(fields map[string]string, missing []string) *ExtractResponse {
	if fields == nil {
		fields = map[string]string{}
	}
	if missing == nil {
		missing = []string{}
	}
	return &ExtractResponse{Fields: fields, Missing: missing}
}
