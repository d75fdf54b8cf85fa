package verification

import "strings"

// fieldAliases maps common upstream key spellings to canonical fields. OCR
// backends and client forms disagree on naming; the service accepts all of
// these at the boundary.
var fieldAliases = map[string]Field{
	"name":       FieldName,
	"full_name":  FieldName,
	"fullname":   FieldName,
	"given_name": FieldName,
	"first_name": FieldName,
	"applicant":  FieldName,

	"dob":           FieldDOB,
	"date_of_birth": FieldDOB,
	"birth_date":    FieldDOB,
	"birthdate":     FieldDOB,

	"phone":        FieldPhone,
	"phone_no":     FieldPhone,
	"phone_number": FieldPhone,
	"phonenumber":  FieldPhone,
	"mobile":       FieldPhone,
	"mobile_no":    FieldPhone,
	"contact":      FieldPhone,

	"address":   FieldAddress,
	"addr":      FieldAddress,
	"residence": FieldAddress,

	"gender": FieldGender,
	"sex":    FieldGender,
}

// CanonicalizeRecord maps loosely keyed input onto a Record. Keys are matched
// case-insensitively with spaces and hyphens treated as underscores. Unknown
// keys are dropped; a non-empty value is never overwritten by a blank alias.
func CanonicalizeRecord(raw map[string]string) Record {
	rec := make(Record, len(Fields))
	for key, value := range raw {
		field, ok := fieldAliases[canonicalKey(key)]
		if !ok {
			continue
		}
		if strings.TrimSpace(rec[field]) == "" {
			rec[field] = value
		}
	}
	return rec
}

func canonicalKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.ReplaceAll(k, " ", "_")
	k = strings.ReplaceAll(k, "-", "_")
	return k
}
