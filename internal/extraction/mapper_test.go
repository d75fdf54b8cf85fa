package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDocument = `
Name: Ananya Sharma
Age: 29
DOB: 19-04-1997
Gender: Female
Address: 123, MG Road, Bengaluru
Email: Ananya.Sharma@example.com
Phone: +91-9876 543 210
`

func TestExtractFields(t *testing.T) {
	t.Run("labeled document", func(t *testing.T) {
		got := ExtractFields(sampleDocument)
		assert.Equal(t, map[string]string{
			"name":    "Ananya Sharma",
			"age":     "29",
			"dob":     "19-04-1997",
			"gender":  "Female",
			"address": "123, MG Road, Bengaluru",
			"phone":   "+919876543210",
			"email":   "ananya.sharma@example.com",
		}, got)
	})

	t.Run("labels are case insensitive", func(t *testing.T) {
		got := ExtractFields("name: Ramesh Kumar\nMOBILE: 9876543210")
		assert.Equal(t, "Ramesh Kumar", got["name"])
		assert.Equal(t, "9876543210", got["phone"])
	})

	t.Run("full name label preferred", func(t *testing.T) {
		got := ExtractFields("Full Name: Ramesh Kumar")
		assert.Equal(t, "Ramesh Kumar", got["name"])
	})

	t.Run("date of birth label", func(t *testing.T) {
		got := ExtractFields("Date of Birth: 19/04/2001")
		assert.Equal(t, "19/04/2001", got["dob"])
	})

	t.Run("unlabeled text yields nothing", func(t *testing.T) {
		assert.Empty(t, ExtractFields("some unstructured words"))
		assert.Empty(t, ExtractFields(""))
	})
}

func TestMissingFields(t *testing.T) {
	t.Run("complete document", func(t *testing.T) {
		assert.Empty(t, MissingFields(ExtractFields(sampleDocument)))
	})

	t.Run("partial document", func(t *testing.T) {
		extracted := ExtractFields("Name: Ramesh Kumar\nPhone: 9876543210")
		assert.Equal(t, []string{"age", "dob", "gender", "address", "email"},
			MissingFields(extracted))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, ExpectedFields, MissingFields(nil))
	})
}
