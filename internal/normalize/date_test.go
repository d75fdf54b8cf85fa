package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dmy dashes", "19-04-2001", "2001-04-19"},
		{"dmy slashes", "19/04/2001", "2001-04-19"},
		{"dmy dots", "19.04.2001", "2001-04-19"},
		{"iso", "2001-04-19", "2001-04-19"},
		{"two digit year", "19-04-01", "2001-04-19"},
		{"two digit year nineties", "19-04-99", "1999-04-19"},
		{"short month name", "19 Apr 2001", "2001-04-19"},
		{"long month name", "19 April 2001", "2001-04-19"},
		{"us month name", "Apr 19, 2001", "2001-04-19"},
		{"mdy when day over twelve", "04-19-2001", "2001-04-19"},
		{"single digit fields", "1/4/2001", "2001-04-01"},
		{"surrounding space", "  19-04-2001  ", "2001-04-19"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}

	t.Run("rejects invalid calendar dates", func(t *testing.T) {
		for _, in := range []string{"31-02-2001", "32-01-2001", "19-13-2001"} {
			_, ok := ParseDate(in)
			assert.False(t, ok, in)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, in := range []string{"", "   ", "not a date", "12", "1-2"} {
			_, ok := ParseDate(in)
			assert.False(t, ok, in)
		}
	})

	t.Run("day first wins when ambiguous", func(t *testing.T) {
		got, ok := ParseDate("04-05-2001")
		require.True(t, ok)
		assert.Equal(t, time.May, got.Month())
		assert.Equal(t, 4, got.Day())
	})
}

func TestDate(t *testing.T) {
	assert.Equal(t, "2001-04-19", Date("19/04/2001"))
	assert.Equal(t, "", Date("not a date"))
	assert.Equal(t, "", Date(""))
}

func FuzzParseDate(f *testing.F) {
	for _, seed := range []string{
		"19-04-2001", "2001-04-19", "19 Apr 2001", "04/19/2001",
		"31-02-2001", "not a date", "", "९-४-२००१",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got, ok := ParseDate(s)
		if !ok {
			return
		}
		// Anything accepted must survive an ISO round trip.
		iso := got.Format("2006-01-02")
		again, ok2 := ParseDate(iso)
		if !ok2 {
			t.Fatalf("iso form %q of %q did not parse", iso, s)
		}
		if !again.Equal(got) {
			t.Fatalf("round trip changed %q: %v vs %v", s, got, again)
		}
	})
}
