package common

import (
	"fmt"
	"strings"
	"time"
)

// dateTimeLayouts are accepted on input, tried in order. Clients commonly
// send timestamps without a zone offset; those are interpreted as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateTime is a time.Time that accepts both RFC 3339 and zone-less
// timestamps in request payloads
type DateTime struct {
	time.Time
}

// UnmarshalJSON parses the first matching layout
func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid datetime %q", s)
}

// MarshalJSON renders RFC 3339 UTC
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.UTC().Format(time.RFC3339) + `"`), nil
}
