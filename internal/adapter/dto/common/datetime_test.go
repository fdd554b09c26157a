package common

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateTime_UnmarshalAcceptedLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{`"2024-01-01T09:00:00Z"`, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{`"2024-01-01T09:00:00+02:00"`, time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC)},
		{`"2024-01-01T09:00:00"`, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{`"2024-01-01"`, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		var dt DateTime
		if err := json.Unmarshal([]byte(tc.in), &dt); err != nil {
			t.Fatalf("%s: unmarshal failed: %v", tc.in, err)
		}
		if !dt.Time.Equal(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.in, tc.want, dt.Time)
		}
	}
}

func TestDateTime_UnmarshalRejectsGarbage(t *testing.T) {
	var dt DateTime
	if err := json.Unmarshal([]byte(`"next tuesday"`), &dt); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDateTime_MarshalRendersUTC(t *testing.T) {
	dt := DateTime{Time: time.Date(2024, 1, 1, 7, 0, 0, 0, time.FixedZone("CET", 3600))}
	out, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `"2024-01-01T06:00:00Z"` {
		t.Fatalf("unexpected output %s", out)
	}
}
