package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	if err := json.Unmarshal([]byte(`"3s"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Duration != 3*time.Second {
		t.Fatalf("expected 3s, got %v", d.Duration)
	}
}

func TestDuration_UnmarshalNanoseconds(t *testing.T) {
	var d Duration
	if err := json.Unmarshal([]byte(`1500000000`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Duration != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s, got %v", d.Duration)
	}
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	if err := json.Unmarshal([]byte(`"not-a-duration"`), &d); err == nil {
		t.Fatal("expected error for invalid duration")
	}
	if err := json.Unmarshal([]byte(`true`), &d); err == nil {
		t.Fatal("expected error for boolean duration")
	}
}

func TestTimestamp_UnmarshalVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"rfc3339", `"2024-05-27T23:53:12Z"`},
		{"naive microseconds", `"2024-05-27T23:53:12.123456"`},
		{"naive seconds", `"2024-05-27T23:53:12"`},
		{"space separated", `"2024-05-27 23:53:12.123456"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tc.in), &ts); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ts.Year() != 2024 || ts.Month() != time.May || ts.Day() != 27 {
				t.Fatalf("unexpected date: %v", ts.Time)
			}
		})
	}
}

func TestTimestamp_UnmarshalInvalid(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatal("expected error for unrecognized timestamp")
	}
}

func TestTimestamp_RoundTrip(t *testing.T) {
	orig := Timestamp{Time: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equal(orig.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back.Time, orig.Time)
	}
}

func TestCursor_Format(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	if got := Cursor(ts); got != "2024-05-01T09:00:00Z" {
		t.Fatalf("unexpected cursor: %s", got)
	}
}
