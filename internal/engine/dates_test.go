package engine

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseEventDateFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"iso date", "2023-01-15", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"iso timestamp", "2023-01-15T10:30:00", time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"slash date", "15/01/2023", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"padded", "  2023-01-15  ", time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEventDate(tt.input)
			if err != nil {
				t.Fatalf("ParseEventDate(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseEventDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// Timestamps carrying a UTC offset keep their wall-clock reading so they
// compare cleanly against offset-free dates from the same export.
func TestParseEventDateStripsOffset(t *testing.T) {
	got, err := ParseEventDate("2023-01-15T10:30:00+02:00")
	if err != nil {
		t.Fatalf("ParseEventDate: %v", err)
	}

	want := time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want wall-clock %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", got.Location())
	}
}

func TestParseEventDateMissing(t *testing.T) {
	for _, input := range []string{"", "   ", "NULL", "null"} {
		_, err := ParseEventDate(input)
		if !errors.Is(err, ErrNoDate) {
			t.Errorf("ParseEventDate(%q) err = %v, want ErrNoDate", input, err)
		}
	}
}

func TestParseEventDateMalformed(t *testing.T) {
	_, err := ParseEventDate("not a date")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNoDate) {
		t.Error("malformed date should not look like a missing date")
	}
}

func TestDateMarshalsDayPrecision(t *testing.T) {
	d := Date{time.Date(2023, 7, 2, 12, 0, 0, 0, time.UTC)}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `"2023-07-02"` {
		t.Errorf("Marshal = %s, want \"2023-07-02\"", out)
	}
}
