package data

import (
	"testing"
	"time"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestNoteString(t *testing.T) {
	n := NewNote(at(2024, 9, 24, 19, 0), "Meeting")
	if n.String() != "2024-09-24 19:00: Meeting" {
		t.Errorf("unexpected display form: %q", n.String())
	}
}

func TestNoteLine(t *testing.T) {
	n := NewNote(at(2024, 9, 24, 19, 0), "Meeting")
	if n.Line() != "2024-09-24 19:00;Meeting" {
		t.Errorf("unexpected file form: %q", n.Line())
	}
}

func TestNoteAccessors(t *testing.T) {
	when := at(2024, 9, 24, 19, 0)
	n := NewNote(when, "Meeting")
	if !n.When().Equal(when) {
		t.Errorf("expected %v, got %v", when, n.When())
	}
	if n.Content() != "Meeting" {
		t.Errorf("expected 'Meeting', got %q", n.Content())
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-09-24 19:00", true},
		{"2024-01-01 00:00", true},
		{"2024-09-24", false},
		{"24.09.2024 19:00", false},
		{"2024-09-24 19:00:00", false},
		{"not a date", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := ParseTime(tt.input)
		if tt.ok && err != nil {
			t.Errorf("ParseTime(%q): unexpected error: %v", tt.input, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseTime(%q): expected error", tt.input)
		}
	}
}
