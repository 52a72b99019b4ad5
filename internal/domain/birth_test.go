package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewBirthInput(t *testing.T) {
	in, err := NewBirthInput(1988, 3, 21, 10, 30, GenderFemale)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := time.Date(1988, time.March, 21, 10, 30, 0, 0, time.UTC)
	if !in.Moment().Equal(want) {
		t.Errorf("Expected moment %v, got %v", want, in.Moment())
	}

	if in.Key() != "1988-03-21T10:30/female" {
		t.Errorf("Unexpected key %q", in.Key())
	}

	// Impossible dates
	for _, d := range [][3]int{{2023, 2, 29}, {2024, 4, 31}, {2024, 13, 1}, {2024, 0, 10}, {2024, 1, 0}} {
		_, err = NewBirthInput(d[0], d[1], d[2], 0, 0, GenderMale)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate for %v, got %v", d, err)
		}
	}

	// Leap day in a leap year is fine
	if _, err = NewBirthInput(2024, 2, 29, 0, 0, GenderMale); err != nil {
		t.Errorf("Expected leap day to be valid, got %v", err)
	}

	// Clock out of range
	_, err = NewBirthInput(2024, 1, 1, 24, 0, GenderMale)
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate for hour 24, got %v", err)
	}
	_, err = NewBirthInput(2024, 1, 1, 0, 60, GenderMale)
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate for minute 60, got %v", err)
	}

	// Unknown gender
	_, err = NewBirthInput(2024, 1, 1, 0, 0, Gender("x"))
	if !errors.Is(err, ErrInvalidGender) {
		t.Errorf("Expected ErrInvalidGender, got %v", err)
	}

	// Date is checked before gender
	_, err = NewBirthInput(2023, 2, 29, 0, 0, Gender("x"))
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate first, got %v", err)
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		input string
		want  Gender
	}{
		{"M", GenderMale},
		{"m", GenderMale},
		{" Male ", GenderMale},
		{"F", GenderFemale},
		{"FEMALE", GenderFemale},
	}

	for _, tt := range tests {
		got, err := ParseGender(tt.input)
		if err != nil {
			t.Errorf("ParseGender(%q) returned error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGender(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	for _, bad := range []string{"", "x", "other", "男"} {
		if _, err := ParseGender(bad); !errors.Is(err, ErrInvalidGender) {
			t.Errorf("ParseGender(%q): expected ErrInvalidGender, got %v", bad, err)
		}
	}
}
