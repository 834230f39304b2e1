package web

import (
	"testing"
	"time"
)

func TestTaskFormInput(t *testing.T) {
	form := taskForm{
		Title:       "Ship",
		Start:       "2024-06-10T09:30",
		EndDate:     "2024-06-12",
		Contributor: "3",
	}

	input, errs := form.input()
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if input.Start.Hour() != 9 || input.Start.Minute() != 30 {
		t.Errorf("start = %v", input.Start)
	}
	if input.EndDate.Day() != 12 {
		t.Errorf("end date = %v", input.EndDate)
	}
	if input.ContributorID != 3 {
		t.Errorf("contributor id = %d", input.ContributorID)
	}
}

func TestTaskFormInputMalformed(t *testing.T) {
	form := taskForm{
		Title:       "Ship",
		Start:       "yesterday",
		EndDate:     "06/12/2024",
		Contributor: "ada",
	}

	_, errs := form.input()
	if errs == nil {
		t.Fatal("expected parse errors")
	}
	want := map[string]string{
		"start":       "Enter a valid date and time.",
		"end_date":    "Enter a valid date.",
		"contributor": "Select a valid contributor.",
	}
	for field, msg := range want {
		if got := errs.Fields[field]; got != msg {
			t.Errorf("field %s = %q, want %q", field, got, msg)
		}
	}
}

func TestTaskFormInputEmptyFieldsSkipParsing(t *testing.T) {
	_, errs := taskForm{}.input()
	if errs != nil {
		t.Fatalf("empty form produced parse errors: %v", errs)
	}
}

func TestParseDateTimeAcceptsSeconds(t *testing.T) {
	got, err := parseDateTime("2024-06-10T09:30:45")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Second() != 45 {
		t.Errorf("second = %d, want 45", got.Second())
	}
}

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2024, 6, 10, 15, 30, 0, 0, time.Local)

	got := parseDateOr("2024-01-05", fallback)
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parsed = %v, want %v", got, want)
	}

	got = parseDateOr("garbage", fallback)
	want = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("fallback = %v, want %v", got, want)
	}
}

func TestParsePage(t *testing.T) {
	cases := map[string]int{"": 1, "abc": 1, "0": 1, "-2": 1, "3": 3}
	for raw, want := range cases {
		if got := parsePage(raw); got != want {
			t.Errorf("parsePage(%q) = %d, want %d", raw, got, want)
		}
	}
}
