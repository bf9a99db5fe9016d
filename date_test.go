package networth

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-03-14", NewDate(2025, time.March, 14)},
		{"2024-02-29", NewDate(2024, time.February, 29)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Fatalf("ParseDate(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDate_Relative(t *testing.T) {
	today := Today()
	tests := []struct {
		in   string
		want Date
	}{
		{"0d", today},
		{"+1d", today.Add(1)},
		{"-1d", today.Add(-1)},
		{"+2w", today.Add(14)},
		{"+3m", today.AddMonths(3)},
		{"+5y", NewDate(today.Year()+5, today.Month(), today.Day())},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Fatalf("ParseDate(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "14/03/2025", "2025-13-01", "+d", "1x"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) expected an error", in)
		}
	}
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2025, time.January, 31)
	if got, want := d.Add(1), NewDate(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
	if got, want := d.AddMonths(1), NewDate(2025, time.March, 3); got != want {
		t.Errorf("AddMonths(1) = %v, want %v", got, want)
	}
	if got, want := d.StartOfMonth(), NewDate(2025, time.January, 1); got != want {
		t.Errorf("StartOfMonth() = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, time.March, 1).DaysSince(NewDate(2025, time.February, 1)), 28; got != want {
		t.Errorf("DaysSince() = %v, want %v", got, want)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(NewDate(2025, time.January, 10), 100)
	h.Append(NewDate(2025, time.January, 20), 110)

	if _, ok := h.ValueAsOf(NewDate(2025, time.January, 9)); ok {
		t.Error("ValueAsOf before the first entry should not find a value")
	}
	if got, _ := h.ValueAsOf(NewDate(2025, time.January, 10)); got != 100 {
		t.Errorf("ValueAsOf on an entry = %v, want 100", got)
	}
	if got, _ := h.ValueAsOf(NewDate(2025, time.January, 15)); got != 100 {
		t.Errorf("ValueAsOf between entries = %v, want 100", got)
	}
	if got, _ := h.ValueAsOf(NewDate(2025, time.June, 1)); got != 110 {
		t.Errorf("ValueAsOf after the last entry = %v, want 110", got)
	}
}

func TestHistory_ValueWithin(t *testing.T) {
	var h History[float64]
	h.Append(NewDate(2025, time.January, 10), 100)

	// 6 days after the entry: still within the lookback.
	if got, ok := h.ValueWithin(NewDate(2025, time.January, 16), 6); !ok || got != 100 {
		t.Errorf("ValueWithin(+6d) = %v, %v, want 100, true", got, ok)
	}
	// 7 days after: too old.
	if _, ok := h.ValueWithin(NewDate(2025, time.January, 17), 6); ok {
		t.Error("ValueWithin(+7d) should not find a value")
	}
	// before the entry: never found.
	if _, ok := h.ValueWithin(NewDate(2025, time.January, 9), 6); ok {
		t.Error("ValueWithin before the entry should not find a value")
	}
}
