package networth

import (
	"testing"
	"time"
)

func TestSampleInterval(t *testing.T) {
	tests := []struct {
		span, want int
	}{
		{30, 1},
		{89, 1},
		{90, 3},
		{364, 3},
		{365, 7},
		{729, 7},
		{730, 14},
		{3000, 14},
	}
	for _, tt := range tests {
		if got := sampleInterval(tt.span); got != tt.want {
			t.Errorf("sampleInterval(%d) = %d, want %d", tt.span, got, tt.want)
		}
	}
}

func TestBuildAxis_Empty(t *testing.T) {
	if got := buildAxis(nil, NewDate(2025, time.June, 1), Date{}); got != nil {
		t.Errorf("buildAxis(no investments) = %v, want nil", got)
	}
}

func TestBuildAxis_HistoricalOnly(t *testing.T) {
	today := NewDate(2025, time.June, 30)
	start := NewDate(2025, time.June, 1)
	axis := buildAxis([]Date{start}, today, Date{})

	if axis[0].on != start || axis[0].class != classHistorical {
		t.Fatalf("axis starts with %v (%v), want %v historical", axis[0].on, axis[0].class, start)
	}
	last := axis[len(axis)-1]
	if last.on != today || last.class != classToday {
		t.Fatalf("axis ends with %v (%v), want today", last.on, last.class)
	}
	// short span samples daily
	if len(axis) != 30 {
		t.Errorf("len(axis) = %d, want 30 daily points", len(axis))
	}
	for i := 1; i < len(axis); i++ {
		if !axis[i-1].on.Before(axis[i].on) {
			t.Fatalf("axis not strictly increasing at %d: %v then %v", i, axis[i-1].on, axis[i].on)
		}
	}
}

func TestBuildAxis_InvestmentDatesForced(t *testing.T) {
	today := NewDate(2026, time.June, 1)
	start := NewDate(2023, time.January, 1)
	mid := NewDate(2024, time.May, 17) // off the 14-day grid
	axis := buildAxis([]Date{start, mid}, today, Date{})

	found := false
	for _, pt := range axis {
		if pt.on == mid {
			found = true
		}
	}
	if !found {
		t.Errorf("investment date %v missing from the axis", mid)
	}
}

func TestBuildAxis_Projection(t *testing.T) {
	today := NewDate(2025, time.June, 15)
	end := NewDate(2025, time.December, 20)
	start := NewDate(2025, time.June, 1)
	axis := buildAxis([]Date{start}, today, end)

	// today pivots the projection, yesterday closes the historical segment
	var classes []pointClass
	var dates []Date
	for _, pt := range axis {
		classes = append(classes, pt.class)
		dates = append(dates, pt.on)
	}
	last := axis[len(axis)-1]
	if last.on != end || last.class != classProjected {
		t.Fatalf("axis ends with %v (%v), want the exact end date", last.on, last.class)
	}
	seenToday := false
	for i, c := range classes {
		switch c {
		case classToday:
			if dates[i] != today {
				t.Errorf("today point at %v", dates[i])
			}
			seenToday = true
		case classHistorical:
			if seenToday {
				t.Errorf("historical point %v after today", dates[i])
			}
			if !dates[i].Before(today) {
				t.Errorf("historical point %v not before today", dates[i])
			}
		case classProjected:
			if !seenToday {
				t.Errorf("projected point %v before today", dates[i])
			}
		}
	}
	// projection samples the first of each month
	wantMonths := []Date{
		NewDate(2025, time.July, 1),
		NewDate(2025, time.August, 1),
		NewDate(2025, time.September, 1),
		NewDate(2025, time.October, 1),
		NewDate(2025, time.November, 1),
		NewDate(2025, time.December, 1),
	}
	for _, want := range wantMonths {
		found := false
		for _, d := range dates {
			if d == want {
				found = true
			}
		}
		if !found {
			t.Errorf("projection month %v missing from the axis", want)
		}
	}
}

func TestBuildAxis_ProjectionInPast(t *testing.T) {
	today := NewDate(2025, time.June, 15)
	end := NewDate(2025, time.January, 1) // already behind us
	axis := buildAxis([]Date{NewDate(2025, time.June, 1)}, today, end)
	for _, pt := range axis {
		if pt.class == classProjected {
			t.Fatalf("past end date should not produce projected points, got %v", pt.on)
		}
	}
}
