package networth

import "sort"

// pointClass tags an axis date with the regime its value is computed in.
type pointClass int

const (
	classHistorical pointClass = iota
	classToday
	classProjected
)

func (c pointClass) String() string {
	switch c {
	case classHistorical:
		return "historical"
	case classToday:
		return "today"
	case classProjected:
		return "projected"
	}
	return "unknown"
}

type axisPoint struct {
	on    Date
	class pointClass
}

// sampleInterval returns the distance in days between sampled historical
// points, adapting to the span so that long histories stay chartable.
func sampleInterval(spanDays int) int {
	switch {
	case spanDays < 90:
		return 1
	case spanDays < 365:
		return 3
	case spanDays < 730:
		return 7
	default:
		return 14
	}
}

// buildAxis builds the sorted date axis for a series: a sampled historical
// segment from the earliest investment date, the today pivot, and, when an
// end date is set, first-of-month projection dates through the exact end.
// Investment dates are always included so purchases show as steps even at
// coarse sampling.
func buildAxis(investmentDates []Date, today, end Date) []axisPoint {
	if len(investmentDates) == 0 {
		return nil
	}
	projecting := !end.IsZero() && end.After(today)

	start := investmentDates[0]
	histEnd := today
	if projecting {
		// Today belongs to the projection segment as its pivot.
		histEnd = today.Add(-1)
	}

	days := make(map[Date]bool)
	if !start.After(histEnd) {
		interval := sampleInterval(histEnd.DaysSince(start))
		for d := start; !d.After(histEnd); d = d.Add(interval) {
			days[d] = true
		}
		days[histEnd] = true
		for _, d := range investmentDates {
			if !d.After(histEnd) {
				days[d] = true
			}
		}
	}
	days[today] = true
	if projecting {
		for d := today.StartOfMonth().AddMonths(1); d.Before(end); d = d.AddMonths(1) {
			if d.After(today) {
				days[d] = true
			}
		}
		days[end] = true
	}

	axis := make([]axisPoint, 0, len(days))
	for d := range days {
		p := axisPoint{on: d}
		switch {
		case d == today:
			p.class = classToday
		case d.After(today):
			p.class = classProjected
		}
		axis = append(axis, p)
	}
	sort.Slice(axis, func(i, j int) bool { return axis[i].on.Before(axis[j].on) })
	return axis
}
