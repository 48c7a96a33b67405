package services

import "time"

// CalendarCell is one day of a rendered month view.
type CalendarCell struct {
	Date           time.Time
	InCurrentMonth bool
	IsSelected     bool
	HasRecord      bool
}

func (cell CalendarCell) DateString() string {
	return cell.Date.Format(DateLayout)
}

func (cell CalendarCell) Day() int {
	return cell.Date.Day()
}

// BuildMonthGrid returns one cell per day from the Sunday on or before the first
// of reference's month through the last day of that month. Only the leading
// edge is padded; the grid never runs into the next month.
func BuildMonthGrid(reference time.Time, selected time.Time, hasRecord func(time.Time) bool) []CalendarCell {
	monthStart := MonthStart(reference)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))

	cells := make([]CalendarCell, 0, 37)
	for day := gridStart; !day.After(monthEnd); day = day.AddDate(0, 0, 1) {
		cell := CalendarCell{
			Date:           day,
			InCurrentMonth: day.Year() == monthStart.Year() && day.Month() == monthStart.Month(),
			IsSelected:     !selected.IsZero() && SameCalendarDate(day, selected),
		}
		if hasRecord != nil {
			cell.HasRecord = hasRecord(day)
		}
		cells = append(cells, cell)
	}
	return cells
}

// MonthStart is midnight on the first of reference's month, in reference's location.
func MonthStart(reference time.Time) time.Time {
	return time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
}

func NextMonth(reference time.Time) time.Time {
	return MonthStart(reference).AddDate(0, 1, 0)
}

func PreviousMonth(reference time.Time) time.Time {
	return MonthStart(reference).AddDate(0, -1, 0)
}

// MonthGridRange is the half-open storage-date range covered by the grid of reference.
func MonthGridRange(reference time.Time) (time.Time, time.Time) {
	grid := BuildMonthGrid(reference, time.Time{}, nil)
	first := grid[0].Date
	last := grid[len(grid)-1].Date
	from := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return from, to
}
