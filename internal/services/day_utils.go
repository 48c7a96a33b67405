package services

import "time"

const DateLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// CalendarDate is the storage form of a day: UTC midnight of the calendar date
// value has in location. Stored record dates and query bounds both use it.
func CalendarDate(value time.Time, location *time.Location) time.Time {
	local := DateAtLocation(value, location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := CalendarDate(value, location)
	return start, start.AddDate(0, 0, 1)
}

// WeekStart returns the storage date of the Sunday that opens the week of now.
func WeekStart(now time.Time, location *time.Location) time.Time {
	today := DateAtLocation(now, location)
	return CalendarDate(today.AddDate(0, 0, -int(today.Weekday())), location)
}

func SameCalendarDate(left time.Time, right time.Time) bool {
	leftYear, leftMonth, leftDay := left.Date()
	rightYear, rightMonth, rightDay := right.Date()
	return leftYear == rightYear && leftMonth == rightMonth && leftDay == rightDay
}

func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(DateLayout, raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return DateAtLocation(parsed, location), nil
}
