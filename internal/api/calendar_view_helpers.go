package api

import (
	"strings"
	"time"

	"github.com/terraincognita07/myfit/internal/services"
)

// resolveCalendarMonthAndSelectedDate defaults the selection to today. A day
// without a month query also moves the grid to that day's month.
func resolveCalendarMonthAndSelectedDate(monthQueryRaw string, selectedDayRaw string, now time.Time, location *time.Location) (time.Time, time.Time, error) {
	monthQuery := strings.TrimSpace(monthQueryRaw)
	activeMonth, err := parseMonthQuery(monthQuery, now, location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	selectedDate := services.DateAtLocation(now, location)
	selectedDayRaw = strings.TrimSpace(selectedDayRaw)
	if selectedDayRaw != "" {
		if selectedDay, parseErr := parseDayParam(selectedDayRaw, location); parseErr == nil {
			selectedDate = selectedDay
			if monthQuery == "" {
				activeMonth = services.MonthStart(selectedDay)
			}
		}
	}

	return activeMonth, selectedDate, nil
}

func calendarAdjacentMonthValues(monthStart time.Time) (string, string) {
	return services.PreviousMonth(monthStart).Format("2006-01"), services.NextMonth(monthStart).Format("2006-01")
}
