package api

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/myfit/internal/services"
)

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	return services.ParseDay(raw, location)
}

func parseMonthQuery(raw string, now time.Time, location *time.Location) (time.Time, error) {
	if raw == "" {
		return services.MonthStart(services.DateAtLocation(now, location)), nil
	}
	parsed, err := time.ParseInLocation("2006-01", raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return services.MonthStart(parsed), nil
}
