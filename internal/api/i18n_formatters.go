package api

import (
	"fmt"
	"strings"
	"time"
)

var monthNames = map[string][]string{
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"ja": {"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
}

var weekdayShortNames = map[string][]string{
	"en": {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	"ja": {"日", "月", "火", "水", "木", "金", "土"},
}

var monthShortNames = map[string][]string{
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

func localizedMonthYear(language string, value time.Time) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	names, ok := monthNames[lang]
	if !ok || len(names) < 12 {
		return value.Format("January 2006")
	}
	month := names[int(value.Month())-1]
	if lang == "ja" {
		return fmt.Sprintf("%d年%s", value.Year(), month)
	}
	return fmt.Sprintf("%s %d", month, value.Year())
}

func localizedDateLabel(language string, value time.Time) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	weekdays, ok := weekdayShortNames[lang]
	if !ok {
		return value.Format("Mon, Jan 2")
	}
	weekday := weekdays[int(value.Weekday())]
	if lang == "ja" {
		return fmt.Sprintf("%d月%d日(%s)", int(value.Month()), value.Day(), weekday)
	}
	months, ok := monthShortNames[lang]
	if !ok {
		return value.Format("Mon, Jan 2")
	}
	return fmt.Sprintf("%s, %s %d", weekday, months[int(value.Month())-1], value.Day())
}

func localizedWeekdayHeaders(language string) []string {
	weekdays, ok := weekdayShortNames[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		weekdays = weekdayShortNames["en"]
	}
	result := make([]string, len(weekdays))
	copy(result, weekdays)
	return result
}
