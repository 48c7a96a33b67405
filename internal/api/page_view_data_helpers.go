package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/myfit/internal/models"
	"github.com/terraincognita07/myfit/internal/services"
)

func (handler *Handler) buildDashboardViewData(session Session, language string, messages map[string]string, now time.Time) fiber.Map {
	today := services.DateAtLocation(now, handler.location)
	notices := make([]string, 0, 2)

	records, err := handler.recordService.RecentRecords(session.UserID)
	if err != nil {
		handler.logBackendFailure(session.UserID, "list_recent_records", err)
		notices = append(notices, localizeStatusMessage(messages, backendErrorMessage(err)))
		records = []models.ExerciseRecord{}
	}

	progress, err := handler.goalService.Progress(session.UserID, now, handler.location)
	if err != nil {
		handler.logBackendFailure(session.UserID, "goal_progress", err)
		notices = append(notices, localizeStatusMessage(messages, backendErrorMessage(err)))
		progress = services.GoalProgress{}
	}
	goalType := models.GoalTypeWeeklyMinutes
	if progress.HasGoal && progress.Goal.Type != "" {
		goalType = progress.Goal.Type
	}

	return fiber.Map{
		"Title":          localizedPageTitle(messages, "meta.title.dashboard", "myfit | Dashboard"),
		"Greeting":       session.DisplayName,
		"Today":          today.Format(services.DateLayout),
		"FormattedDate":  localizedDateLabel(language, today),
		"RecentRecords":  records,
		"Progress":       progress,
		"GoalType":       goalType,
		"Notices":        notices,
		"WeekStartLabel": localizedDateLabel(language, services.WeekStart(now, handler.location)),
	}
}

func (handler *Handler) buildCalendarViewData(session Session, language string, messages map[string]string, now time.Time, monthStart time.Time, selectedDate time.Time) fiber.Map {
	notices := make([]string, 0, 1)
	rangeStart, rangeEnd := services.MonthGridRange(monthStart)

	records, err := handler.recordService.RecordsInRange(session.UserID, rangeStart, rangeEnd)
	if err != nil {
		handler.logBackendFailure(session.UserID, "list_month_records", err)
		notices = append(notices, localizeStatusMessage(messages, backendErrorMessage(err)))
		records = []models.ExerciseRecord{}
	}

	cells := services.BuildMonthGrid(monthStart, selectedDate, services.RecordDatePredicate(records))
	prevMonth, nextMonth := calendarAdjacentMonthValues(monthStart)
	selectedRecords := services.FilterRecordsOnDate(records, selectedDate)
	if !selectedInRange(selectedDate, rangeStart, rangeEnd) {
		selectedRecords, err = handler.recordService.RecordsOnDay(session.UserID, selectedDate, handler.location)
		if err != nil {
			handler.logBackendFailure(session.UserID, "list_day_records", err)
			selectedRecords = []models.ExerciseRecord{}
		}
	}

	data := fiber.Map{
		"Title":          localizedPageTitle(messages, "meta.title.calendar", "myfit | Calendar"),
		"MonthLabel":     localizedMonthYear(language, monthStart),
		"MonthValue":     monthStart.Format("2006-01"),
		"PrevMonth":      prevMonth,
		"NextMonth":      nextMonth,
		"WeekdayHeaders": localizedWeekdayHeaders(language),
		"Cells":          cells,
		"Today":          services.DateAtLocation(now, handler.location).Format(services.DateLayout),
		"Notices":        notices,
	}
	for key, value := range handler.buildDayPanelData(language, selectedDate, selectedRecords) {
		data[key] = value
	}
	return data
}

func (handler *Handler) buildDayPanelData(language string, day time.Time, records []models.ExerciseRecord) fiber.Map {
	totalMinutes := 0
	totalCalories := 0
	for _, record := range records {
		totalMinutes += record.DurationMinutes
		totalCalories += record.Calories
	}
	return fiber.Map{
		"SelectedDate":      day.Format(services.DateLayout),
		"SelectedDateLabel": localizedDateLabel(language, day),
		"DayRecords":        records,
		"DayTotalMinutes":   totalMinutes,
		"DayTotalCalories":  totalCalories,
	}
}

func selectedInRange(day time.Time, rangeStart time.Time, rangeEnd time.Time) bool {
	storage := services.CalendarDate(day, day.Location())
	return !storage.Before(rangeStart) && storage.Before(rangeEnd)
}

func (handler *Handler) buildMeasureViewData(session Session, messages map[string]string) fiber.Map {
	snapshot := handler.timers.ForUser(session.UserID).Snapshot()
	return fiber.Map{
		"Title":         localizedPageTitle(messages, "meta.title.measure", "myfit | Measure"),
		"Timer":         snapshot,
		"ExerciseTypes": models.ExerciseTypes(),
		"BodyWeightKg":  services.DefaultBodyWeightKg,
	}
}
