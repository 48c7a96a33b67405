package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestCalendarPageBuildsLeadingPaddedGrid(t *testing.T) {
	env, _, authCookie := signedInTestApp(t)

	body := pageGET(t, env.app, authCookie, "/calendar?month=2026-10", http.StatusOK)

	if cells := strings.Count(body, `class="calendar-cell`); cells != 35 {
		t.Fatalf("expected 35 cells for October 2026, got %d", cells)
	}
	if outside := strings.Count(body, `class="calendar-cell outside`); outside != 4 {
		t.Fatalf("expected 4 leading days, got %d", outside)
	}
	if !strings.Contains(body, `data-day="2026-09-27"`) {
		t.Fatal("expected grid to start on Sunday 2026-09-27")
	}
	if strings.Contains(body, `data-day="2026-11-01"`) {
		t.Fatal("did not expect trailing days after the end of the month")
	}
	if !strings.Contains(body, "month=2026-09") || !strings.Contains(body, "month=2026-11") {
		t.Fatal("expected previous and next month links")
	}
}

func TestCalendarPageMonthStartingOnSundayHasNoPadding(t *testing.T) {
	env, _, authCookie := signedInTestApp(t)

	body := pageGET(t, env.app, authCookie, "/calendar?month=2026-02", http.StatusOK)
	if cells := strings.Count(body, `class="calendar-cell`); cells != 28 {
		t.Fatalf("expected 28 cells for February 2026, got %d", cells)
	}
	if strings.Contains(body, `class="calendar-cell outside`) {
		t.Fatal("did not expect leading days for February 2026")
	}
}

func TestCalendarPageMarksDaysWithRecords(t *testing.T) {
	env, user, authCookie := signedInTestApp(t)

	createTestRecord(t, env.database, user.ID, "yoga", 20, 70, "2026-09-28")
	createTestRecord(t, env.database, user.ID, "jogging", 30, 245, "2026-10-05")
	createTestRecord(t, env.database, user.ID, "walking", 40, 163, "2026-10-05")
	createTestRecord(t, env.database, user.ID, "running", 25, 263, "2026-10-12")
	createTestRecord(t, env.database, user.ID, "cycling", 50, 350, "2026-11-02")

	other := createTestUser(t, env.database, "other@example.com", "StrongPass1", "Other")
	createTestRecord(t, env.database, other.ID, "swimming", 30, 210, "2026-10-20")

	body := pageGET(t, env.app, authCookie, "/calendar?month=2026-10", http.StatusOK)
	if markers := strings.Count(body, `class="record-marker"`); markers != 3 {
		t.Fatalf("expected 3 days with records, got %d", markers)
	}
}

func TestCalendarPageDefaultsSelectionToToday(t *testing.T) {
	env, _, authCookie := signedInTestApp(t)

	body := pageGET(t, env.app, authCookie, "/calendar", http.StatusOK)
	if !strings.Contains(body, `data-date="2026-10-14"`) {
		t.Fatal("expected today selected in day panel")
	}
	if !strings.Contains(body, "selected today") {
		t.Fatal("expected today's cell to be selected")
	}
	if !strings.Contains(body, "No workouts recorded on this day.") {
		t.Fatal("expected empty day state without records")
	}
}

func TestCalendarPageSelectedDayListsItsRecords(t *testing.T) {
	env, user, authCookie := signedInTestApp(t)

	createTestRecord(t, env.database, user.ID, "jogging", 30, 245, "2026-10-05")
	createTestRecord(t, env.database, user.ID, "walking", 40, 163, "2026-10-05")
	createTestRecord(t, env.database, user.ID, "running", 25, 263, "2026-10-06")

	body := pageGET(t, env.app, authCookie, "/calendar?month=2026-10&day=2026-10-05", http.StatusOK)
	if !strings.Contains(body, `data-date="2026-10-05"`) {
		t.Fatal("expected selected day in day panel")
	}
	if strings.Count(body, `class="record-name"`) != 2 {
		t.Fatal("expected exactly the two records of the selected day")
	}
	if strings.Contains(body, "No workouts recorded on this day.") {
		t.Fatal("did not expect empty state for a day with records")
	}
	if !strings.Contains(body, "70") {
		t.Fatal("expected total minutes for the selected day")
	}
}

func TestCalendarPageDayWithoutMonthMovesGrid(t *testing.T) {
	env, _, authCookie := signedInTestApp(t)

	body := pageGET(t, env.app, authCookie, "/calendar?day=2026-09-28", http.StatusOK)
	if !strings.Contains(body, `data-date="2026-09-28"`) {
		t.Fatal("expected selected day from query")
	}
	if !strings.Contains(body, `data-day="2026-09-30"`) || strings.Contains(body, `data-day="2026-10-14"`) {
		t.Fatal("expected September grid for a September day")
	}
}

func TestCalendarPageRejectsInvalidMonth(t *testing.T) {
	env, _, authCookie := signedInTestApp(t)
	pageGET(t, env.app, authCookie, "/calendar?month=2026-13", http.StatusBadRequest)
}

func TestCalendarDayPanelPartial(t *testing.T) {
	env, user, authCookie := signedInTestApp(t)

	empty := pageGET(t, env.app, authCookie, "/calendar/day/2026-10-12", http.StatusOK)
	if !strings.Contains(empty, "No workouts recorded on this day.") {
		t.Fatal("expected empty day state")
	}
	if strings.Contains(empty, "<html") {
		t.Fatal("expected partial without the page layout")
	}

	createTestRecord(t, env.database, user.ID, "jogging", 30, 245, "2026-10-12")
	body := pageGET(t, env.app, authCookie, "/calendar/day/2026-10-12", http.StatusOK)
	if !strings.Contains(body, "Jogging") {
		t.Fatal("expected localized record name in day panel")
	}

	pageGET(t, env.app, authCookie, "/calendar/day/2026-02-30", http.StatusBadRequest)
}
