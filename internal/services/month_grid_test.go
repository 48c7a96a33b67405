package services

import (
	"testing"
	"time"
)

func TestBuildMonthGridLayout(t *testing.T) {
	tests := []struct {
		name          string
		reference     time.Time
		wantFirst     string
		wantLast      string
		wantLeadCount int
	}{
		{name: "month starting on thursday", reference: time.Date(2026, time.October, 18, 15, 0, 0, 0, time.UTC), wantFirst: "2026-09-27", wantLast: "2026-10-31", wantLeadCount: 4},
		{name: "month starting on sunday", reference: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC), wantFirst: "2026-02-01", wantLast: "2026-02-28", wantLeadCount: 0},
		{name: "leap february", reference: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), wantFirst: "2024-01-28", wantLast: "2024-02-29", wantLeadCount: 4},
		{name: "month starting on saturday", reference: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), wantFirst: "2026-07-26", wantLast: "2026-08-31", wantLeadCount: 6},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cells := BuildMonthGrid(testCase.reference, time.Time{}, nil)
			if len(cells) == 0 {
				t.Fatal("expected non-empty grid")
			}
			if got := cells[0].DateString(); got != testCase.wantFirst {
				t.Fatalf("first cell = %s, want %s", got, testCase.wantFirst)
			}
			if cells[0].Date.Weekday() != time.Sunday {
				t.Fatalf("first cell weekday = %s, want Sunday", cells[0].Date.Weekday())
			}
			if got := cells[len(cells)-1].DateString(); got != testCase.wantLast {
				t.Fatalf("last cell = %s, want %s", got, testCase.wantLast)
			}

			leading := 0
			for index, cell := range cells {
				if index > 0 {
					expected := cells[index-1].Date.AddDate(0, 0, 1)
					if !cell.Date.Equal(expected) {
						t.Fatalf("cell %d = %s, want %s", index, cell.DateString(), expected.Format(DateLayout))
					}
				}
				if !cell.InCurrentMonth {
					leading++
					if cell.Date.Month() == testCase.reference.Month() {
						t.Fatalf("cell %s marked outside current month", cell.DateString())
					}
				} else if leading != testCase.wantLeadCount {
					t.Fatalf("out-of-month cell after in-month cell at %s", cell.DateString())
				}
				if cell.IsSelected || cell.HasRecord {
					t.Fatalf("unexpected annotation on %s: %+v", cell.DateString(), cell)
				}
			}
			if leading != testCase.wantLeadCount {
				t.Fatalf("leading cells = %d, want %d", leading, testCase.wantLeadCount)
			}
		})
	}
}

func TestBuildMonthGridSelectionIgnoresTimeOfDay(t *testing.T) {
	reference := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	selected := time.Date(2026, time.October, 14, 23, 59, 0, 0, time.UTC)

	cells := BuildMonthGrid(reference, selected, nil)
	selectedCount := 0
	for _, cell := range cells {
		if cell.IsSelected {
			selectedCount++
			if cell.DateString() != "2026-10-14" {
				t.Fatalf("selected cell = %s, want 2026-10-14", cell.DateString())
			}
		}
	}
	if selectedCount != 1 {
		t.Fatalf("expected exactly one selected cell, got %d", selectedCount)
	}
}

func TestBuildMonthGridMarksRecordDays(t *testing.T) {
	reference := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	marked := map[string]bool{"2026-09-28": true, "2026-10-05": true}

	cells := BuildMonthGrid(reference, time.Time{}, func(day time.Time) bool {
		return marked[day.Format(DateLayout)]
	})
	for _, cell := range cells {
		if cell.HasRecord != marked[cell.DateString()] {
			t.Fatalf("HasRecord for %s = %t", cell.DateString(), cell.HasRecord)
		}
	}
}

func TestBuildMonthGridIsDeterministic(t *testing.T) {
	reference := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	first := BuildMonthGrid(reference, reference, nil)
	second := BuildMonthGrid(reference, reference, nil)
	if len(first) != len(second) {
		t.Fatalf("grid length changed: %d vs %d", len(first), len(second))
	}
	for index := range first {
		if first[index] != second[index] {
			t.Fatalf("cell %d differs: %+v vs %+v", index, first[index], second[index])
		}
	}
}

func TestMonthNavigationNormalizesToFirst(t *testing.T) {
	reference := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)

	if got := NextMonth(reference).Format(DateLayout); got != "2026-02-01" {
		t.Fatalf("NextMonth = %s, want 2026-02-01", got)
	}
	if got := PreviousMonth(reference).Format(DateLayout); got != "2025-12-01" {
		t.Fatalf("PreviousMonth = %s, want 2025-12-01", got)
	}
	if got := NextMonth(PreviousMonth(reference)).Format(DateLayout); got != "2026-01-01" {
		t.Fatalf("round trip = %s, want 2026-01-01", got)
	}
}

func TestMonthGridRangeCoversLeadingDays(t *testing.T) {
	location := time.FixedZone("JST", 9*60*60)
	from, to := MonthGridRange(time.Date(2026, time.October, 18, 0, 0, 0, 0, location))

	if from != time.Date(2026, time.September, 27, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("from = %s", from)
	}
	if to != time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("to = %s", to)
	}
}
