package workflow

import (
	"testing"
	"time"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestWeekStart(t *testing.T) {
	monday := day("2026-08-24")
	assert.Equal(t, monday, WeekStart(day("2026-08-24")))
	assert.Equal(t, monday, WeekStart(day("2026-08-26")))
	assert.Equal(t, monday, WeekStart(day("2026-08-30")), "sunday belongs to the preceding monday")
}

func TestComputeWeekTotals_Overtime(t *testing.T) {
	var entries []models.TimesheetEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, models.TimesheetEntry{
			WorkDate:    day("2026-08-24").AddDate(0, 0, i),
			HoursWorked: 9,
		})
	}
	totals := ComputeWeekTotals(entries, day("2026-08-24"), config.DefaultPolicy())
	assert.Equal(t, 45.0, totals.TotalHours)
	assert.Equal(t, 5.0, totals.OvertimeHours)
	assert.Empty(t, totals.MissingDays)
}

func TestComputeWeekTotals_NoNegativeOvertime(t *testing.T) {
	entries := []models.TimesheetEntry{
		{WorkDate: day("2026-08-24"), HoursWorked: 8},
	}
	totals := ComputeWeekTotals(entries, day("2026-08-24"), config.DefaultPolicy())
	assert.Equal(t, 0.0, totals.OvertimeHours)
}

func TestComputeWeekTotals_BillableAndMissingDays(t *testing.T) {
	amount := 400.0
	entries := []models.TimesheetEntry{
		{WorkDate: day("2026-08-24"), HoursWorked: 8, IsBillable: true, BillingAmount: &amount},
		{WorkDate: day("2026-08-25"), HoursWorked: 6},
	}
	totals := ComputeWeekTotals(entries, day("2026-08-24"), config.DefaultPolicy())
	assert.Equal(t, 14.0, totals.TotalHours)
	assert.Equal(t, 8.0, totals.BillableHours)
	assert.Equal(t, 400.0, totals.BillableTotal)
	assert.Equal(t, []string{"2026-08-26", "2026-08-27", "2026-08-28"}, totals.MissingDays)
}

func TestComputeWeekTotals_LongDays(t *testing.T) {
	entries := []models.TimesheetEntry{
		{WorkDate: day("2026-08-24"), HoursWorked: 7},
		{WorkDate: day("2026-08-24"), HoursWorked: 6},
	}
	totals := ComputeWeekTotals(entries, day("2026-08-24"), config.DefaultPolicy())
	assert.Equal(t, []string{"2026-08-24"}, totals.LongDays)
}

func TestWeekLocked(t *testing.T) {
	assert.False(t, WeekLocked([]models.TimesheetEntry{
		{Status: models.EntryStatusDraft},
	}))
	assert.True(t, WeekLocked([]models.TimesheetEntry{
		{Status: models.EntryStatusDraft},
		{Status: models.EntryStatusSubmitted},
	}))
	assert.True(t, WeekLocked([]models.TimesheetEntry{
		{Status: models.EntryStatusApproved},
	}))
	// a rejected entry reopens the week for correction
	assert.False(t, WeekLocked([]models.TimesheetEntry{
		{Status: models.EntryStatusApproved},
		{Status: models.EntryStatusRejected},
	}))
}
