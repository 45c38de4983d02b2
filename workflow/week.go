package workflow

import (
	"time"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/models"
)

// WeekTotals are derived figures for one employee week. They gate the submit
// action and feed the summary endpoint; computing them has no side effects.
type WeekTotals struct {
	TotalHours    float64  `json:"total_hours"`
	BillableHours float64  `json:"billable_hours"`
	BillableTotal float64  `json:"billable_total"`
	OvertimeHours float64  `json:"overtime_hours"`
	EntryCount    int      `json:"entry_count"`
	MissingDays   []string `json:"missing_days"`
	LongDays      []string `json:"long_days"`
}

// WeekStart normalizes t to the Monday of its week, midnight UTC.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -(weekday - 1))
}

// ComputeWeekTotals aggregates the entries of the week starting at weekStart.
// Overtime is whatever exceeds the standard week; missing days are the
// Monday-Friday dates with no entry; long days exceed the daily maximum.
func ComputeWeekTotals(entries []models.TimesheetEntry, weekStart time.Time, p config.ApprovalPolicy) WeekTotals {
	totals := WeekTotals{EntryCount: len(entries)}
	perDay := make(map[string]float64)

	for _, e := range entries {
		totals.TotalHours += e.HoursWorked
		if e.IsBillable {
			totals.BillableHours += e.HoursWorked
			if e.BillingAmount != nil {
				totals.BillableTotal += *e.BillingAmount
			}
		}
		perDay[e.WorkDate.UTC().Format("2006-01-02")] += e.HoursWorked
	}

	if totals.TotalHours > p.StandardWeekHours {
		totals.OvertimeHours = totals.TotalHours - p.StandardWeekHours
	}

	start := WeekStart(weekStart)
	for i := 0; i < 5; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		if perDay[day] == 0 {
			totals.MissingDays = append(totals.MissingDays, day)
		}
	}
	for day, hours := range perDay {
		if hours > p.MaxDailyHours {
			totals.LongDays = append(totals.LongDays, day)
		}
	}

	return totals
}

// WeekLocked reports whether new entries are blocked for the week: locked
// once any entry reached SUBMITTED or APPROVED, unless a REJECTED entry
// reopened it for correction.
func WeekLocked(entries []models.TimesheetEntry) bool {
	locked := false
	for _, e := range entries {
		switch e.Status {
		case models.EntryStatusRejected:
			return false
		case models.EntryStatusSubmitted, models.EntryStatusApproved:
			locked = true
		}
	}
	return locked
}
