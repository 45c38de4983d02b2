package services

import (
	"strconv"
	"time"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/utils"
	"github.com/clockwisehq/workforce-go/workflow"
)

// csvHeader is the frozen export layout. Downstream imports parse by column
// position; do not reorder or rename.
var csvHeader = []string{"Date", "Employee", "Project", "Task", "Hours", "Billable", "Amount", "Status", "Description"}

type WeekSummary struct {
	WeekStart string              `json:"week_start"`
	Locked    bool                `json:"locked"`
	Totals    workflow.WeekTotals `json:"totals"`
}

type ReportService struct {
	Repos *repositories.Repos
}

func NewReportService(repos *repositories.Repos) *ReportService {
	return &ReportService{Repos: repos}
}

func (s *ReportService) WeekSummary(userID uint, weekStart time.Time) (WeekSummary, error) {
	week := workflow.WeekStart(weekStart)
	entries, err := s.Repos.Timesheet.ListByUserWeek(userID, week)
	if err != nil {
		return WeekSummary{}, err
	}
	return WeekSummary{
		WeekStart: week.Format("2006-01-02"),
		Locked:    workflow.WeekLocked(entries),
		Totals:    workflow.ComputeWeekTotals(entries, week, config.Policy),
	}, nil
}

// ExportWeekCSV renders the user's week as CSV: header plus one line per
// entry, LF separated with no trailing newline.
func (s *ReportService) ExportWeekCSV(userID uint, weekStart time.Time) (string, string, error) {
	week := workflow.WeekStart(weekStart)
	entries, err := s.Repos.Timesheet.ListByUserWeek(userID, week)
	if err != nil {
		return "", "", err
	}

	rows := [][]string{csvHeader}
	for _, e := range entries {
		rows = append(rows, csvRow(e))
	}

	filename := "timesheet-" + week.Format("2006-01-02") + ".csv"
	return utils.BuildCSV(rows), filename, nil
}

func csvRow(e models.TimesheetEntry) []string {
	employee := ""
	if e.User != nil {
		employee = e.User.Username
		if e.User.FullName != nil && *e.User.FullName != "" {
			employee = *e.User.FullName
		}
	}
	project := ""
	if e.Project != nil {
		project = e.Project.ProjectName
	}
	task := ""
	if e.Task != nil {
		task = e.Task.TaskName
	}
	billable := "no"
	if e.IsBillable {
		billable = "yes"
	}
	amount := ""
	if e.BillingAmount != nil {
		amount = strconv.FormatFloat(*e.BillingAmount, 'f', 2, 64)
	}

	return []string{
		e.WorkDate.UTC().Format("2006-01-02"),
		employee,
		project,
		task,
		strconv.FormatFloat(e.HoursWorked, 'f', -1, 64),
		billable,
		amount,
		string(e.Status),
		e.Description,
	}
}
