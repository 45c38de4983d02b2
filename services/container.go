package services

import (
	"github.com/clockwisehq/workforce-go/events"
	"github.com/clockwisehq/workforce-go/repositories"
	"go.uber.org/zap"
)

type Services struct {
	User       *UserService
	Timesheet  *TimesheetService
	Expense    *ExpenseService
	Invoice    *InvoiceService
	Onboarding *OnboardingService
	Reminder   *ReminderService
	Report     *ReportService
	Timer      *TimerService
	Audit      *AuditService
}

func New(repos *repositories.Repos, logger *zap.Logger, hub *events.Hub) *Services {
	audit := NewAuditService(repos)
	return &Services{
		User:       NewUserService(repos),
		Timesheet:  NewTimesheetService(repos, logger, hub, audit),
		Expense:    NewExpenseService(repos, logger, hub, audit),
		Invoice:    NewInvoiceService(repos, audit),
		Onboarding: NewOnboardingService(repos, audit),
		Reminder:   NewReminderService(repos, NewHTTPNotifier(), logger),
		Report:     NewReportService(repos),
		Timer:      NewTimerService(repos),
		Audit:      audit,
	}
}
