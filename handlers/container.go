package handlers

import (
	"github.com/clockwisehq/workforce-go/events"
	"github.com/clockwisehq/workforce-go/services"
)

type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Timesheet  *TimesheetHandler
	Expense    *ExpenseHandler
	Invoice    *InvoiceHandler
	Onboarding *OnboardingHandler
	Reminder   *ReminderHandler
	Report     *ReportHandler
	Timer      *TimerHandler
	Audit      *AuditHandler
	WS         *WSHandler
}

func New(svc *services.Services, hub *events.Hub) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.User),
		User:       NewUserHandler(svc.User),
		Timesheet:  NewTimesheetHandler(svc.Timesheet),
		Expense:    NewExpenseHandler(svc.Expense),
		Invoice:    NewInvoiceHandler(svc.Invoice),
		Onboarding: NewOnboardingHandler(svc.Onboarding),
		Reminder:   NewReminderHandler(svc.Reminder),
		Report:     NewReportHandler(svc.Report),
		Timer:      NewTimerHandler(svc.Timer),
		Audit:      NewAuditHandler(svc.Audit),
		WS:         NewWSHandler(hub),
	}
}
