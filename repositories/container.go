package repositories

type Repos struct {
	User         UserRepo
	Timesheet    TimesheetRepo
	Expense      ExpenseRepo
	Invoice      InvoiceRepo
	Onboarding   OnboardingRepo
	Audit        AuditRepo
	Notification NotificationRepo
	Timer        TimerStateStore
}

func New() *Repos {
	return &Repos{
		User:         &DBUserRepo{},
		Timesheet:    &DBTimesheetRepo{},
		Expense:      &DBExpenseRepo{},
		Invoice:      &DBInvoiceRepo{},
		Onboarding:   &DBOnboardingRepo{},
		Audit:        &DBAuditRepo{},
		Notification: &DBNotificationRepo{},
		Timer:        &DBTimerStateStore{},
	}
}
