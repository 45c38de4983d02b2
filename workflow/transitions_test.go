package workflow

import (
	"testing"

	"github.com/clockwisehq/workforce-go/models"
	"github.com/stretchr/testify/assert"
)

func TestTimesheetTransitions(t *testing.T) {
	assert.True(t, TimesheetTransitions.Allowed("DRAFT", "SUBMITTED"))
	assert.True(t, TimesheetTransitions.Allowed("SUBMITTED", "APPROVED"))
	assert.True(t, TimesheetTransitions.Allowed("SUBMITTED", "REJECTED"))
	assert.True(t, TimesheetTransitions.Allowed("SUBMITTED", "DRAFT"), "request edit reverts to draft")
	assert.True(t, TimesheetTransitions.Allowed("REJECTED", "DRAFT"))

	assert.False(t, TimesheetTransitions.Allowed("DRAFT", "APPROVED"))
	assert.False(t, TimesheetTransitions.Allowed("APPROVED", "DRAFT"), "approved timesheet entries are terminal")
	assert.False(t, TimesheetTransitions.Allowed("APPROVED", "PAID"))
	assert.False(t, TimesheetTransitions.Allowed("REJECTED", "APPROVED"))
}

func TestExpenseTransitions_PaidTerminal(t *testing.T) {
	assert.True(t, ExpenseTransitions.Allowed("APPROVED", "PAID"))
	assert.False(t, ExpenseTransitions.Allowed("PAID", "DRAFT"))
	assert.False(t, ExpenseTransitions.Allowed("SUBMITTED", "PAID"))
}

func TestInvoiceTransitions(t *testing.T) {
	assert.True(t, InvoiceTransitions.Allowed("DRAFT", "SENT"))
	assert.True(t, InvoiceTransitions.Allowed("SENT", "OVERDUE"))
	assert.True(t, InvoiceTransitions.Allowed("OVERDUE", "PAID"))
	assert.True(t, InvoiceTransitions.Allowed("SENT", "CANCELLED"))
	assert.False(t, InvoiceTransitions.Allowed("PAID", "SENT"))
	assert.False(t, InvoiceTransitions.Allowed("CANCELLED", "SENT"))
}

func TestOnboardingTransitions(t *testing.T) {
	assert.True(t, OnboardingTransitions.Allowed("SUBMITTED", "CHANGES_REQUESTED"))
	assert.True(t, OnboardingTransitions.Allowed("CHANGES_REQUESTED", "SUBMITTED"))
	assert.False(t, OnboardingTransitions.Allowed("PENDING", "APPROVED"))
}

func TestEnsureWrapsSentinel(t *testing.T) {
	err := TimesheetTransitions.Ensure(string(models.EntryStatusApproved), string(models.EntryStatusDraft))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, TimesheetTransitions.Ensure("DRAFT", "SUBMITTED"))
}
