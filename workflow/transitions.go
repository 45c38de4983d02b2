// Package workflow holds the approval lifecycle rules shared by timesheets,
// expense claims, invoices and onboarding invites. Everything here is pure:
// services own the persistence, this package only answers whether a move is
// legal and what a batch of entries adds up to.
package workflow

import (
	"errors"
	"fmt"

	"github.com/clockwisehq/workforce-go/models"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Table maps a source status to the statuses reachable from it.
type Table map[string][]string

func (t Table) Allowed(from, to string) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (t Table) Ensure(from, to string) error {
	if !t.Allowed(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// TimesheetTransitions: DRAFT -> SUBMITTED -> APPROVED/REJECTED.
// REJECTED reopens to DRAFT for correction; SUBMITTED -> DRAFT is the
// explicit "request edit" revert. APPROVED is terminal.
var TimesheetTransitions = Table{
	string(models.EntryStatusDraft):     {string(models.EntryStatusSubmitted)},
	string(models.EntryStatusSubmitted): {string(models.EntryStatusApproved), string(models.EntryStatusRejected), string(models.EntryStatusDraft)},
	string(models.EntryStatusRejected):  {string(models.EntryStatusDraft)},
}

// ExpenseTransitions adds the PAID terminal state after APPROVED.
var ExpenseTransitions = Table{
	string(models.ClaimStatusDraft):     {string(models.ClaimStatusSubmitted)},
	string(models.ClaimStatusSubmitted): {string(models.ClaimStatusApproved), string(models.ClaimStatusRejected), string(models.ClaimStatusDraft)},
	string(models.ClaimStatusRejected):  {string(models.ClaimStatusDraft)},
	string(models.ClaimStatusApproved):  {string(models.ClaimStatusPaid)},
}

var InvoiceTransitions = Table{
	string(models.InvoiceStatusDraft):   {string(models.InvoiceStatusSent), string(models.InvoiceStatusCancelled)},
	string(models.InvoiceStatusSent):    {string(models.InvoiceStatusPaid), string(models.InvoiceStatusOverdue), string(models.InvoiceStatusCancelled)},
	string(models.InvoiceStatusOverdue): {string(models.InvoiceStatusPaid), string(models.InvoiceStatusCancelled)},
}

var OnboardingTransitions = Table{
	string(models.InviteStatusPending):          {string(models.InviteStatusInProgress)},
	string(models.InviteStatusInProgress):       {string(models.InviteStatusSubmitted)},
	string(models.InviteStatusSubmitted):        {string(models.InviteStatusChangesRequested), string(models.InviteStatusApproved)},
	string(models.InviteStatusChangesRequested): {string(models.InviteStatusSubmitted)},
}
