package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/events"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/workflow"
	"go.uber.org/zap"
)

var (
	ErrNotOwner      = errors.New("entry belongs to another user")
	ErrNotEditable   = errors.New("only DRAFT or REJECTED entries can be modified")
	ErrWeekLocked    = errors.New("week is locked for new entries")
	ErrNotAuthorized = errors.New("not authorized to decide on this entry")
	ErrEntriesMissed = errors.New("some entries were not found")
)

// SubmissionError carries the full list of guard violations for a rejected
// batch; the client shows them all at once.
type SubmissionError struct {
	Problems []string
}

func (e *SubmissionError) Error() string {
	return "submission rejected: " + strings.Join(e.Problems, "; ")
}

type TimesheetService struct {
	Repos *repositories.Repos
	Log   *zap.Logger
	Hub   *events.Hub
	Audit *AuditService
}

func NewTimesheetService(repos *repositories.Repos, logger *zap.Logger, hub *events.Hub, audit *AuditService) *TimesheetService {
	return &TimesheetService{Repos: repos, Log: logger, Hub: hub, Audit: audit}
}

func (s *TimesheetService) CreateEntry(userID uint, input dto.CreateTimesheetEntryInput) (models.TimesheetEntry, error) {
	workDate, err := time.Parse("2006-01-02", input.WorkDate)
	if err != nil {
		return models.TimesheetEntry{}, fmt.Errorf("invalid workDate: %w", err)
	}

	weekEntries, err := s.Repos.Timesheet.ListByUserWeek(userID, workflow.WeekStart(workDate))
	if err != nil {
		return models.TimesheetEntry{}, err
	}
	if workflow.WeekLocked(weekEntries) {
		return models.TimesheetEntry{}, ErrWeekLocked
	}

	entry := models.TimesheetEntry{
		UserID:        userID,
		ProjectID:     input.ProjectID,
		TaskID:        input.TaskID,
		WorkDate:      workDate,
		HoursWorked:   input.HoursWorked,
		Description:   input.Description,
		IsBillable:    input.IsBillable,
		BillingAmount: input.BillingAmount,
		Status:        models.EntryStatusDraft,
	}
	if err := s.Repos.Timesheet.Create(&entry); err != nil {
		return models.TimesheetEntry{}, err
	}
	return entry, nil
}

func (s *TimesheetService) UpdateEntry(userID, entryID uint, input dto.UpdateTimesheetEntryInput) (models.TimesheetEntry, error) {
	entry, err := s.Repos.Timesheet.GetByID(entryID)
	if err != nil {
		return models.TimesheetEntry{}, err
	}
	if entry.UserID != userID {
		return models.TimesheetEntry{}, ErrNotOwner
	}
	if !entry.Editable() {
		return models.TimesheetEntry{}, ErrNotEditable
	}

	if input.WorkDate != nil {
		workDate, err := time.Parse("2006-01-02", *input.WorkDate)
		if err != nil {
			return models.TimesheetEntry{}, fmt.Errorf("invalid workDate: %w", err)
		}
		entry.WorkDate = workDate
	}
	if input.HoursWorked != nil {
		entry.HoursWorked = *input.HoursWorked
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}
	if input.IsBillable != nil {
		entry.IsBillable = *input.IsBillable
	}
	if input.BillingAmount != nil {
		entry.BillingAmount = input.BillingAmount
	}
	if input.ProjectID != nil {
		entry.ProjectID = input.ProjectID
	}
	if input.TaskID != nil {
		entry.TaskID = input.TaskID
	}

	if err := s.Repos.Timesheet.Save(&entry); err != nil {
		return models.TimesheetEntry{}, err
	}
	return entry, nil
}

func (s *TimesheetService) DeleteEntry(userID, entryID uint) error {
	entry, err := s.Repos.Timesheet.GetByID(entryID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return ErrNotOwner
	}
	if !entry.Editable() {
		return ErrNotEditable
	}
	return s.Repos.Timesheet.Delete(entryID)
}

func (s *TimesheetService) ListWeek(userID uint, weekStart time.Time) ([]models.TimesheetEntry, error) {
	return s.Repos.Timesheet.ListByUserWeek(userID, workflow.WeekStart(weekStart))
}

func (s *TimesheetService) ListPending() ([]models.TimesheetEntry, error) {
	return s.Repos.Timesheet.ListByStatus(models.EntryStatusSubmitted)
}

// SubmitWeek moves every DRAFT entry of the week to SUBMITTED. The batch is
// all-or-nothing: any guard violation rejects the submission with the full
// problem list and no entry changes state.
func (s *TimesheetService) SubmitWeek(userID uint, weekStart time.Time) ([]models.TimesheetEntry, error) {
	entries, err := s.Repos.Timesheet.ListByUserWeek(userID, workflow.WeekStart(weekStart))
	if err != nil {
		return nil, err
	}

	if problems := workflow.ValidateSubmission(entries, config.Policy); len(problems) > 0 {
		return nil, &SubmissionError{Problems: problems}
	}

	now := time.Now()
	for i := range entries {
		entries[i].Status = models.EntryStatusSubmitted
		entries[i].SubmittedAt = &now
	}
	if err := s.Repos.Timesheet.SaveAll(entries); err != nil {
		return nil, err
	}

	s.audit(userID, "timesheet.submit", entries)
	return entries, nil
}

// Approve transitions one SUBMITTED entry to APPROVED.
func (s *TimesheetService) Approve(approverID, entryID uint) (models.TimesheetEntry, error) {
	entries, err := s.decide(approverID, []uint{entryID}, models.EntryStatusApproved, "")
	if err != nil {
		return models.TimesheetEntry{}, err
	}
	return entries[0], nil
}

// BulkApprove applies APPROVED to the whole set atomically; if any entry is
// not SUBMITTED or the approver lacks authority over it, nothing changes.
func (s *TimesheetService) BulkApprove(approverID uint, entryIDs []uint) ([]models.TimesheetEntry, error) {
	return s.decide(approverID, entryIDs, models.EntryStatusApproved, "")
}

func (s *TimesheetService) Reject(approverID, entryID uint, reason string) (models.TimesheetEntry, error) {
	if err := workflow.ValidateReason(reason, false, config.Policy); err != nil {
		return models.TimesheetEntry{}, err
	}
	entries, err := s.decide(approverID, []uint{entryID}, models.EntryStatusRejected, reason)
	if err != nil {
		return models.TimesheetEntry{}, err
	}
	return entries[0], nil
}

func (s *TimesheetService) BulkReject(approverID uint, entryIDs []uint, reason string) ([]models.TimesheetEntry, error) {
	if err := workflow.ValidateReason(reason, true, config.Policy); err != nil {
		return nil, err
	}
	return s.decide(approverID, entryIDs, models.EntryStatusRejected, reason)
}

// RevertToDraft is the "request edit" action: a SUBMITTED or REJECTED entry
// returns to DRAFT with its decision stamps cleared.
func (s *TimesheetService) RevertToDraft(userID, entryID uint) (models.TimesheetEntry, error) {
	entry, err := s.Repos.Timesheet.GetByID(entryID)
	if err != nil {
		return models.TimesheetEntry{}, err
	}
	if entry.UserID != userID {
		return models.TimesheetEntry{}, ErrNotOwner
	}
	if err := workflow.TimesheetTransitions.Ensure(string(entry.Status), string(models.EntryStatusDraft)); err != nil {
		return models.TimesheetEntry{}, err
	}

	entry.Status = models.EntryStatusDraft
	entry.SubmittedAt = nil
	entry.RejectedAt = nil
	entry.RejectedBy = nil
	entry.RejectionReason = nil

	if err := s.Repos.Timesheet.Save(&entry); err != nil {
		return models.TimesheetEntry{}, err
	}
	return entry, nil
}

// decide runs the shared approve/reject path. All entries are validated
// before anything is written, and the write is one transaction, so a failed
// batch leaves every entry at its pre-call state.
func (s *TimesheetService) decide(approverID uint, entryIDs []uint, target models.EntryStatus, reason string) ([]models.TimesheetEntry, error) {
	approver, err := s.Repos.User.GetByID(approverID)
	if err != nil {
		return nil, err
	}

	entries, err := s.Repos.Timesheet.ListByIDs(entryIDs)
	if err != nil {
		return nil, err
	}
	if len(entries) != len(entryIDs) {
		return nil, ErrEntriesMissed
	}

	owners := map[uint]models.User{}
	now := time.Now()
	for i := range entries {
		entry := &entries[i]
		if err := workflow.TimesheetTransitions.Ensure(string(entry.Status), string(target)); err != nil {
			return nil, fmt.Errorf("entry %d: %w", entry.ID, err)
		}

		owner, ok := owners[entry.UserID]
		if !ok {
			owner, err = s.Repos.User.GetByID(entry.UserID)
			if err != nil {
				return nil, err
			}
			owners[entry.UserID] = owner
		}

		selfApproval := entry.UserID == approverID
		if !workflow.CanDecide(approver, owner, selfApproval) {
			return nil, fmt.Errorf("entry %d: %w", entry.ID, ErrNotAuthorized)
		}

		entry.Status = target
		switch target {
		case models.EntryStatusApproved:
			entry.ApprovedAt = &now
			entry.ApprovedBy = &approver.UID
			if selfApproval {
				entry.IsAutoApproved = true
			}
		case models.EntryStatusRejected:
			r := reason
			entry.RejectedAt = &now
			entry.RejectedBy = &approver.UID
			entry.RejectionReason = &r
		}
	}

	if err := s.Repos.Timesheet.SaveAll(entries); err != nil {
		return nil, err
	}

	action := "timesheet.approve"
	if target == models.EntryStatusRejected {
		action = "timesheet.reject"
	}
	s.audit(approverID, action, entries)
	s.Hub.Broadcast(events.ApprovalEvent{
		EntityType: "timesheet",
		EntityIDs:  entryIDs,
		Action:     string(target),
		ActorID:    approverID,
	})

	return entries, nil
}

func (s *TimesheetService) audit(actorID uint, action string, entries []models.TimesheetEntry) {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = fmt.Sprint(e.ID)
	}
	if err := s.Audit.Record(actorID, action, "timesheet_entry", 0, "entries: "+strings.Join(ids, ",")); err != nil {
		s.Log.Warn("audit record failed", zap.String("action", action), zap.Error(err))
	}
}
