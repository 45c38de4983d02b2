package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/models"
)

var (
	ErrEmptyBatch     = errors.New("no entries to submit")
	ErrReasonRequired = errors.New("rejection reason is required")
	ErrReasonTooShort = errors.New("rejection reason too short")
)

// ValidateSubmission checks a week's batch against the submission guards:
// the set is non-empty, every entry is DRAFT, total hours are positive and
// every description meets the minimum length. The returned slice enumerates
// every violation; a non-empty result rejects the whole batch, nothing is
// partially submitted.
func ValidateSubmission(entries []models.TimesheetEntry, p config.ApprovalPolicy) []string {
	if len(entries) == 0 {
		return []string{ErrEmptyBatch.Error()}
	}

	var problems []string
	total := 0.0
	for _, e := range entries {
		if e.Status != models.EntryStatusDraft {
			problems = append(problems, fmt.Sprintf("entry %d is %s, only DRAFT entries can be submitted", e.ID, e.Status))
		}
		if len(strings.TrimSpace(e.Description)) < p.MinDescriptionLen {
			problems = append(problems, fmt.Sprintf("entry %d description must be at least %d characters", e.ID, p.MinDescriptionLen))
		}
		total += e.HoursWorked
	}
	if total <= 0 {
		problems = append(problems, "total hours must be greater than zero")
	}
	return problems
}

// ValidateReason guards reject transitions. Single rejects only require a
// non-empty reason; bulk rejects enforce the minimum length.
func ValidateReason(reason string, bulk bool, p config.ApprovalPolicy) error {
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return ErrReasonRequired
	}
	if bulk && len(trimmed) < p.MinReasonLen {
		return fmt.Errorf("%w: need at least %d characters", ErrReasonTooShort, p.MinReasonLen)
	}
	return nil
}
