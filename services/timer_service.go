package services

import (
	"errors"
	"time"

	"github.com/clockwisehq/workforce-go/dto"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/workflow"
)

var (
	ErrTimerRunning    = errors.New("a timer is already running")
	ErrTimerNotRunning = errors.New("no timer is running")
)

type TimerService struct {
	Repos *repositories.Repos

	// now is swappable for tests
	now func() time.Time
}

func NewTimerService(repos *repositories.Repos) *TimerService {
	return &TimerService{Repos: repos, now: time.Now}
}

func (s *TimerService) Start(userID uint, input dto.StartTimerInput) (models.TimerState, error) {
	existing, err := s.Repos.Timer.Load(userID)
	if err != nil {
		return models.TimerState{}, err
	}
	if existing != nil {
		return models.TimerState{}, ErrTimerRunning
	}

	state := models.TimerState{
		UserID:      userID,
		ProjectID:   input.ProjectID,
		TaskID:      input.TaskID,
		Description: input.Description,
		StartedAt:   s.now(),
	}
	if err := s.Repos.Timer.Save(&state); err != nil {
		return models.TimerState{}, err
	}
	return state, nil
}

func (s *TimerService) Get(userID uint) (*models.TimerState, error) {
	return s.Repos.Timer.Load(userID)
}

// Stop closes the running timer and converts the elapsed time into a DRAFT
// entry on the start date's week. The week lock applies the same as for a
// manually created entry.
func (s *TimerService) Stop(userID uint) (models.TimesheetEntry, error) {
	state, err := s.Repos.Timer.Load(userID)
	if err != nil {
		return models.TimesheetEntry{}, err
	}
	if state == nil {
		return models.TimesheetEntry{}, ErrTimerNotRunning
	}

	workDate := state.StartedAt.UTC()
	weekEntries, err := s.Repos.Timesheet.ListByUserWeek(userID, workflow.WeekStart(workDate))
	if err != nil {
		return models.TimesheetEntry{}, err
	}
	if workflow.WeekLocked(weekEntries) {
		return models.TimesheetEntry{}, ErrWeekLocked
	}

	elapsed := s.now().Sub(state.StartedAt).Hours()
	// sub-minute runs still record a minute of work
	if elapsed < 1.0/60 {
		elapsed = 1.0 / 60
	}

	entry := models.TimesheetEntry{
		UserID:      userID,
		ProjectID:   state.ProjectID,
		TaskID:      state.TaskID,
		WorkDate:    time.Date(workDate.Year(), workDate.Month(), workDate.Day(), 0, 0, 0, 0, time.UTC),
		HoursWorked: elapsed,
		Description: state.Description,
		Status:      models.EntryStatusDraft,
	}
	if err := s.Repos.Timesheet.Create(&entry); err != nil {
		return models.TimesheetEntry{}, err
	}

	if err := s.Repos.Timer.Clear(userID); err != nil {
		return models.TimesheetEntry{}, err
	}
	return entry, nil
}

// Discard drops the running timer without recording any work.
func (s *TimerService) Discard(userID uint) error {
	state, err := s.Repos.Timer.Load(userID)
	if err != nil {
		return err
	}
	if state == nil {
		return ErrTimerNotRunning
	}
	return s.Repos.Timer.Clear(userID)
}
