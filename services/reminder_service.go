package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/workflow"
	"go.uber.org/zap"
)

// Notifier delivers one reminder. Implementations must not retry; the caller
// records each attempt's outcome as-is.
type Notifier interface {
	Notify(user models.User, weekStart time.Time) error
}

// HTTPNotifier posts reminders to the configured notification webhook.
type HTTPNotifier struct {
	Client *http.Client
}

func NewHTTPNotifier() *HTTPNotifier {
	return &HTTPNotifier{Client: &http.Client{Timeout: 10 * time.Second}}
}

func (n *HTTPNotifier) Notify(user models.User, weekStart time.Time) error {
	payload := map[string]interface{}{
		"userId":    user.UID,
		"username":  user.Username,
		"email":     user.Email,
		"weekStart": weekStart.Format("2006-01-02"),
		"kind":      "timesheet_reminder",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := n.Client.Post(config.NotifyURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify webhook returned %d", resp.StatusCode)
	}
	return nil
}

// DispatchResult reports exactly how a reminder batch went. Counts are
// verbatim: one success or one failure per requested employee, never adjusted
// by retries.
type DispatchResult struct {
	SentCount   int    `json:"sentCount"`
	FailedCount int    `json:"failedCount"`
	FailedIDs   []uint `json:"failedIds,omitempty"`
}

type ReminderService struct {
	Repos    *repositories.Repos
	Notifier Notifier
	Log      *zap.Logger
}

func NewReminderService(repos *repositories.Repos, notifier Notifier, logger *zap.Logger) *ReminderService {
	return &ReminderService{Repos: repos, Notifier: notifier, Log: logger}
}

// SendReminders dispatches one reminder per employee. Each failure is counted
// and recorded but does not stop the rest of the batch.
func (s *ReminderService) SendReminders(employeeIDs []uint, weekStart time.Time) (DispatchResult, error) {
	week := workflow.WeekStart(weekStart)
	result := DispatchResult{}

	for _, id := range employeeIDs {
		user, err := s.Repos.User.GetByID(id)
		if err != nil {
			result.FailedCount++
			result.FailedIDs = append(result.FailedIDs, id)
			s.record(id, week, models.NotificationStatusFailed, err.Error())
			continue
		}

		if err := s.Notifier.Notify(user, week); err != nil {
			result.FailedCount++
			result.FailedIDs = append(result.FailedIDs, id)
			s.record(id, week, models.NotificationStatusFailed, err.Error())
			s.Log.Warn("reminder dispatch failed",
				zap.Uint("user_id", id),
				zap.Error(err))
			continue
		}

		result.SentCount++
		s.record(id, week, models.NotificationStatusSent, "")
	}

	return result, nil
}

// DispatchMissingTimesheets reminds every active employee who has not
// submitted anything for the week. Used by the scheduler.
func (s *ReminderService) DispatchMissingTimesheets(weekStart time.Time) (DispatchResult, error) {
	week := workflow.WeekStart(weekStart)

	users, err := s.Repos.User.ListActiveEmployees()
	if err != nil {
		return DispatchResult{}, err
	}

	var missing []uint
	for _, u := range users {
		count, err := s.Repos.Timesheet.CountSubmittedInWeek(u.UID, week)
		if err != nil {
			return DispatchResult{}, err
		}
		if count == 0 {
			missing = append(missing, u.UID)
		}
	}
	if len(missing) == 0 {
		return DispatchResult{}, nil
	}
	return s.SendReminders(missing, week)
}

func (s *ReminderService) record(userID uint, weekStart time.Time, status models.NotificationStatus, detail string) {
	n := models.Notification{
		UserID:    userID,
		Kind:      "timesheet_reminder",
		WeekStart: &weekStart,
		Status:    status,
		Detail:    detail,
	}
	if err := s.Repos.Notification.Create(&n); err != nil {
		s.Log.Warn("notification record failed", zap.Uint("user_id", userID), zap.Error(err))
	}
}
