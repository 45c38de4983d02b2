package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/repositories/mock_repositories"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

// stubNotifier fails for the configured IDs and records every attempt so the
// tests can assert nothing was retried.
type stubNotifier struct {
	failFor  map[uint]bool
	attempts []uint
}

func (n *stubNotifier) Notify(user models.User, weekStart time.Time) error {
	n.attempts = append(n.attempts, user.UID)
	if n.failFor[user.UID] {
		return errors.New("webhook unreachable")
	}
	return nil
}

func setupReminderMocks(t *testing.T, notifier services.Notifier) (*services.ReminderService,
	*mock_repositories.MockUserRepo,
	*mock_repositories.MockTimesheetRepo,
	*mock_repositories.MockNotificationRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockTimesheet := mock_repositories.NewMockTimesheetRepo(ctrl)
	mockNotification := mock_repositories.NewMockNotificationRepo(ctrl)

	repos := &repositories.Repos{
		User:         mockUser,
		Timesheet:    mockTimesheet,
		Notification: mockNotification,
	}

	svc := services.NewReminderService(repos, notifier, zap.NewNop())
	return svc, mockUser, mockTimesheet, mockNotification
}

func TestSendReminders(t *testing.T) {
	t.Run("counts are verbatim with no retry", func(t *testing.T) {
		notifier := &stubNotifier{failFor: map[uint]bool{3: true}}
		svc, mockUser, _, mockNotification := setupReminderMocks(t, notifier)

		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil)
		mockUser.EXPECT().GetByID(uint(3)).Return(rootUser, nil)
		mockUser.EXPECT().GetByID(uint(4)).Return(models.User{UID: 4, Username: "lee"}, nil)
		mockNotification.EXPECT().Create(gomock.Any()).Return(nil).Times(3)

		result, err := svc.SendReminders([]uint{2, 3, 4}, monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.SentCount != 2 || result.FailedCount != 1 {
			t.Fatalf("expected 2 sent / 1 failed, got %d / %d", result.SentCount, result.FailedCount)
		}
		if len(result.FailedIDs) != 1 || result.FailedIDs[0] != 3 {
			t.Fatalf("expected failed id 3, got %v", result.FailedIDs)
		}
		if len(notifier.attempts) != 3 {
			t.Fatalf("expected exactly one attempt per employee, got %d", len(notifier.attempts))
		}
	})

	t.Run("unknown employee counts as failed without stopping the batch", func(t *testing.T) {
		notifier := &stubNotifier{}
		svc, mockUser, _, mockNotification := setupReminderMocks(t, notifier)

		mockUser.EXPECT().GetByID(uint(404)).Return(models.User{}, errors.New("record not found"))
		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil)
		mockNotification.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

		result, err := svc.SendReminders([]uint{404, 2}, monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.SentCount != 1 || result.FailedCount != 1 {
			t.Fatalf("expected 1 sent / 1 failed, got %d / %d", result.SentCount, result.FailedCount)
		}
	})

	t.Run("outcome rows are persisted per attempt", func(t *testing.T) {
		notifier := &stubNotifier{failFor: map[uint]bool{2: true}}
		svc, mockUser, _, mockNotification := setupReminderMocks(t, notifier)

		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil)
		mockNotification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
			if n.Status != models.NotificationStatusFailed {
				t.Fatalf("expected failed status, got %s", n.Status)
			}
			if n.WeekStart == nil || !n.WeekStart.Equal(monday) {
				t.Fatal("expected the normalized week start on the record")
			}
			return nil
		})

		_, err := svc.SendReminders([]uint{2}, monday.AddDate(0, 0, 2))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDispatchMissingTimesheets(t *testing.T) {
	t.Run("reminds only employees with nothing submitted", func(t *testing.T) {
		notifier := &stubNotifier{}
		svc, mockUser, mockTimesheet, mockNotification := setupReminderMocks(t, notifier)

		mockUser.EXPECT().ListActiveEmployees().Return([]models.User{managed, rootUser}, nil)
		mockTimesheet.EXPECT().CountSubmittedInWeek(uint(2), monday).Return(int64(0), nil)
		mockTimesheet.EXPECT().CountSubmittedInWeek(uint(3), monday).Return(int64(4), nil)
		mockUser.EXPECT().GetByID(uint(2)).Return(managed, nil)
		mockNotification.EXPECT().Create(gomock.Any()).Return(nil)

		result, err := svc.DispatchMissingTimesheets(monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.SentCount != 1 || result.FailedCount != 0 {
			t.Fatalf("expected 1 sent / 0 failed, got %d / %d", result.SentCount, result.FailedCount)
		}
		if len(notifier.attempts) != 1 || notifier.attempts[0] != 2 {
			t.Fatalf("expected one reminder to user 2, got %v", notifier.attempts)
		}
	})

	t.Run("everyone submitted means an empty dispatch", func(t *testing.T) {
		notifier := &stubNotifier{}
		svc, mockUser, mockTimesheet, _ := setupReminderMocks(t, notifier)

		mockUser.EXPECT().ListActiveEmployees().Return([]models.User{managed}, nil)
		mockTimesheet.EXPECT().CountSubmittedInWeek(uint(2), monday).Return(int64(2), nil)

		result, err := svc.DispatchMissingTimesheets(monday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.SentCount != 0 || result.FailedCount != 0 {
			t.Fatalf("expected empty result, got %+v", result)
		}
	})
}
