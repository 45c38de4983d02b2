package repositories

import (
	"errors"

	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TimerStateStore persists the per-user running timer. The web client used
// to keep this in browser local storage; here it is an explicit injectable
// store so the timer survives sessions and devices.
type TimerStateStore interface {
	Save(state *models.TimerState) error
	Load(userID uint) (*models.TimerState, error)
	Clear(userID uint) error
}

type DBTimerStateStore struct{}

func (s *DBTimerStateStore) Save(state *models.TimerState) error {
	return db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(state).Error
}

func (s *DBTimerStateStore) Load(userID uint) (*models.TimerState, error) {
	var state models.TimerState
	err := db.DB.First(&state, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *DBTimerStateStore) Clear(userID uint) error {
	return db.DB.Delete(&models.TimerState{}, "user_id = ?", userID).Error
}
