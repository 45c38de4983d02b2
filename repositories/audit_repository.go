package repositories

import (
	"time"

	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/models"
)

type AuditQueryParams struct {
	ActorID    uint
	Action     string
	EntityType string
	Limit      int
}

type AuditRepo interface {
	Create(log *models.AuditLog) error
	Query(params AuditQueryParams) ([]models.AuditLog, error)
	DeleteOld(days int) error
}

type DBAuditRepo struct{}

func (r *DBAuditRepo) Create(log *models.AuditLog) error {
	return db.DB.Create(log).Error
}

func (r *DBAuditRepo) Query(params AuditQueryParams) ([]models.AuditLog, error) {
	q := db.DB.Model(&models.AuditLog{})
	if params.ActorID != 0 {
		q = q.Where("actor_id = ?", params.ActorID)
	}
	if params.Action != "" {
		q = q.Where("action = ?", params.Action)
	}
	if params.EntityType != "" {
		q = q.Where("entity_type = ?", params.EntityType)
	}
	limit := params.Limit
	if limit == 0 {
		limit = 100
	}

	var logs []models.AuditLog
	err := q.Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) DeleteOld(days int) error {
	cutoff := time.Now().AddDate(0, 0, -days)
	return db.DB.Where("created_at < ?", cutoff).Delete(&models.AuditLog{}).Error
}
