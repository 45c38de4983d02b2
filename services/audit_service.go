package services

import (
	"github.com/clockwisehq/workforce-go/models"
	"github.com/clockwisehq/workforce-go/repositories"
)

type AuditService struct {
	Repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) Record(actorID uint, action, entityType string, entityID uint, detail string) error {
	return s.Repos.Audit.Create(&models.AuditLog{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	})
}

func (s *AuditService) Query(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	return s.Repos.Audit.Query(params)
}

func (s *AuditService) CleanupOldLogs(days int) error {
	return s.Repos.Audit.DeleteOld(days)
}
