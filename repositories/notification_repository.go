package repositories

import (
	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/models"
)

type NotificationRepo interface {
	Create(n *models.Notification) error
	ListByUser(userID uint) ([]models.Notification, error)
}

type DBNotificationRepo struct{}

func (r *DBNotificationRepo) Create(n *models.Notification) error {
	return db.DB.Create(n).Error
}

func (r *DBNotificationRepo) ListByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&notifications).Error
	return notifications, err
}
