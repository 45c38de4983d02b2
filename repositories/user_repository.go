package repositories

import (
	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/models"
)

type UserRepo interface {
	Create(user *models.User) error
	Save(user *models.User) error
	GetByID(id uint) (models.User, error)
	GetByUsername(username string) (models.User, error)
	List() ([]models.User, error)
	ListActiveEmployees() ([]models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) Save(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) GetByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) GetByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) List() ([]models.User, error) {
	var users []models.User
	err := db.DB.Order("u_id").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListActiveEmployees() ([]models.User, error) {
	var users []models.User
	err := db.DB.Where("status = ?", models.UserStatusActive).Order("u_id").Find(&users).Error
	return users, err
}
