package repositories

import (
	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/models"
)

type OnboardingRepo interface {
	Create(invite *models.OnboardingInvite) error
	Save(invite *models.OnboardingInvite) error
	GetByID(id uint) (models.OnboardingInvite, error)
	GetByToken(token string) (models.OnboardingInvite, error)
	List() ([]models.OnboardingInvite, error)
}

type DBOnboardingRepo struct{}

func (r *DBOnboardingRepo) Create(invite *models.OnboardingInvite) error {
	return db.DB.Create(invite).Error
}

func (r *DBOnboardingRepo) Save(invite *models.OnboardingInvite) error {
	return db.DB.Save(invite).Error
}

func (r *DBOnboardingRepo) GetByID(id uint) (models.OnboardingInvite, error) {
	var invite models.OnboardingInvite
	err := db.DB.Preload("User").First(&invite, id).Error
	return invite, err
}

func (r *DBOnboardingRepo) GetByToken(token string) (models.OnboardingInvite, error) {
	var invite models.OnboardingInvite
	err := db.DB.Where("token = ?", token).First(&invite).Error
	return invite, err
}

func (r *DBOnboardingRepo) List() ([]models.OnboardingInvite, error) {
	var invites []models.OnboardingInvite
	err := db.DB.Preload("User").Order("created_at desc").Find(&invites).Error
	return invites, err
}
