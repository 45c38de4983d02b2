package repositories

import (
	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/models"
	"gorm.io/gorm"
)

type ExpenseRepo interface {
	Create(claim *models.ExpenseClaim) error
	Save(claim *models.ExpenseClaim) error
	SaveAll(claims []models.ExpenseClaim) error
	Delete(id uint) error
	GetByID(id uint) (models.ExpenseClaim, error)
	ListByIDs(ids []uint) ([]models.ExpenseClaim, error)
	ListByUser(userID uint) ([]models.ExpenseClaim, error)
	ListByStatus(status models.ClaimStatus) ([]models.ExpenseClaim, error)
}

type DBExpenseRepo struct{}

func (r *DBExpenseRepo) Create(claim *models.ExpenseClaim) error {
	return db.DB.Create(claim).Error
}

func (r *DBExpenseRepo) Save(claim *models.ExpenseClaim) error {
	return db.DB.Save(claim).Error
}

func (r *DBExpenseRepo) SaveAll(claims []models.ExpenseClaim) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for i := range claims {
			if err := tx.Save(&claims[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DBExpenseRepo) Delete(id uint) error {
	return db.DB.Delete(&models.ExpenseClaim{}, id).Error
}

func (r *DBExpenseRepo) GetByID(id uint) (models.ExpenseClaim, error) {
	var claim models.ExpenseClaim
	err := db.DB.First(&claim, id).Error
	return claim, err
}

func (r *DBExpenseRepo) ListByIDs(ids []uint) ([]models.ExpenseClaim, error) {
	var claims []models.ExpenseClaim
	err := db.DB.Where("id IN ?", ids).Find(&claims).Error
	return claims, err
}

func (r *DBExpenseRepo) ListByUser(userID uint) ([]models.ExpenseClaim, error) {
	var claims []models.ExpenseClaim
	err := db.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&claims).Error
	return claims, err
}

func (r *DBExpenseRepo) ListByStatus(status models.ClaimStatus) ([]models.ExpenseClaim, error) {
	var claims []models.ExpenseClaim
	err := db.DB.Preload("User").Where("status = ?", status).Order("created_at").Find(&claims).Error
	return claims, err
}
