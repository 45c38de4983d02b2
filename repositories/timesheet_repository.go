package repositories

import (
	"time"

	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/models"
	"gorm.io/gorm"
)

type TimesheetRepo interface {
	Create(entry *models.TimesheetEntry) error
	Save(entry *models.TimesheetEntry) error
	SaveAll(entries []models.TimesheetEntry) error
	Delete(id uint) error
	GetByID(id uint) (models.TimesheetEntry, error)
	ListByIDs(ids []uint) ([]models.TimesheetEntry, error)
	ListByUserWeek(userID uint, weekStart time.Time) ([]models.TimesheetEntry, error)
	ListByStatus(status models.EntryStatus) ([]models.TimesheetEntry, error)
	ListApprovedBillable(userID uint, projectID *uint, from, to time.Time) ([]models.TimesheetEntry, error)
	CountSubmittedInWeek(userID uint, weekStart time.Time) (int64, error)
}

type DBTimesheetRepo struct{}

func (r *DBTimesheetRepo) Create(entry *models.TimesheetEntry) error {
	return db.DB.Create(entry).Error
}

func (r *DBTimesheetRepo) Save(entry *models.TimesheetEntry) error {
	return db.DB.Save(entry).Error
}

// SaveAll persists the batch in one transaction so a bulk transition is
// all-or-nothing: any failure leaves every entry at its pre-call state.
func (r *DBTimesheetRepo) SaveAll(entries []models.TimesheetEntry) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			if err := tx.Save(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DBTimesheetRepo) Delete(id uint) error {
	return db.DB.Delete(&models.TimesheetEntry{}, id).Error
}

func (r *DBTimesheetRepo) GetByID(id uint) (models.TimesheetEntry, error) {
	var entry models.TimesheetEntry
	err := db.DB.First(&entry, id).Error
	return entry, err
}

func (r *DBTimesheetRepo) ListByIDs(ids []uint) ([]models.TimesheetEntry, error) {
	var entries []models.TimesheetEntry
	err := db.DB.Where("id IN ?", ids).Find(&entries).Error
	return entries, err
}

func (r *DBTimesheetRepo) ListByUserWeek(userID uint, weekStart time.Time) ([]models.TimesheetEntry, error) {
	var entries []models.TimesheetEntry
	weekEnd := weekStart.AddDate(0, 0, 7)
	err := db.DB.Preload("User").Preload("Project").Preload("Task").
		Where("user_id = ? AND work_date >= ? AND work_date < ?", userID, weekStart, weekEnd).
		Order("work_date").
		Find(&entries).Error
	return entries, err
}

func (r *DBTimesheetRepo) ListByStatus(status models.EntryStatus) ([]models.TimesheetEntry, error) {
	var entries []models.TimesheetEntry
	err := db.DB.Preload("User").Preload("Project").
		Where("status = ?", status).
		Order("work_date").
		Find(&entries).Error
	return entries, err
}

func (r *DBTimesheetRepo) ListApprovedBillable(userID uint, projectID *uint, from, to time.Time) ([]models.TimesheetEntry, error) {
	q := db.DB.
		Where("user_id = ? AND status = ? AND is_billable = ?", userID, models.EntryStatusApproved, true).
		Where("work_date >= ? AND work_date <= ?", from, to)
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var entries []models.TimesheetEntry
	err := q.Order("work_date").Find(&entries).Error
	return entries, err
}

func (r *DBTimesheetRepo) CountSubmittedInWeek(userID uint, weekStart time.Time) (int64, error) {
	var count int64
	weekEnd := weekStart.AddDate(0, 0, 7)
	err := db.DB.Model(&models.TimesheetEntry{}).
		Where("user_id = ? AND work_date >= ? AND work_date < ?", userID, weekStart, weekEnd).
		Where("status IN ?", []models.EntryStatus{models.EntryStatusSubmitted, models.EntryStatusApproved}).
		Count(&count).Error
	return count, err
}
