package repositories

import (
	"time"

	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/models"
)

type InvoiceRepo interface {
	Create(invoice *models.Invoice) error
	Save(invoice *models.Invoice) error
	GetByID(id uint) (models.Invoice, error)
	List() ([]models.Invoice, error)
	ListSentDueBefore(cutoff time.Time) ([]models.Invoice, error)
}

type DBInvoiceRepo struct{}

func (r *DBInvoiceRepo) Create(invoice *models.Invoice) error {
	return db.DB.Create(invoice).Error
}

func (r *DBInvoiceRepo) Save(invoice *models.Invoice) error {
	return db.DB.Save(invoice).Error
}

func (r *DBInvoiceRepo) GetByID(id uint) (models.Invoice, error) {
	var invoice models.Invoice
	err := db.DB.Preload("LineItems").First(&invoice, id).Error
	return invoice, err
}

func (r *DBInvoiceRepo) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := db.DB.Preload("LineItems").Order("created_at desc").Find(&invoices).Error
	return invoices, err
}

func (r *DBInvoiceRepo) ListSentDueBefore(cutoff time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := db.DB.
		Where("status = ? AND due_date < ?", models.InvoiceStatusSent, cutoff).
		Find(&invoices).Error
	return invoices, err
}
