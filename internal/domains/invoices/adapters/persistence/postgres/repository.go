package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/domain"
	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists invoices in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&invoiceRecord{})
	}
	return repo
}

type invoiceRecord struct {
	ID         string    `gorm:"primaryKey;column:id;type:uuid"`
	CustomerID string    `gorm:"column:customer_id;index"`
	Amount     int64     `gorm:"column:amount"`
	Status     string    `gorm:"column:status;type:varchar(16);index"`
	Date       string    `gorm:"column:date;type:varchar(10);index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (invoiceRecord) TableName() string { return "invoices" }

// BeforeCreate assigns the identifier; callers never supply one.
func (r *invoiceRecord) BeforeCreate(*gorm.DB) error {
	if strings.TrimSpace(r.ID) == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Create inserts a new invoice row and returns the stored aggregate with
// its assigned identifier.
func (r *Repository) Create(ctx context.Context, invoice ports.NewInvoice) (*domain.Invoice, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := invoiceRecord{
		CustomerID: invoice.CustomerID,
		Amount:     invoice.AmountCents,
		Status:     string(invoice.Status),
		Date:       invoice.Date,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// Update overwrites customer, amount, and status for the row with the given
// id. Zero rows affected is deliberate: updating a missing invoice is not
// an error.
func (r *Repository) Update(ctx context.Context, id string, changes ports.InvoiceChanges) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&invoiceRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"customer_id": changes.CustomerID,
			"amount":      changes.AmountCents,
			"status":      string(changes.Status),
		}).Error
}

// Delete removes the row with the given id; a missing id is a no-op.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&invoiceRecord{}).Error
}

// GetByID fetches an invoice by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record invoiceRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all invoices, newest date first.
func (r *Repository) List(ctx context.Context) ([]*domain.Invoice, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []invoiceRecord
	if err := r.db.WithContext(ctx).Order("date DESC, created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	invoices := make([]*domain.Invoice, 0, len(records))
	for i := range records {
		invoices = append(invoices, records[i].toDomain())
	}
	return invoices, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres invoice repository not configured")
	}
	return nil
}

func (r invoiceRecord) toDomain() *domain.Invoice {
	return &domain.Invoice{
		ID:          r.ID,
		Date:        r.Date,
		CustomerID:  r.CustomerID,
		AmountCents: r.Amount,
		Status:      domain.Status(r.Status),
	}
}
