package contact

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	applog "github.com/Arturstriker3/test-portdata/internal/platform/logging"
)

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// GormRepository implements Repository on a PostgreSQL table via GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new database-backed repository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Migrate creates or updates the contacts table schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contact{})
}

// FindByID retrieves a contact by its ID.
func (r *GormRepository) FindByID(ctx context.Context, id int64) (*Contact, error) {
	var c Contact
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindPage retrieves one window of contacts in ascending ID order together
// with the table-wide count. Both reads run in a single transaction so the
// count matches the window.
func (r *GormRepository) FindPage(ctx context.Context, offset, limit int) (*Page, error) {
	page := &Page{Contacts: []Contact{}}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Contact{}).Count(&page.Total).Error; err != nil {
			return err
		}
		// GORM drops a negative offset and would hand back the first
		// rows; a window that cannot exist must come back empty.
		if offset < 0 {
			return nil
		}
		return tx.Order("id").Offset(offset).Limit(limit).Find(&page.Contacts).Error
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Create inserts a new contact, stamping both timestamps with the same
// instant.
func (r *GormRepository) Create(ctx context.Context, params CreateParams) (*Contact, error) {
	now := time.Now().UTC()
	c := Contact{
		Name:      params.Name,
		Phone:     params.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		applog.LogAuditEvent(ctx, "create", "contact", "", "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", "contact", strconv.FormatInt(c.ID, 10), "success", nil)

	return &c, nil
}

// Update applies the non-nil fields to an existing contact in a transaction
// and refreshes its update timestamp.
func (r *GormRepository) Update(ctx context.Context, id int64, params UpdateParams) (*Contact, error) {
	var c Contact

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if params.Name != nil {
			c.Name = *params.Name
		}
		if params.Phone != nil {
			c.Phone = *params.Phone
		}
		c.UpdatedAt = time.Now().UTC()

		return tx.Save(&c).Error
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "update", "contact", strconv.FormatInt(id, 10), "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "update", "contact", strconv.FormatInt(id, 10), "success", nil)

	return &c, nil
}

// Delete removes a contact, reporting ErrNotFound when no row matches.
func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c Contact
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&c).Error
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "delete", "contact", strconv.FormatInt(id, 10), "failure",
			map[string]any{"error": categorizeError(err)})
		return err
	}

	applog.LogAuditEvent(ctx, "delete", "contact", strconv.FormatInt(id, 10), "success", nil)

	return nil
}

// Compile-time interface check
var _ Repository = (*GormRepository)(nil)
