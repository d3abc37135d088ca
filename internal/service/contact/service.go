package contact

import (
	"context"
	"errors"
	"time"
)

// Repository errors
var (
	ErrNotFound = errors.New("contact not found")
)

// Contact represents a stored contact.
type Contact struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// CreateParams for creating a contact.
type CreateParams struct {
	Name  string
	Phone string
}

// UpdateParams for updating a contact. Nil fields are left unchanged.
type UpdateParams struct {
	Name  *string
	Phone *string
}

// Page is one window of the contact listing plus the table-wide count.
type Page struct {
	Contacts []Contact
	Total    int64
}

// Repository defines contact persistence operations.
//
// FindPage returns the window at the given offset in ascending ID order.
// An offset past the last record yields an empty page with Total still
// filled in; callers decide how to present that.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Contact, error)
	FindPage(ctx context.Context, offset, limit int) (*Page, error)
	Create(ctx context.Context, params CreateParams) (*Contact, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*Contact, error)
	Delete(ctx context.Context, id int64) error
}
