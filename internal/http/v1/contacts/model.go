package contacts

import (
	"github.com/Arturstriker3/test-portdata/internal/platform/timeutil"
	contactsvc "github.com/Arturstriker3/test-portdata/internal/service/contact"
)

// Contact represents a contact response.
type Contact struct {
	ID        int64         `json:"id"        doc:"Unique identifier"                         example:"1"`
	Name      string        `json:"name"      doc:"Full name, at least two words"             example:"Artur Daniel"`
	Phone     string        `json:"phone"     doc:"Brazilian mobile number (XX9XXXXXXXX)"     example:"84999999999"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Creation timestamp"                        example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt timeutil.Time `json:"updatedAt" doc:"Last update timestamp"                     example:"2024-01-15T10:30:00.000Z"`
}

func toHTTPContact(c *contactsvc.Contact) Contact {
	return Contact{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: timeutil.Time{Time: c.CreatedAt},
		UpdatedAt: timeutil.Time{Time: c.UpdatedAt},
	}
}
