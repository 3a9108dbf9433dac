package contact

import (
	"time"

	"gorm.io/gorm"
)

// Contact is one raw intake form submission: an open-ended key/value bag
// plus the triage flags the admin UI toggles. Independent of the
// agreement/client model.
type Contact struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Fields  map[string]interface{} `gorm:"type:jsonb;serializer:json" json:"fields"`
	Status  string                 `gorm:"size:50;not null;default:'new'" json:"status"`
	IsDraft bool                   `gorm:"not null;default:false" json:"isDraft"`
}

// Flatten merges the form fields with the record's own columns into the flat
// JSON object the admin UI lists.
func (c *Contact) Flatten() map[string]interface{} {
	out := make(map[string]interface{}, len(c.Fields)+4)
	for k, v := range c.Fields {
		out[k] = v
	}
	out["id"] = c.ID
	out["status"] = c.Status
	out["isDraft"] = c.IsDraft
	out["createdAt"] = c.CreatedAt.Format(time.RFC3339)
	return out
}
