package agent

import (
	"time"

	"gorm.io/gorm"
)

// Agent is a third-party broker tracked for commission attribution. Name is
// the de-facto unique key: matching is exact and case-sensitive.
type Agent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Name  string `gorm:"size:255;not null;index" json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
