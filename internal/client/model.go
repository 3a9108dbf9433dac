package client

import (
	"time"

	"gorm.io/gorm"
)

// Client is the flattened post-completion snapshot of one agreement folder:
// combined owner+tenant identity plus the per-side columns, kept for the
// expiry views. Created once on completion (or manually), replaced whole by
// PUT thereafter, never automatically deleted.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Name     string `gorm:"not null" json:"name"`
	Phone    string `json:"phone"`
	Region   string `gorm:"not null" json:"region"`
	Building string `gorm:"not null" json:"building"`
	FlatNo   string `json:"flatNo"`

	AgreementStartDate string `json:"agreementStartDate"`
	AgreementEndDate   string `json:"agreementEndDate"`

	ClientType string  `gorm:"size:20" json:"clientType"`
	Amount     float64 `gorm:"not null;default:0" json:"amount"`
	TokenNo    string  `json:"tokenNo"`
	AgentName  string  `json:"agentName"`

	ModeOfAgreement string   `json:"modeOfAgreement"`
	Documents       []string `gorm:"type:jsonb;serializer:json" json:"documents"`

	// Free string set by the operator, e.g. "active" or "expired".
	AgreementStatus string `json:"agreementStatus"`

	OwnerName    string  `json:"ownerName,omitempty"`
	OwnerPhone   string  `json:"ownerPhone,omitempty"`
	OwnerTokenNo string  `json:"ownerTokenNo,omitempty"`
	OwnerAmount  float64 `json:"ownerAmount,omitempty"`
	OwnerAgent   string  `json:"ownerAgent,omitempty"`

	TenantName    string  `json:"tenantName,omitempty"`
	TenantPhone   string  `json:"tenantPhone,omitempty"`
	TenantTokenNo string  `json:"tenantTokenNo,omitempty"`
	TenantAmount  float64 `json:"tenantAmount,omitempty"`
	TenantAgent   string  `json:"tenantAgent,omitempty"`
}
