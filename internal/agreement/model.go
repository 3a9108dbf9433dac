package agreement

import (
	"time"

	"gorm.io/gorm"
)

// Agreement statuses. The transition is one-way: ongoing -> completed.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Party is one side of a brokered agreement (owner or tenant).
type Party struct {
	ClientName string  `json:"clientName"`
	ContactNo  string  `json:"contactNo"`
	Amount     float64 `json:"amount"`
	AgentName  string  `json:"agentName"`
	TokenNo    string  `json:"tokenNo"`
}

// Agreement represents one brokered property listing, optionally carrying an
// owner-side and a tenant-side sub-agreement. FlatNo is the folder key.
type Agreement struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	FlatNo   string `gorm:"size:100;not null;index" json:"flatNo"`
	Building string `json:"building"`
	Region   string `json:"region"`

	// Date strings as entered on the intake form; not validated against
	// each other.
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	Status      string     `gorm:"size:50;not null;default:'ongoing';index" json:"status"`
	CompletedAt *time.Time `json:"completedAt"`

	// Operator-entered folder revenue and owner-side agent commission.
	Profit               float64 `gorm:"not null;default:0" json:"profit"`
	OwnerAgentCommission float64 `gorm:"not null;default:0" json:"ownerAgentCommission"`

	Owner  *Party `gorm:"type:jsonb;serializer:json" json:"owner,omitempty"`
	Tenant *Party `gorm:"type:jsonb;serializer:json" json:"tenant,omitempty"`

	// Legacy flat format: one row per side, tagged by ClientType. Still
	// merged by the folder aggregator.
	ClientType string  `gorm:"size:20" json:"clientType,omitempty"`
	ClientName string  `json:"clientName,omitempty"`
	ContactNo  string  `json:"contactNo,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	AgentName  string  `json:"agentName,omitempty"`
	TokenNo    string  `json:"tokenNo,omitempty"`
}

// legacyParty lifts a legacy flat row into a Party value.
func (a *Agreement) legacyParty() *Party {
	return &Party{
		ClientName: a.ClientName,
		ContactNo:  a.ContactNo,
		Amount:     a.Amount,
		AgentName:  a.AgentName,
		TokenNo:    a.TokenNo,
	}
}
