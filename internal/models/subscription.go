package models

import (
	"time"

	"gorm.io/datatypes"
)

// Subscription rows are append-only history: only the most recently created
// row per employer is consulted for access decisions.
type Subscription struct {
	BaseModel
	EmployerID string             `gorm:"type:uuid;not null;index" json:"employer_id"`
	Status     SubscriptionStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Provider   string             `json:"provider"` // stripe, paypal, gcash
	ProviderID string             `gorm:"index" json:"-"` // provider-side subscription id
	ExpiresAt  time.Time          `json:"expires_at"`
}

// BillingHistory is the append-only ledger written alongside every
// subscription creation/renewal and every webhook-driven payment event.
type BillingHistory struct {
	BaseModel
	EmployerID     string         `gorm:"type:uuid;not null;index" json:"employer_id"`
	SubscriptionID string         `gorm:"type:uuid;index" json:"subscription_id"`
	Event          string         `gorm:"not null" json:"event"` // subscription_created, payment_succeeded, ...
	AmountCentavos int64          `json:"amount_centavos"`
	Currency       string         `gorm:"default:'PHP'" json:"currency"`
	Payload        datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
}
