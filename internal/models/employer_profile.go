package models

type EmployerProfile struct {
	BaseModel
	UserID        string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	DisplayName   string `gorm:"not null" json:"display_name"`
	City          string `json:"city"`
	Province      string `json:"province"`
	Phone         string `json:"phone,omitempty"`
	HouseholdSize int    `json:"household_size"`

	// Billing
	StripeCustomerID string `json:"-"`

	// Relations
	Subscriptions []Subscription `gorm:"foreignKey:EmployerID" json:"subscriptions,omitempty"`
	SavedSearches []SavedSearch  `gorm:"foreignKey:EmployerID" json:"saved_searches,omitempty"`
}
