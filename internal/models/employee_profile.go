package models

import (
	"github.com/lib/pq"
)

// EmployeeProfile is the candidate-side profile. Public fields are served
// to everyone; private fields (last name, address, phone, email) are only
// attached for admins and employers holding an active subscription.
type EmployeeProfile struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	// Public fields
	FirstName       string         `gorm:"not null" json:"first_name"`
	City            string         `json:"city"`
	Province        string         `json:"province"`
	Skills          pq.StringArray `gorm:"type:text[]" json:"skills"`
	Languages       pq.StringArray `gorm:"type:text[]" json:"languages"`
	ExperienceYears int            `json:"experience_years"`
	SalaryMin       *int           `json:"salary_min"`
	SalaryMax       *int           `json:"salary_max"`
	EmploymentType  EmploymentType `gorm:"type:varchar(20)" json:"employment_type"`
	Headline        string         `json:"headline"`
	Visibility      bool           `gorm:"default:true" json:"visibility"`
	ProfileScore    int            `json:"profile_score"`

	// Private fields
	LastName string `json:"last_name,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`

	// Relations
	Documents  []Document  `gorm:"foreignKey:ProfileID" json:"documents,omitempty"`
	References []Reference `gorm:"foreignKey:ProfileID" json:"references,omitempty"`
}

// Document is file metadata for an identity or certification upload.
type Document struct {
	BaseModel
	ProfileID   string         `gorm:"type:uuid;not null;index" json:"profile_id"`
	Kind        string         `json:"kind"` // nbi_clearance, barangay_clearance, certificate, id
	StorageKey  string         `gorm:"not null" json:"storage_key"`
	FileName    string         `json:"file_name"`
	ContentType string         `json:"content_type"`
	SizeBytes   int64          `json:"size_bytes"`
	Status      DocumentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}

// Reference is a named referee contact attached to a profile.
type Reference struct {
	BaseModel
	ProfileID string `gorm:"type:uuid;not null;index" json:"profile_id"`
	Name      string `gorm:"not null" json:"name"`
	Relation  string `json:"relation"`
	Phone     string `json:"phone"`
}
