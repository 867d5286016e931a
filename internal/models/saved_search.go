package models

import (
	"gorm.io/datatypes"
)

// SavedSearch is a named, serialized filter payload owned by an employer.
// At most one per employer should be the default; this is enforced by the
// write path, not by a database constraint.
type SavedSearch struct {
	BaseModel
	EmployerID string         `gorm:"type:uuid;not null;index" json:"employer_id"`
	Name       string         `gorm:"not null" json:"name"`
	Filters    datatypes.JSON `gorm:"type:jsonb" json:"filters"`
	IsDefault  bool           `gorm:"default:false" json:"is_default"`
}
