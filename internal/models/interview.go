package models

import "time"

type Interview struct {
	BaseModel
	EmployerID string          `gorm:"type:uuid;not null;index" json:"employer_id"`
	WorkerID   string          `gorm:"type:uuid;not null;index" json:"worker_id"`
	StartsAt   time.Time       `gorm:"not null" json:"starts_at"`
	Status     InterviewStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	Notes      string          `json:"notes"`
}
