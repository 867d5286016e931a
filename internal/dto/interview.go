package dto

import "time"

type ScheduleInterviewRequest struct {
	WorkerID string    `json:"worker_id" validate:"required,uuid4"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	Notes    string    `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateInterviewRequest struct {
	StartsAt *time.Time `json:"starts_at"`
	Status   *string    `json:"status" validate:"omitempty,oneof=scheduled completed canceled"`
	Notes    *string    `json:"notes" validate:"omitempty,max=1000"`
}
