package dto

type UpsertEmployerProfileRequest struct {
	DisplayName   string `json:"display_name" validate:"required,min=2,max=100"`
	City          string `json:"city" validate:"omitempty,max=100"`
	Province      string `json:"province" validate:"omitempty,max=100"`
	Phone         string `json:"phone" validate:"omitempty,ph_mobile"`
	HouseholdSize int    `json:"household_size" validate:"omitempty,min=1,max=50"`
}
