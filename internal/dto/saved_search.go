package dto

import "encoding/json"

type SaveSearchRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=100"`
	Filters   json.RawMessage `json:"filters" validate:"required"`
	IsDefault bool            `json:"is_default"`
}

type UpdateSavedSearchRequest struct {
	Name      *string         `json:"name" validate:"omitempty,min=1,max=100"`
	Filters   json.RawMessage `json:"filters"`
	IsDefault *bool           `json:"is_default"`
}
