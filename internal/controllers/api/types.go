package api

import (
	sw_uuid "github.com/spendwise/backend/internal/uuid"
)

type URIID struct {
	ID sw_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// FieldError carries a validation message for a single request field.
type FieldError struct {
	Field   string `json:"field" example:"amount"`
	Message string `json:"message" example:"amount must be greater than 0"`
}

// Response is the envelope for every JSON body this API returns.
type Response struct {
	Message string       `json:"message" example:"Transaction created"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}
