package dtos

import "time"

type ApplicationCreateRequest struct {
	Company  string `json:"company" binding:"required"`
	Position string `json:"position" binding:"required"`

	// Optional Fields
	Status      string     `json:"status"` // Defaults to "Applied" if empty
	DateApplied *time.Time `json:"date_applied"`
	JobURL      string     `json:"job_url"`
	Salary      string     `json:"salary"`
	Location    string     `json:"location"`
	Notes       string     `json:"notes"`
}

// ApplicationUpdateRequest carries a partial update. Pointer fields
// distinguish "not supplied" from "set to empty": only non-nil fields are
// merged into the stored record.
type ApplicationUpdateRequest struct {
	Company     *string    `json:"company"`
	Position    *string    `json:"position"`
	Status      *string    `json:"status"`
	DateApplied *time.Time `json:"date_applied"`
	JobURL      *string    `json:"job_url"`
	Salary      *string    `json:"salary"`
	Location    *string    `json:"location"`
	Notes       *string    `json:"notes"`
}

type BulletGenerationRequest struct {
	Description string `json:"description" binding:"required"`
}
