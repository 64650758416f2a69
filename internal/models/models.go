package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application statuses. These are the only values the store persists.
const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffered   = "Offered"
	StatusRejected  = "Rejected"
	StatusIgnored   = "Ignored"
)

// ValidStatus reports whether s is one of the five known statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffered, StatusRejected, StatusIgnored:
		return true
	}
	return false
}

// Application is one tracked job application.
// Deletes are permanent, so no gorm.DeletedAt here.
type Application struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company  string `gorm:"not null" json:"company"`
	Position string `gorm:"not null" json:"position"`
	Status   string `gorm:"default:'Applied'" json:"status"`

	// DateApplied is set once at creation and only changes when a caller
	// supplies it explicitly on update.
	DateApplied time.Time `json:"date_applied"`

	JobURL   string `json:"job_url"`
	Salary   string `json:"salary"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// BeforeCreate assigns a fresh UUID, so concurrent creates never collide on
// an id and ids are never reused after a delete.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
