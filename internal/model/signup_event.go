package model

import "time"

// SignupStatus represents the outcome of an onboarding submission.
type SignupStatus string

const (
	SignupStatusAccepted SignupStatus = "accepted"
	SignupStatusFailed   SignupStatus = "failed"
)

// SignupEvent is an append-only audit record of an onboarding submission.
// Written asynchronously; operators read these for failure detail that is
// never leaked to the client.
type SignupEvent struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	UserID       uint         `json:"user_id" gorm:"index"` // zero when the submission failed
	Email        string       `json:"email" gorm:"size:255;index"`
	Status       SignupStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	ErrorMessage string       `json:"error_message,omitempty" gorm:"size:1024"`
	CreatedAt    time.Time    `json:"created_at"`
}
