package models

import "time"

const (
	ActionCreate = "create"
	ActionUpdate = "update"
)

// SubmissionEvent is published once a charity payload has been accepted by the API.
type SubmissionEvent struct {
	EventID     string         `json:"event_id"     validate:"required,uuid"`
	Action      string         `json:"action"       validate:"oneof=create update"`
	CharityID   *int64         `json:"charity_id,omitempty" validate:"required_if=Action update"`
	SubmittedAt time.Time      `json:"submitted_at" validate:"required"`
	Charity     CharityPayload `json:"charity"`
}

// Submission is the audit row stored for every consumed event.
type Submission struct {
	EventID     string    `json:"event_id"     gorm:"primary_key;type:varchar(36)"`
	Action      string    `json:"action"       gorm:"type:varchar(8)"`
	CharityID   *int64    `json:"charity_id"   gorm:"index"`
	CharityName string    `json:"charity_name" gorm:"index"`
	WishCount   int       `json:"wish_count"`
	TotalAmount float64   `json:"total_amount" gorm:"type:decimal(12,2)"`
	Payload     string    `json:"-"            gorm:"type:text"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"index"`
}
