package model

import "time"

const (
	InterviewStatusScheduled = "Scheduled"
	InterviewStatusCompleted = "Completed"
	InterviewStatusCancelled = "Cancelled"
)

// InterviewStatuses lists every status an interview can be in
var InterviewStatuses = []string{
	InterviewStatusScheduled,
	InterviewStatusCompleted,
	InterviewStatusCancelled,
}

type Interview struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicationID uint   `gorm:"index;not null" json:"applicationId"`
	UserID        string `gorm:"index;not null" json:"-"`

	Type        string    `gorm:"not null" json:"type"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Platform    string    `json:"platform"`
	Interviewer string    `json:"interviewer"`
	Notes       string    `json:"notes"`
	Status      string    `gorm:"default:Scheduled" json:"status"`

	// Only ever set when the status moves to Completed
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
