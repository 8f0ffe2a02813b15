package model

import "time"

const (
	AppStatusApplied   = "Applied"
	AppStatusInterview = "Interview"
	AppStatusOffer     = "Offer"
	AppStatusAccepted  = "Accepted"
	AppStatusRejected  = "Rejected"
)

// ApplicationStatuses lists every status an application can be in
var ApplicationStatuses = []string{
	AppStatusApplied,
	AppStatusInterview,
	AppStatusOffer,
	AppStatusAccepted,
	AppStatusRejected,
}

const DefaultNextStep = "Await response"

type Application struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"index;not null" json:"-"`

	Company         string    `gorm:"not null" json:"company"`
	Position        string    `gorm:"not null" json:"position"`
	Location        string    `json:"location"`
	Status          string    `gorm:"default:Applied;index" json:"status"`
	ApplicationDate time.Time `gorm:"index" json:"applicationDate"`
	NextStep        string    `json:"nextStep"`

	// The FK keeps this list exactly in sync with the interviews that
	// point back at the application, nobody maintains it by hand.
	Interviews []Interview `gorm:"foreignKey:ApplicationID" json:"interviews,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
