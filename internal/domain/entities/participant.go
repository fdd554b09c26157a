package entities

import (
	"github.com/google/uuid"
)

// Participant represents a person attached to a meeting
type Participant struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	Role       *string   `gorm:"type:varchar(100)" json:"role,omitempty"`
	Department *string   `gorm:"type:varchar(100);index" json:"department,omitempty"`
	MeetingID  uuid.UUID `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Meeting    *Meeting  `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"meeting,omitempty"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}
