package entities

import (
	"time"

	"github.com/google/uuid"
)

// Meeting represents a recorded or scheduled meeting
type Meeting struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title             string    `gorm:"type:varchar(255);not null" json:"title"`
	Description       *string   `gorm:"type:text" json:"description,omitempty"`
	Date              time.Time `gorm:"not null;index" json:"date"`
	Duration          *int      `json:"duration,omitempty"` // minutes
	ParticipantsCount int       `gorm:"default:0" json:"participants_count"`
	CreatedAt         time.Time `gorm:"default:now();index" json:"created_at"`
	UpdatedAt         time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}
