package entities

import (
	"time"

	"github.com/google/uuid"
)

// SentimentData is a single sentiment reading captured for a participant
type SentimentData struct {
	ID             uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ParticipantID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"participant_id"`
	Participant    *Participant `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"participant,omitempty"`
	Timestamp      time.Time    `gorm:"not null;index" json:"timestamp"`
	SentimentScore float64      `json:"sentiment_score"` // -1 to 1 scale
	Emotion        *string      `gorm:"type:varchar(50)" json:"emotion,omitempty"`
	Confidence     *float64     `json:"confidence,omitempty"` // 0 to 1 scale
	TextSnippet    *string      `gorm:"type:text" json:"text_snippet,omitempty"`
}

// TableName specifies the table name for SentimentData
func (SentimentData) TableName() string {
	return "sentiment_data"
}
