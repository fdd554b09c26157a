package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MeetingAnalytics holds the computed analysis for a single meeting.
// Scores are conventionally in [-1,1] for sentiment and [0,1] for
// engagement/productivity, but the store does not enforce the ranges.
type MeetingAnalytics struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID             uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"meeting_id"`
	Meeting               *Meeting       `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"meeting,omitempty"`
	OverallSentimentScore *float64       `json:"overall_sentiment_score,omitempty"`
	EngagementScore       *float64       `json:"engagement_score,omitempty"`
	ProductivityScore     *float64       `json:"productivity_score,omitempty"`
	KeyTopics             datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"key_topics,omitempty"`
	ActionItems           datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"action_items,omitempty"`
	Summary               *string        `gorm:"type:text" json:"summary,omitempty"`
	CreatedAt             time.Time      `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for MeetingAnalytics
func (MeetingAnalytics) TableName() string {
	return "meeting_analytics"
}
