package data

import (
	"encoding/json"

	"github.com/HectorGitt/MeetDash/internal/adapter/dto/common"
)

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=255"`
	Description *string         `json:"description,omitempty"`
	Date        common.DateTime `json:"date" validate:"required"`
	Duration    *int            `json:"duration,omitempty" validate:"omitempty,min=0"`
}

// UpdateMeetingRequest carries the full set of base fields for a meeting
// update; absent optional fields are cleared, matching create semantics
type UpdateMeetingRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=255"`
	Description *string         `json:"description,omitempty"`
	Date        common.DateTime `json:"date" validate:"required"`
	Duration    *int            `json:"duration,omitempty" validate:"omitempty,min=0"`
}

// ListMeetingsRequest represents query parameters for listing meetings.
// Limit is a pointer so an explicit limit=0 (zero rows) is distinguishable
// from an absent parameter (server default).
type ListMeetingsRequest struct {
	Skip  int  `query:"skip" validate:"min=0"`
	Limit *int `query:"limit" validate:"omitempty,min=0,max=1000"`
}

// CreateParticipantRequest represents the request to create a participant
type CreateParticipantRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	Email      string  `json:"email" validate:"required,email"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	MeetingID  string  `json:"meeting_id" validate:"required,uuid"`
}

// CreateConnectorRequest represents the request to create a data connector
type CreateConnectorRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=255"`
	ConnectorType string          `json:"connector_type" validate:"required,min=1,max=100"`
	Status        *string         `json:"status,omitempty" validate:"omitempty,connector_status"`
	Config        json.RawMessage `json:"config,omitempty"`
}

// CreateSentimentRequest represents the request to record a sentiment reading
type CreateSentimentRequest struct {
	ParticipantID  string          `json:"participant_id" validate:"required,uuid"`
	Timestamp      common.DateTime `json:"timestamp" validate:"required"`
	SentimentScore *float64        `json:"sentiment_score" validate:"required"`
	Emotion        *string         `json:"emotion,omitempty"`
	Confidence     *float64        `json:"confidence,omitempty"`
	TextSnippet    *string         `json:"text_snippet,omitempty"`
}
