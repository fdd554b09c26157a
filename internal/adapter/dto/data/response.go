package data

import (
	"encoding/json"
	"time"
)

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       *string   `json:"description,omitempty"`
	Date              time.Time `json:"date"`
	Duration          *int      `json:"duration,omitempty"`
	ParticipantsCount int       `json:"participants_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ParticipantResponse represents a participant in responses
type ParticipantResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	MeetingID  string  `json:"meeting_id"`
}

// ConnectorResponse represents a data connector in responses
type ConnectorResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ConnectorType string          `json:"connector_type"`
	Status        string          `json:"status"`
	LastSync      *time.Time      `json:"last_sync,omitempty"`
	Config        json.RawMessage `json:"config,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SentimentResponse represents a sentiment reading in responses
type SentimentResponse struct {
	ID             string    `json:"id"`
	ParticipantID  string    `json:"participant_id"`
	Timestamp      time.Time `json:"timestamp"`
	SentimentScore float64   `json:"sentiment_score"`
	Emotion        *string   `json:"emotion,omitempty"`
	Confidence     *float64  `json:"confidence,omitempty"`
	TextSnippet    *string   `json:"text_snippet,omitempty"`
}
