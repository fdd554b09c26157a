package analytics

import (
	"encoding/json"
	"time"
)

// AnalyticsResponse represents a meeting analytics record in responses
type AnalyticsResponse struct {
	ID                    string          `json:"id"`
	MeetingID             string          `json:"meeting_id"`
	OverallSentimentScore *float64        `json:"overall_sentiment_score,omitempty"`
	EngagementScore       *float64        `json:"engagement_score,omitempty"`
	ProductivityScore     *float64        `json:"productivity_score,omitempty"`
	KeyTopics             json.RawMessage `json:"key_topics,omitempty"`
	ActionItems           json.RawMessage `json:"action_items,omitempty"`
	Summary               *string         `json:"summary,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

// WorkforceMetricResponse represents a workforce datapoint in responses
type WorkforceMetricResponse struct {
	ID          string    `json:"id"`
	Department  string    `json:"department"`
	MetricName  string    `json:"metric_name"`
	MetricValue float64   `json:"metric_value"`
	MetricDate  time.Time `json:"metric_date"`
	CreatedAt   time.Time `json:"created_at"`
}
