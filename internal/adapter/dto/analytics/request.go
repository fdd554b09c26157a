package analytics

import (
	"encoding/json"

	"github.com/HectorGitt/MeetDash/internal/adapter/dto/common"
)

// CreateAnalyticsRequest represents the request to create meeting analytics.
// All fields are optional; the meeting id comes from the path.
type CreateAnalyticsRequest struct {
	OverallSentimentScore *float64        `json:"overall_sentiment_score,omitempty"`
	EngagementScore       *float64        `json:"engagement_score,omitempty"`
	ProductivityScore     *float64        `json:"productivity_score,omitempty"`
	KeyTopics             json.RawMessage `json:"key_topics,omitempty"`
	ActionItems           json.RawMessage `json:"action_items,omitempty"`
	Summary               *string         `json:"summary,omitempty"`
}

// UpdateAnalyticsRequest carries a sparse analytics update; absent fields
// keep their stored values
type UpdateAnalyticsRequest struct {
	OverallSentimentScore *float64        `json:"overall_sentiment_score,omitempty"`
	EngagementScore       *float64        `json:"engagement_score,omitempty"`
	ProductivityScore     *float64        `json:"productivity_score,omitempty"`
	KeyTopics             json.RawMessage `json:"key_topics,omitempty"`
	ActionItems           json.RawMessage `json:"action_items,omitempty"`
	Summary               *string         `json:"summary,omitempty"`
}

// TrendsRequest represents query parameters for the N-day sentiment trend
type TrendsRequest struct {
	Days int `query:"days" validate:"min=0,max=365"`
}

// ListWorkforceRequest represents query parameters for listing metrics
type ListWorkforceRequest struct {
	Department *string `query:"department"`
	MetricName *string `query:"metric_name"`
}

// CreateWorkforceMetricRequest represents the request to record a metric
type CreateWorkforceMetricRequest struct {
	Department  string          `json:"department" validate:"required,min=1,max=100"`
	MetricName  string          `json:"metric_name" validate:"required,min=1,max=100"`
	MetricValue *float64        `json:"metric_value" validate:"required"`
	MetricDate  common.DateTime `json:"metric_date" validate:"required"`
}
