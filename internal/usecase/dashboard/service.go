package dashboard

import (
	"context"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// Service defines the interface for the dashboard use case
type Service interface {
	// GetDashboardData composes the dashboard view. It never fails: any
	// underlying error is logged and a zeroed shape is returned instead.
	GetDashboardData(ctx context.Context) *Data
}

// Data is the composed dashboard payload
type Data struct {
	RecentMeetings   []*entities.Meeting `json:"recent_meetings"`
	AnalyticsSummary Summary             `json:"analytics_summary"`
	SentimentTrends  []TrendPoint        `json:"sentiment_trends"`
	WorkforceInsight []Insight           `json:"workforce_insights"`
}

// Summary is the aggregate block of the dashboard
type Summary struct {
	TotalMeetings      int64   `json:"total_meetings"`
	AverageSentiment   float64 `json:"average_sentiment"`
	AverageEngagement  float64 `json:"average_engagement"`
	ActiveParticipants int64   `json:"active_participants"`
}

// TrendPoint is one day of the fixed 7-day dashboard trend. Unlike the
// generic trend endpoint, days without readings are present with 0.0.
type TrendPoint struct {
	Date      string  `json:"date"`
	Sentiment float64 `json:"sentiment"`
}

// Insight is the workforce aggregate for one department
type Insight struct {
	Department    string  `json:"department"`
	AverageMetric float64 `json:"average_metric"`
	DataPoints    int64   `json:"data_points"`
}
