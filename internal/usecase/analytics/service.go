package analytics

import (
	"context"

	"github.com/google/uuid"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
)

// Service defines the interface for the analytics use case
type Service interface {
	// GetMeetingAnalytics retrieves the analytics record for a meeting
	GetMeetingAnalytics(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingAnalytics, error)

	// CreateMeetingAnalytics creates the analytics record for a meeting;
	// fails if the meeting is absent or a record already exists
	CreateMeetingAnalytics(ctx context.Context, meetingID uuid.UUID, input CreateAnalyticsInput) (*entities.MeetingAnalytics, error)

	// UpdateMeetingAnalytics applies only the fields present in the input,
	// leaving absent fields at their prior values
	UpdateMeetingAnalytics(ctx context.Context, meetingID uuid.UUID, input UpdateAnalyticsInput) (*entities.MeetingAnalytics, error)

	// ListSentiment retrieves sentiment readings, optionally by participant
	ListSentiment(ctx context.Context, participantID *uuid.UUID) ([]*entities.SentimentData, error)

	// CreateSentiment records a sentiment reading
	CreateSentiment(ctx context.Context, input CreateSentimentInput) (*entities.SentimentData, error)

	// SentimentTrends groups readings from the trailing window by calendar
	// day; days without readings are absent from the result
	SentimentTrends(ctx context.Context, days int) ([]TrendPoint, error)

	// ListWorkforceMetrics retrieves metrics matching the filters
	ListWorkforceMetrics(ctx context.Context, filters repositories.WorkforceFilters) ([]*entities.WorkforceMetrics, error)

	// CreateWorkforceMetric records a workforce metric datapoint
	CreateWorkforceMetric(ctx context.Context, input CreateWorkforceMetricInput) (*entities.WorkforceMetrics, error)

	// Summary computes the overview statistics and department breakdown
	Summary(ctx context.Context) (*SummaryOutput, error)
}
