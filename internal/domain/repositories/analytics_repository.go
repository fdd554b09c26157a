package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// AnalyticsRepository defines the interface for meeting analytics data access
type AnalyticsRepository interface {
	// Create creates a new analytics record
	Create(ctx context.Context, analytics *entities.MeetingAnalytics) error

	// FindByMeetingID retrieves the analytics record for a meeting
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingAnalytics, error)

	// Update persists changes to an existing analytics record
	Update(ctx context.Context, analytics *entities.MeetingAnalytics) error

	// AverageSentiment returns the average overall sentiment score across
	// all analytics rows, nulls excluded, 0.0 when no rows exist
	AverageSentiment(ctx context.Context) (float64, error)

	// AverageEngagement returns the average engagement score across all
	// analytics rows, nulls excluded, 0.0 when no rows exist
	AverageEngagement(ctx context.Context) (float64, error)

	// CountSentimentAbove counts analytics rows with sentiment above the threshold
	CountSentimentAbove(ctx context.Context, threshold float64) (int64, error)

	// CountEngagementAbove counts analytics rows with engagement above the threshold
	CountEngagementAbove(ctx context.Context, threshold float64) (int64, error)
}
