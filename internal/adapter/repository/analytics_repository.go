package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
)

// analyticsRepository implements the AnalyticsRepository interface
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) repositories.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Create creates a new analytics record
func (r *analyticsRepository) Create(ctx context.Context, analytics *entities.MeetingAnalytics) error {
	return r.db.WithContext(ctx).Create(analytics).Error
}

// FindByMeetingID retrieves the analytics record for a meeting
func (r *analyticsRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingAnalytics, error) {
	var analytics entities.MeetingAnalytics
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		First(&analytics).Error

	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

// Update persists changes to an existing analytics record
func (r *analyticsRepository) Update(ctx context.Context, analytics *entities.MeetingAnalytics) error {
	return r.db.WithContext(ctx).Save(analytics).Error
}

// AverageSentiment averages overall_sentiment_score across all rows.
// AVG skips NULLs; a NULL result (no rows) reports 0.0.
func (r *analyticsRepository) AverageSentiment(ctx context.Context) (float64, error) {
	return r.average(ctx, "overall_sentiment_score")
}

// AverageEngagement averages engagement_score across all rows
func (r *analyticsRepository) AverageEngagement(ctx context.Context) (float64, error) {
	return r.average(ctx, "engagement_score")
}

func (r *analyticsRepository) average(ctx context.Context, column string) (float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&entities.MeetingAnalytics{}).
		Select("AVG(" + column + ")").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

// CountSentimentAbove counts analytics rows with sentiment above the threshold
func (r *analyticsRepository) CountSentimentAbove(ctx context.Context, threshold float64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.MeetingAnalytics{}).
		Where("overall_sentiment_score > ?", threshold).
		Count(&total).Error
	return total, err
}

// CountEngagementAbove counts analytics rows with engagement above the threshold
func (r *analyticsRepository) CountEngagementAbove(ctx context.Context, threshold float64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.MeetingAnalytics{}).
		Where("engagement_score > ?", threshold).
		Count(&total).Error
	return total, err
}
