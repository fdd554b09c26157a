package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
)

// sentimentRepository implements the SentimentRepository interface
type sentimentRepository struct {
	db *gorm.DB
}

// NewSentimentRepository creates a new sentiment repository
func NewSentimentRepository(db *gorm.DB) repositories.SentimentRepository {
	return &sentimentRepository{db: db}
}

// Create creates a new sentiment reading
func (r *sentimentRepository) Create(ctx context.Context, data *entities.SentimentData) error {
	return r.db.WithContext(ctx).Create(data).Error
}

// List retrieves sentiment readings, optionally filtered by participant
func (r *sentimentRepository) List(ctx context.Context, participantID *uuid.UUID) ([]*entities.SentimentData, error) {
	var readings []*entities.SentimentData
	query := r.db.WithContext(ctx).Model(&entities.SentimentData{})

	if participantID != nil {
		query = query.Where("participant_id = ?", *participantID)
	}

	err := query.Find(&readings).Error
	return readings, err
}

// AverageForDay averages sentiment for readings on the given calendar day
func (r *sentimentRepository) AverageForDay(ctx context.Context, day time.Time) (float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&entities.SentimentData{}).
		Select("AVG(sentiment_score)").
		Where("DATE(timestamp) = DATE(?)", day).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

// TrendSince groups readings at or after start by calendar day
func (r *sentimentRepository) TrendSince(ctx context.Context, start time.Time) ([]repositories.DailySentiment, error) {
	var trend []repositories.DailySentiment
	err := r.db.WithContext(ctx).
		Model(&entities.SentimentData{}).
		Select("DATE(timestamp) AS date, AVG(sentiment_score) AS average_sentiment, COUNT(id) AS data_points").
		Where("timestamp >= ?", start).
		Group("DATE(timestamp)").
		Order("date").
		Scan(&trend).Error
	return trend, err
}
