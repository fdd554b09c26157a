package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// DailySentiment is the grouped sentiment aggregate for one calendar day
type DailySentiment struct {
	Date             time.Time `json:"date"`
	AverageSentiment float64   `json:"average_sentiment"`
	DataPoints       int64     `json:"data_points"`
}

// SentimentRepository defines the interface for sentiment data access
type SentimentRepository interface {
	// Create creates a new sentiment reading
	Create(ctx context.Context, data *entities.SentimentData) error

	// List retrieves sentiment readings, optionally filtered by participant
	List(ctx context.Context, participantID *uuid.UUID) ([]*entities.SentimentData, error)

	// AverageForDay returns the average sentiment score for readings whose
	// timestamp falls on the given calendar day, 0.0 when none exist
	AverageForDay(ctx context.Context, day time.Time) (float64, error)

	// TrendSince groups readings at or after start by calendar day; days
	// without readings are absent from the result
	TrendSince(ctx context.Context, start time.Time) ([]DailySentiment, error)
}
