package analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
	usecaseErrors "github.com/HectorGitt/MeetDash/internal/usecase/errors"
)

// Sentiment above positiveSentimentThreshold counts a meeting as positive;
// engagement above highEngagementThreshold counts it as highly engaged.
const (
	positiveSentimentThreshold = 0.5
	highEngagementThreshold    = 0.7
)

// AnalyticsService handles meeting analytics, sentiment and workforce logic
type AnalyticsService struct {
	analyticsRepo   repositories.AnalyticsRepository
	meetingRepo     repositories.MeetingRepository
	participantRepo repositories.ParticipantRepository
	sentimentRepo   repositories.SentimentRepository
	workforceRepo   repositories.WorkforceRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	meetingRepo repositories.MeetingRepository,
	participantRepo repositories.ParticipantRepository,
	sentimentRepo repositories.SentimentRepository,
	workforceRepo repositories.WorkforceRepository,
) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo:   analyticsRepo,
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		sentimentRepo:   sentimentRepo,
		workforceRepo:   workforceRepo,
	}
}

// CreateAnalyticsInput represents input for creating meeting analytics
type CreateAnalyticsInput struct {
	OverallSentimentScore *float64
	EngagementScore       *float64
	ProductivityScore     *float64
	KeyTopics             datatypes.JSON
	ActionItems           datatypes.JSON
	Summary               *string
}

// UpdateAnalyticsInput carries a sparse set of analytics fields; nil means
// the field was not provided and keeps its prior value
type UpdateAnalyticsInput struct {
	OverallSentimentScore *float64
	EngagementScore       *float64
	ProductivityScore     *float64
	KeyTopics             datatypes.JSON
	ActionItems           datatypes.JSON
	Summary               *string
}

// CreateSentimentInput represents input for recording a sentiment reading
type CreateSentimentInput struct {
	ParticipantID  uuid.UUID
	Timestamp      time.Time
	SentimentScore float64
	Emotion        *string
	Confidence     *float64
	TextSnippet    *string
}

// CreateWorkforceMetricInput represents input for a workforce datapoint
type CreateWorkforceMetricInput struct {
	Department  string
	MetricName  string
	MetricValue float64
	MetricDate  time.Time
}

// TrendPoint is one day of the N-day sentiment trend
type TrendPoint struct {
	Date             string  `json:"date"`
	AverageSentiment float64 `json:"average_sentiment"`
	DataPoints       int64   `json:"data_points"`
}

// SummaryOverview holds the overall statistics block
type SummaryOverview struct {
	TotalMeetings              int64   `json:"total_meetings"`
	TotalParticipants          int64   `json:"total_participants"`
	AverageSentiment           float64 `json:"average_sentiment"`
	PositiveMeetingsPercentage float64 `json:"positive_meetings_percentage"`
	AverageEngagement          float64 `json:"average_engagement"`
	HighEngagementPercentage   float64 `json:"high_engagement_percentage"`
}

// DepartmentSummary is the participant breakdown for one department
type DepartmentSummary struct {
	Name             string `json:"name"`
	ParticipantCount int64  `json:"participant_count"`
}

// SummaryOutput is the full analytics summary
type SummaryOutput struct {
	Overview    SummaryOverview     `json:"overview"`
	Departments []DepartmentSummary `json:"departments"`
}

// GetMeetingAnalytics retrieves the analytics record for a meeting
func (s *AnalyticsService) GetMeetingAnalytics(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingAnalytics, error) {
	analytics, err := s.analyticsRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrAnalyticsNotFound
		}
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}
	return analytics, nil
}

// CreateMeetingAnalytics creates the analytics record for a meeting
func (s *AnalyticsService) CreateMeetingAnalytics(ctx context.Context, meetingID uuid.UUID, input CreateAnalyticsInput) (*entities.MeetingAnalytics, error) {
	if _, err := s.meetingRepo.FindByID(ctx, meetingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	if _, err := s.analyticsRepo.FindByMeetingID(ctx, meetingID); err == nil {
		return nil, usecaseErrors.ErrAnalyticsExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing analytics: %w", err)
	}

	analytics := &entities.MeetingAnalytics{
		MeetingID:             meetingID,
		OverallSentimentScore: input.OverallSentimentScore,
		EngagementScore:       input.EngagementScore,
		ProductivityScore:     input.ProductivityScore,
		KeyTopics:             input.KeyTopics,
		ActionItems:           input.ActionItems,
		Summary:               input.Summary,
		CreatedAt:             time.Now().UTC(),
	}

	if err := s.analyticsRepo.Create(ctx, analytics); err != nil {
		return nil, fmt.Errorf("failed to create analytics: %w", err)
	}
	return analytics, nil
}

// UpdateMeetingAnalytics merges the provided fields into the stored record
func (s *AnalyticsService) UpdateMeetingAnalytics(ctx context.Context, meetingID uuid.UUID, input UpdateAnalyticsInput) (*entities.MeetingAnalytics, error) {
	analytics, err := s.GetMeetingAnalytics(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	applyAnalyticsUpdate(analytics, input)

	if err := s.analyticsRepo.Update(ctx, analytics); err != nil {
		return nil, fmt.Errorf("failed to update analytics: %w", err)
	}
	return analytics, nil
}

// applyAnalyticsUpdate copies only the provided fields onto the record
func applyAnalyticsUpdate(analytics *entities.MeetingAnalytics, input UpdateAnalyticsInput) {
	if input.OverallSentimentScore != nil {
		analytics.OverallSentimentScore = input.OverallSentimentScore
	}
	if input.EngagementScore != nil {
		analytics.EngagementScore = input.EngagementScore
	}
	if input.ProductivityScore != nil {
		analytics.ProductivityScore = input.ProductivityScore
	}
	if input.KeyTopics != nil {
		analytics.KeyTopics = input.KeyTopics
	}
	if input.ActionItems != nil {
		analytics.ActionItems = input.ActionItems
	}
	if input.Summary != nil {
		analytics.Summary = input.Summary
	}
}

// ListSentiment retrieves sentiment readings, optionally by participant
func (s *AnalyticsService) ListSentiment(ctx context.Context, participantID *uuid.UUID) ([]*entities.SentimentData, error) {
	readings, err := s.sentimentRepo.List(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sentiment data: %w", err)
	}
	return readings, nil
}

// CreateSentiment records a sentiment reading
func (s *AnalyticsService) CreateSentiment(ctx context.Context, input CreateSentimentInput) (*entities.SentimentData, error) {
	data := &entities.SentimentData{
		ParticipantID:  input.ParticipantID,
		Timestamp:      input.Timestamp,
		SentimentScore: input.SentimentScore,
		Emotion:        input.Emotion,
		Confidence:     input.Confidence,
		TextSnippet:    input.TextSnippet,
	}

	if err := s.sentimentRepo.Create(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to create sentiment data: %w", err)
	}
	return data, nil
}

// SentimentTrends groups readings from the trailing window by calendar day
func (s *AnalyticsService) SentimentTrends(ctx context.Context, days int) ([]TrendPoint, error) {
	if days <= 0 {
		days = 30
	}
	start := time.Now().UTC().AddDate(0, 0, -days)

	daily, err := s.sentimentRepo.TrendSince(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sentiment trends: %w", err)
	}

	trend := make([]TrendPoint, 0, len(daily))
	for _, d := range daily {
		trend = append(trend, TrendPoint{
			Date:             d.Date.Format("2006-01-02"),
			AverageSentiment: round3(d.AverageSentiment),
			DataPoints:       d.DataPoints,
		})
	}
	return trend, nil
}

// ListWorkforceMetrics retrieves metrics matching the filters
func (s *AnalyticsService) ListWorkforceMetrics(ctx context.Context, filters repositories.WorkforceFilters) ([]*entities.WorkforceMetrics, error) {
	metrics, err := s.workforceRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list workforce metrics: %w", err)
	}
	return metrics, nil
}

// CreateWorkforceMetric records a workforce metric datapoint
func (s *AnalyticsService) CreateWorkforceMetric(ctx context.Context, input CreateWorkforceMetricInput) (*entities.WorkforceMetrics, error) {
	metric := &entities.WorkforceMetrics{
		Department:  input.Department,
		MetricName:  input.MetricName,
		MetricValue: input.MetricValue,
		MetricDate:  input.MetricDate,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.workforceRepo.Create(ctx, metric); err != nil {
		return nil, fmt.Errorf("failed to create workforce metric: %w", err)
	}
	return metric, nil
}

// Summary computes the overview statistics and department breakdown
func (s *AnalyticsService) Summary(ctx context.Context) (*SummaryOutput, error) {
	totalMeetings, err := s.meetingRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count meetings: %w", err)
	}
	totalParticipants, err := s.participantRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	avgSentiment, err := s.analyticsRepo.AverageSentiment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to average sentiment: %w", err)
	}
	positiveMeetings, err := s.analyticsRepo.CountSentimentAbove(ctx, positiveSentimentThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to count positive meetings: %w", err)
	}

	avgEngagement, err := s.analyticsRepo.AverageEngagement(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to average engagement: %w", err)
	}
	highEngagement, err := s.analyticsRepo.CountEngagementAbove(ctx, highEngagementThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to count high engagement meetings: %w", err)
	}

	deptCounts, err := s.participantRepo.CountByDepartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to group participants by department: %w", err)
	}

	departments := make([]DepartmentSummary, 0, len(deptCounts))
	for _, d := range deptCounts {
		departments = append(departments, DepartmentSummary{
			Name:             d.Department,
			ParticipantCount: d.ParticipantCount,
		})
	}

	return &SummaryOutput{
		Overview: SummaryOverview{
			TotalMeetings:              totalMeetings,
			TotalParticipants:          totalParticipants,
			AverageSentiment:           round3(avgSentiment),
			PositiveMeetingsPercentage: percentage(positiveMeetings, totalMeetings),
			AverageEngagement:          round3(avgEngagement),
			HighEngagementPercentage:   percentage(highEngagement, totalMeetings),
		},
		Departments: departments,
	}, nil
}

// percentage computes count/total*100 rounded to 1 decimal; a zero total
// reports 0.0 instead of dividing by zero
func percentage(count, total int64) float64 {
	if total < 1 {
		total = 1
	}
	return round1(float64(count) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
