package dashboard

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
)

const (
	recentMeetingsLimit = 5
	trendDays           = 7
	cacheKey            = "dashboard:data"
)

// DashboardService fans out to the aggregation queries and merges the
// results into one payload
type DashboardService struct {
	meetingRepo     repositories.MeetingRepository
	analyticsRepo   repositories.AnalyticsRepository
	participantRepo repositories.ParticipantRepository
	sentimentRepo   repositories.SentimentRepository
	workforceRepo   repositories.WorkforceRepository
	cache           *redis.Client // nil disables caching
	cacheTTL        time.Duration
	logger          *zap.Logger
	now             func() time.Time
}

// NewDashboardService creates a new dashboard service. cache may be nil.
func NewDashboardService(
	meetingRepo repositories.MeetingRepository,
	analyticsRepo repositories.AnalyticsRepository,
	participantRepo repositories.ParticipantRepository,
	sentimentRepo repositories.SentimentRepository,
	workforceRepo repositories.WorkforceRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		meetingRepo:     meetingRepo,
		analyticsRepo:   analyticsRepo,
		participantRepo: participantRepo,
		sentimentRepo:   sentimentRepo,
		workforceRepo:   workforceRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
		logger:          logger,
		now:             time.Now,
	}
}

// GetDashboardData composes the dashboard view. Fail-soft: any underlying
// error is logged and the zeroed shape is returned so the dashboard can
// always render.
func (s *DashboardService) GetDashboardData(ctx context.Context) *Data {
	if cached := s.fromCache(ctx); cached != nil {
		return cached
	}

	data, err := s.compose(ctx)
	if err != nil {
		s.logger.Error("dashboard.compose_failed", zap.Error(err))
		return emptyData()
	}

	s.toCache(ctx, data)
	return data
}

func (s *DashboardService) compose(ctx context.Context) (*Data, error) {
	recent, err := s.meetingRepo.FindRecent(ctx, recentMeetingsLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []*entities.Meeting{}
	}

	totalMeetings, err := s.meetingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	avgSentiment, err := s.analyticsRepo.AverageSentiment(ctx)
	if err != nil {
		return nil, err
	}
	avgEngagement, err := s.analyticsRepo.AverageEngagement(ctx)
	if err != nil {
		return nil, err
	}
	totalParticipants, err := s.participantRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	trends, err := s.sentimentTrend(ctx)
	if err != nil {
		return nil, err
	}

	insights, err := s.workforceRepo.GroupByDepartment(ctx)
	if err != nil {
		return nil, err
	}
	workforce := make([]Insight, 0, len(insights))
	for _, in := range insights {
		department := in.Department
		if department == "" {
			department = "Unknown"
		}
		workforce = append(workforce, Insight{
			Department:    department,
			AverageMetric: round2(in.AverageMetric),
			DataPoints:    in.DataPoints,
		})
	}

	return &Data{
		RecentMeetings: recent,
		AnalyticsSummary: Summary{
			TotalMeetings:      totalMeetings,
			AverageSentiment:   round2(avgSentiment),
			AverageEngagement:  round2(avgEngagement),
			ActiveParticipants: totalParticipants,
		},
		SentimentTrends:  trends,
		WorkforceInsight: workforce,
	}, nil
}

// sentimentTrend walks the 7 calendar days starting at now-7d. Days with
// no readings report 0.0 rather than being omitted.
func (s *DashboardService) sentimentTrend(ctx context.Context) ([]TrendPoint, error) {
	start := s.now().UTC().AddDate(0, 0, -trendDays)

	trend := make([]TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		day := start.AddDate(0, 0, i)
		avg, err := s.sentimentRepo.AverageForDay(ctx, day)
		if err != nil {
			return nil, err
		}
		trend = append(trend, TrendPoint{
			Date:      day.Format("2006-01-02"),
			Sentiment: round2(avg),
		})
	}
	return trend, nil
}

func (s *DashboardService) fromCache(ctx context.Context) *Data {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("dashboard.cache_read_failed", zap.Error(err))
		}
		return nil
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("dashboard.cache_decode_failed", zap.Error(err))
		return nil
	}
	return &data
}

func (s *DashboardService) toCache(ctx context.Context, data *Data) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		s.logger.Warn("dashboard.cache_encode_failed", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, cacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("dashboard.cache_write_failed", zap.Error(err))
	}
}

// emptyData is the zeroed shape returned on any composition failure
func emptyData() *Data {
	return &Data{
		RecentMeetings:   []*entities.Meeting{},
		AnalyticsSummary: Summary{},
		SentimentTrends:  []TrendPoint{},
		WorkforceInsight: []Insight{},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
