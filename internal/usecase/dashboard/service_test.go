package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
)

type stubMeetingRepo struct {
	recent  []*entities.Meeting
	total   int64
	findErr error
}

func (r *stubMeetingRepo) Create(_ context.Context, _ *entities.Meeting) error { return nil }

func (r *stubMeetingRepo) FindByID(_ context.Context, _ uuid.UUID) (*entities.Meeting, error) {
	return nil, nil
}

func (r *stubMeetingRepo) List(_ context.Context, _, _ int) ([]*entities.Meeting, error) {
	return nil, nil
}

func (r *stubMeetingRepo) Update(_ context.Context, _ *entities.Meeting) error { return nil }

func (r *stubMeetingRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubMeetingRepo) Count(_ context.Context) (int64, error) { return r.total, nil }

func (r *stubMeetingRepo) FindRecent(_ context.Context, _ int) ([]*entities.Meeting, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.recent, nil
}

type stubAnalyticsRepo struct {
	avgSentiment  float64
	avgEngagement float64
}

func (r *stubAnalyticsRepo) Create(_ context.Context, _ *entities.MeetingAnalytics) error {
	return nil
}

func (r *stubAnalyticsRepo) FindByMeetingID(_ context.Context, _ uuid.UUID) (*entities.MeetingAnalytics, error) {
	return nil, nil
}

func (r *stubAnalyticsRepo) Update(_ context.Context, _ *entities.MeetingAnalytics) error {
	return nil
}

func (r *stubAnalyticsRepo) AverageSentiment(_ context.Context) (float64, error) {
	return r.avgSentiment, nil
}

func (r *stubAnalyticsRepo) AverageEngagement(_ context.Context) (float64, error) {
	return r.avgEngagement, nil
}

func (r *stubAnalyticsRepo) CountSentimentAbove(_ context.Context, _ float64) (int64, error) {
	return 0, nil
}

func (r *stubAnalyticsRepo) CountEngagementAbove(_ context.Context, _ float64) (int64, error) {
	return 0, nil
}

type stubParticipantRepo struct {
	total int64
}

func (r *stubParticipantRepo) CreateForMeeting(_ context.Context, _ *entities.Participant) error {
	return nil
}

func (r *stubParticipantRepo) List(_ context.Context, _ *uuid.UUID) ([]*entities.Participant, error) {
	return nil, nil
}

func (r *stubParticipantRepo) Count(_ context.Context) (int64, error) { return r.total, nil }

func (r *stubParticipantRepo) CountByDepartment(_ context.Context) ([]repositories.DepartmentCount, error) {
	return nil, nil
}

type stubSentimentRepo struct {
	// averages holds per-day values keyed by the "2006-01-02" form of the day
	averages map[string]float64
}

func (r *stubSentimentRepo) Create(_ context.Context, _ *entities.SentimentData) error { return nil }

func (r *stubSentimentRepo) List(_ context.Context, _ *uuid.UUID) ([]*entities.SentimentData, error) {
	return nil, nil
}

func (r *stubSentimentRepo) AverageForDay(_ context.Context, day time.Time) (float64, error) {
	return r.averages[day.Format("2006-01-02")], nil
}

func (r *stubSentimentRepo) TrendSince(_ context.Context, _ time.Time) ([]repositories.DailySentiment, error) {
	return nil, nil
}

type stubWorkforceRepo struct {
	insights []repositories.DepartmentInsight
	err      error
}

func (r *stubWorkforceRepo) Create(_ context.Context, _ *entities.WorkforceMetrics) error {
	return nil
}

func (r *stubWorkforceRepo) List(_ context.Context, _ repositories.WorkforceFilters) ([]*entities.WorkforceMetrics, error) {
	return nil, nil
}

func (r *stubWorkforceRepo) GroupByDepartment(_ context.Context) ([]repositories.DepartmentInsight, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.insights, nil
}

func newDashboard(
	meetings *stubMeetingRepo,
	analytics *stubAnalyticsRepo,
	participants *stubParticipantRepo,
	sentiment *stubSentimentRepo,
	workforce *stubWorkforceRepo,
) *DashboardService {
	svc := NewDashboardService(meetings, analytics, participants, sentiment, workforce, nil, 0, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestGetDashboardData_SevenDayTrendZeroFilled(t *testing.T) {
	sentiment := &stubSentimentRepo{averages: map[string]float64{
		"2024-03-05": 0.425,
	}}
	svc := newDashboard(&stubMeetingRepo{}, &stubAnalyticsRepo{}, &stubParticipantRepo{}, sentiment, &stubWorkforceRepo{})

	data := svc.GetDashboardData(context.Background())

	if len(data.SentimentTrends) != 7 {
		t.Fatalf("expected 7 trend entries, got %d", len(data.SentimentTrends))
	}
	if data.SentimentTrends[0].Date != "2024-03-03" {
		t.Fatalf("trend must start 7 days back, got %s", data.SentimentTrends[0].Date)
	}
	if data.SentimentTrends[6].Date != "2024-03-09" {
		t.Fatalf("unexpected last day %s", data.SentimentTrends[6].Date)
	}
	for _, p := range data.SentimentTrends {
		want := 0.0
		if p.Date == "2024-03-05" {
			want = 0.43
		}
		if p.Sentiment != want {
			t.Fatalf("day %s: expected %v, got %v", p.Date, want, p.Sentiment)
		}
	}
}

func TestGetDashboardData_FailSoft(t *testing.T) {
	meetings := &stubMeetingRepo{findErr: errors.New("connection refused")}
	svc := newDashboard(meetings, &stubAnalyticsRepo{}, &stubParticipantRepo{}, &stubSentimentRepo{}, &stubWorkforceRepo{})

	data := svc.GetDashboardData(context.Background())

	if data == nil {
		t.Fatalf("dashboard must always return a payload")
	}
	if data.RecentMeetings == nil || data.SentimentTrends == nil || data.WorkforceInsight == nil {
		t.Fatalf("zeroed payload must use empty lists, not null")
	}
	if len(data.RecentMeetings) != 0 || data.AnalyticsSummary.TotalMeetings != 0 {
		t.Fatalf("expected zeroed payload, got %+v", data)
	}
}

func TestGetDashboardData_UnknownDepartmentLabel(t *testing.T) {
	workforce := &stubWorkforceRepo{insights: []repositories.DepartmentInsight{
		{Department: "", AverageMetric: 7.125, DataPoints: 2},
		{Department: "Engineering", AverageMetric: 3.0, DataPoints: 5},
	}}
	svc := newDashboard(&stubMeetingRepo{}, &stubAnalyticsRepo{}, &stubParticipantRepo{}, &stubSentimentRepo{}, workforce)

	data := svc.GetDashboardData(context.Background())

	if len(data.WorkforceInsight) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(data.WorkforceInsight))
	}
	if data.WorkforceInsight[0].Department != "Unknown" {
		t.Fatalf("empty department must surface as Unknown, got %q", data.WorkforceInsight[0].Department)
	}
	if data.WorkforceInsight[0].AverageMetric != 7.13 {
		t.Fatalf("expected rounded average 7.13, got %v", data.WorkforceInsight[0].AverageMetric)
	}
}

func TestGetDashboardData_SummaryRounding(t *testing.T) {
	meetings := &stubMeetingRepo{total: 12, recent: []*entities.Meeting{{ID: uuid.New(), Title: "retro"}}}
	analytics := &stubAnalyticsRepo{avgSentiment: 0.666, avgEngagement: 0.721}
	participants := &stubParticipantRepo{total: 40}
	svc := newDashboard(meetings, analytics, participants, &stubSentimentRepo{}, &stubWorkforceRepo{})

	data := svc.GetDashboardData(context.Background())

	s := data.AnalyticsSummary
	if s.TotalMeetings != 12 || s.ActiveParticipants != 40 {
		t.Fatalf("unexpected totals %+v", s)
	}
	if s.AverageSentiment != 0.67 || s.AverageEngagement != 0.72 {
		t.Fatalf("expected two-decimal rounding, got %+v", s)
	}
	if len(data.RecentMeetings) != 1 {
		t.Fatalf("expected recent meetings passthrough")
	}
}
