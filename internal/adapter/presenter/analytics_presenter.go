package presenter

import (
	"encoding/json"

	"github.com/HectorGitt/MeetDash/internal/adapter/dto/analytics"
	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// ToAnalyticsResponse converts a MeetingAnalytics entity to AnalyticsResponse DTO
func ToAnalyticsResponse(a *entities.MeetingAnalytics) *analytics.AnalyticsResponse {
	if a == nil {
		return nil
	}

	return &analytics.AnalyticsResponse{
		ID:                    a.ID.String(),
		MeetingID:             a.MeetingID.String(),
		OverallSentimentScore: a.OverallSentimentScore,
		EngagementScore:       a.EngagementScore,
		ProductivityScore:     a.ProductivityScore,
		KeyTopics:             json.RawMessage(a.KeyTopics),
		ActionItems:           json.RawMessage(a.ActionItems),
		Summary:               a.Summary,
		CreatedAt:             a.CreatedAt,
	}
}

// ToWorkforceMetricResponse converts a WorkforceMetrics entity to its DTO
func ToWorkforceMetricResponse(m *entities.WorkforceMetrics) *analytics.WorkforceMetricResponse {
	if m == nil {
		return nil
	}

	return &analytics.WorkforceMetricResponse{
		ID:          m.ID.String(),
		Department:  m.Department,
		MetricName:  m.MetricName,
		MetricValue: m.MetricValue,
		MetricDate:  m.MetricDate,
		CreatedAt:   m.CreatedAt,
	}
}

// ToWorkforceMetricListResponse converts a slice of WorkforceMetrics entities
func ToWorkforceMetricListResponse(metrics []*entities.WorkforceMetrics) []*analytics.WorkforceMetricResponse {
	responses := make([]*analytics.WorkforceMetricResponse, len(metrics))
	for i, m := range metrics {
		responses[i] = ToWorkforceMetricResponse(m)
	}
	return responses
}
