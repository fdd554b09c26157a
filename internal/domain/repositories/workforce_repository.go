package repositories

import (
	"context"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// WorkforceFilters represents filter options for listing workforce metrics
type WorkforceFilters struct {
	Department *string
	MetricName *string
}

// DepartmentInsight is the grouped workforce aggregate for one department
type DepartmentInsight struct {
	Department    string  `json:"department"`
	AverageMetric float64 `json:"average_metric"`
	DataPoints    int64   `json:"data_points"`
}

// WorkforceRepository defines the interface for workforce metrics access
type WorkforceRepository interface {
	// Create creates a new workforce metric datapoint
	Create(ctx context.Context, metric *entities.WorkforceMetrics) error

	// List retrieves metrics matching the filters, newest metric_date first
	List(ctx context.Context, filters WorkforceFilters) ([]*entities.WorkforceMetrics, error)

	// GroupByDepartment averages metric_value and counts rows per department
	GroupByDepartment(ctx context.Context) ([]DepartmentInsight, error)
}
