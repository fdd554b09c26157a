package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
)

// workforceRepository implements the WorkforceRepository interface
type workforceRepository struct {
	db *gorm.DB
}

// NewWorkforceRepository creates a new workforce metrics repository
func NewWorkforceRepository(db *gorm.DB) repositories.WorkforceRepository {
	return &workforceRepository{db: db}
}

// Create creates a new workforce metric datapoint
func (r *workforceRepository) Create(ctx context.Context, metric *entities.WorkforceMetrics) error {
	return r.db.WithContext(ctx).Create(metric).Error
}

// List retrieves metrics matching the filters, newest metric_date first
func (r *workforceRepository) List(ctx context.Context, filters repositories.WorkforceFilters) ([]*entities.WorkforceMetrics, error) {
	var metrics []*entities.WorkforceMetrics
	query := r.db.WithContext(ctx).Model(&entities.WorkforceMetrics{})

	if filters.Department != nil {
		query = query.Where("department = ?", *filters.Department)
	}
	if filters.MetricName != nil {
		query = query.Where("metric_name = ?", *filters.MetricName)
	}

	err := query.Order("metric_date DESC").Find(&metrics).Error
	return metrics, err
}

// GroupByDepartment averages metric_value and counts rows per department
func (r *workforceRepository) GroupByDepartment(ctx context.Context) ([]repositories.DepartmentInsight, error) {
	var insights []repositories.DepartmentInsight
	err := r.db.WithContext(ctx).
		Model(&entities.WorkforceMetrics{}).
		Select("department, AVG(metric_value) AS average_metric, COUNT(id) AS data_points").
		Group("department").
		Scan(&insights).Error
	return insights, err
}
