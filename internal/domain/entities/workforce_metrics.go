package entities

import (
	"time"

	"github.com/google/uuid"
)

// WorkforceMetrics is a single datapoint for a department-level metric
type WorkforceMetrics struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Department  string    `gorm:"type:varchar(100);not null;index" json:"department"`
	MetricName  string    `gorm:"type:varchar(100);not null;index" json:"metric_name"`
	MetricValue float64   `gorm:"not null" json:"metric_value"`
	MetricDate  time.Time `gorm:"not null;index" json:"metric_date"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for WorkforceMetrics
func (WorkforceMetrics) TableName() string {
	return "workforce_metrics"
}
