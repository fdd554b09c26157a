package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ConnectorStatus represents the current status of a data connector
type ConnectorStatus string

const (
	ConnectorStatusActive   ConnectorStatus = "active"
	ConnectorStatusInactive ConnectorStatus = "inactive"
	ConnectorStatusError    ConnectorStatus = "error"
)

// DataConnector represents an external data source integration
type DataConnector struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	ConnectorType string          `gorm:"type:varchar(100);not null" json:"connector_type"`
	Status        ConnectorStatus `gorm:"type:varchar(50);not null;default:'active'" json:"status"`
	LastSync      *time.Time      `json:"last_sync,omitempty"`
	Config        datatypes.JSON  `gorm:"type:jsonb;default:'{}'" json:"config,omitempty"`
	CreatedAt     time.Time       `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for DataConnector
func (DataConnector) TableName() string {
	return "data_connectors"
}
