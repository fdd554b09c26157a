package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
)

// connectorRepository implements the ConnectorRepository interface
type connectorRepository struct {
	db *gorm.DB
}

// NewConnectorRepository creates a new connector repository
func NewConnectorRepository(db *gorm.DB) repositories.ConnectorRepository {
	return &connectorRepository{db: db}
}

// Create creates a new connector
func (r *connectorRepository) Create(ctx context.Context, connector *entities.DataConnector) error {
	return r.db.WithContext(ctx).Create(connector).Error
}

// FindByID retrieves a connector by its ID
func (r *connectorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.DataConnector, error) {
	var connector entities.DataConnector
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&connector).Error

	if err != nil {
		return nil, err
	}
	return &connector, nil
}

// List retrieves all connectors
func (r *connectorRepository) List(ctx context.Context) ([]*entities.DataConnector, error) {
	var connectors []*entities.DataConnector
	err := r.db.WithContext(ctx).Find(&connectors).Error
	return connectors, err
}

// MarkSynced sets the connector's last_sync timestamp
func (r *connectorRepository) MarkSynced(ctx context.Context, id uuid.UUID, syncedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.DataConnector{}).
		Where("id = ?", id).
		Update("last_sync", syncedAt).
		Error
}
