package connector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
	usecaseErrors "github.com/HectorGitt/MeetDash/internal/usecase/errors"
)

// ConnectorService handles data connector business logic
type ConnectorService struct {
	connectorRepo repositories.ConnectorRepository
}

// NewConnectorService creates a new connector service
func NewConnectorService(connectorRepo repositories.ConnectorRepository) *ConnectorService {
	return &ConnectorService{connectorRepo: connectorRepo}
}

// CreateConnectorInput represents input for creating a connector
type CreateConnectorInput struct {
	Name          string
	ConnectorType string
	Status        *string
	Config        datatypes.JSON
}

// ListConnectors retrieves all connectors
func (s *ConnectorService) ListConnectors(ctx context.Context) ([]*entities.DataConnector, error) {
	connectors, err := s.connectorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list connectors: %w", err)
	}
	return connectors, nil
}

// CreateConnector creates a new connector, defaulting status to active
func (s *ConnectorService) CreateConnector(ctx context.Context, input CreateConnectorInput) (*entities.DataConnector, error) {
	status := entities.ConnectorStatusActive
	if input.Status != nil {
		status = entities.ConnectorStatus(*input.Status)
	}

	connector := &entities.DataConnector{
		Name:          input.Name,
		ConnectorType: input.ConnectorType,
		Status:        status,
		Config:        input.Config,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.connectorRepo.Create(ctx, connector); err != nil {
		return nil, fmt.Errorf("failed to create connector: %w", err)
	}
	return connector, nil
}

// SyncConnector sets the connector's last_sync to the current time
func (s *ConnectorService) SyncConnector(ctx context.Context, connectorID uuid.UUID) (*entities.DataConnector, error) {
	connector, err := s.connectorRepo.FindByID(ctx, connectorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrConnectorNotFound
		}
		return nil, fmt.Errorf("failed to get connector: %w", err)
	}

	syncedAt := time.Now().UTC()
	if err := s.connectorRepo.MarkSynced(ctx, connectorID, syncedAt); err != nil {
		return nil, fmt.Errorf("failed to sync connector: %w", err)
	}

	connector.LastSync = &syncedAt
	return connector, nil
}
