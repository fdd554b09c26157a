package connector

import (
	"context"

	"github.com/google/uuid"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// Service defines the interface for the data connector use case
type Service interface {
	// ListConnectors retrieves all connectors
	ListConnectors(ctx context.Context) ([]*entities.DataConnector, error)

	// CreateConnector creates a new connector
	CreateConnector(ctx context.Context, input CreateConnectorInput) (*entities.DataConnector, error)

	// SyncConnector sets the connector's last_sync to the current time
	SyncConnector(ctx context.Context, connectorID uuid.UUID) (*entities.DataConnector, error)
}
