package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// ConnectorRepository defines the interface for data connector access
type ConnectorRepository interface {
	// Create creates a new connector
	Create(ctx context.Context, connector *entities.DataConnector) error

	// FindByID retrieves a connector by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.DataConnector, error)

	// List retrieves all connectors
	List(ctx context.Context) ([]*entities.DataConnector, error)

	// MarkSynced sets the connector's last_sync timestamp
	MarkSynced(ctx context.Context, id uuid.UUID, syncedAt time.Time) error
}
