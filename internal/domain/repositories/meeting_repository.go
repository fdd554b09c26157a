package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// List retrieves meetings with offset pagination, store-native order.
	// The limit applies verbatim: zero returns zero rows.
	List(ctx context.Context, skip, limit int) ([]*entities.Meeting, error)

	// Update persists changes to an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete removes a meeting and its dependent rows in one transaction
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of meetings
	Count(ctx context.Context) (int64, error)

	// FindRecent retrieves the most recently created meetings
	FindRecent(ctx context.Context, limit int) ([]*entities.Meeting, error)
}
