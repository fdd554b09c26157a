package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// DepartmentCount is a participant count for one department
type DepartmentCount struct {
	Department       string `json:"department"`
	ParticipantCount int64  `json:"participant_count"`
}

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	// CreateForMeeting inserts the participant and increments the meeting's
	// participants_count as one atomic unit
	CreateForMeeting(ctx context.Context, participant *entities.Participant) error

	// List retrieves participants, optionally filtered by meeting
	List(ctx context.Context, meetingID *uuid.UUID) ([]*entities.Participant, error)

	// Count returns the total number of participants
	Count(ctx context.Context) (int64, error)

	// CountByDepartment groups participant counts by department,
	// excluding rows with no department set
	CountByDepartment(ctx context.Context) ([]DepartmentCount, error)
}
