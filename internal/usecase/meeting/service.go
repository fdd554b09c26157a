package meeting

import (
	"context"

	"github.com/google/uuid"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// Service defines the interface for the meeting use case
type Service interface {
	// ListMeetings retrieves meetings with offset pagination
	ListMeetings(ctx context.Context, skip, limit int) ([]*entities.Meeting, error)

	// CreateMeeting creates a new meeting
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// GetMeeting retrieves a meeting by ID
	GetMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error)

	// UpdateMeeting replaces the meeting's base fields and refreshes updated_at
	UpdateMeeting(ctx context.Context, meetingID uuid.UUID, input UpdateMeetingInput) (*entities.Meeting, error)

	// DeleteMeeting removes a meeting and its dependent rows
	DeleteMeeting(ctx context.Context, meetingID uuid.UUID) error

	// ListParticipants retrieves participants, optionally filtered by meeting
	ListParticipants(ctx context.Context, meetingID *uuid.UUID) ([]*entities.Participant, error)

	// CreateParticipant creates a participant for an existing meeting and
	// increments that meeting's participants_count
	CreateParticipant(ctx context.Context, input CreateParticipantInput) (*entities.Participant, error)
}
