package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
	usecaseErrors "github.com/HectorGitt/MeetDash/internal/usecase/errors"
)

// MeetingService handles meeting and participant business logic
type MeetingService struct {
	meetingRepo     repositories.MeetingRepository
	participantRepo repositories.ParticipantRepository
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	participantRepo repositories.ParticipantRepository,
) *MeetingService {
	return &MeetingService{
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
	}
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title       string
	Description *string
	Date        time.Time
	Duration    *int
}

// UpdateMeetingInput carries the full set of base fields for a meeting update
type UpdateMeetingInput struct {
	Title       string
	Description *string
	Date        time.Time
	Duration    *int
}

// CreateParticipantInput represents input for creating a participant
type CreateParticipantInput struct {
	Name       string
	Email      string
	Role       *string
	Department *string
	MeetingID  uuid.UUID
}

// ListMeetings retrieves meetings with offset pagination
func (s *MeetingService) ListMeetings(ctx context.Context, skip, limit int) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// CreateMeeting creates a new meeting
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	now := time.Now().UTC()
	meeting := &entities.Meeting{
		Title:             input.Title,
		Description:       input.Description,
		Date:              input.Date,
		Duration:          input.Duration,
		ParticipantsCount: 0,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return meeting, nil
}

// GetMeeting retrieves a meeting by ID
func (s *MeetingService) GetMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// UpdateMeeting replaces the meeting's base fields and refreshes updated_at
func (s *MeetingService) UpdateMeeting(ctx context.Context, meetingID uuid.UUID, input UpdateMeetingInput) (*entities.Meeting, error) {
	meeting, err := s.GetMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	meeting.Title = input.Title
	meeting.Description = input.Description
	meeting.Date = input.Date
	meeting.Duration = input.Duration
	meeting.UpdatedAt = time.Now().UTC()

	if err := s.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return meeting, nil
}

// DeleteMeeting removes a meeting and its dependent rows
func (s *MeetingService) DeleteMeeting(ctx context.Context, meetingID uuid.UUID) error {
	if _, err := s.GetMeeting(ctx, meetingID); err != nil {
		return err
	}

	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// ListParticipants retrieves participants, optionally filtered by meeting
func (s *MeetingService) ListParticipants(ctx context.Context, meetingID *uuid.UUID) ([]*entities.Participant, error) {
	participants, err := s.participantRepo.List(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

// CreateParticipant verifies the referenced meeting exists, then inserts the
// participant and bumps participants_count as one atomic unit
func (s *MeetingService) CreateParticipant(ctx context.Context, input CreateParticipantInput) (*entities.Participant, error) {
	if _, err := s.GetMeeting(ctx, input.MeetingID); err != nil {
		return nil, err
	}

	participant := &entities.Participant{
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Department: input.Department,
		MeetingID:  input.MeetingID,
	}

	if err := s.participantRepo.CreateForMeeting(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}
	return participant, nil
}
