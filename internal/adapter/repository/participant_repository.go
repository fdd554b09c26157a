package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// CreateForMeeting inserts the participant and bumps the meeting's counter
// in one transaction. The increment runs SQL-side so concurrent creators
// cannot lose updates.
func (r *participantRepository) CreateForMeeting(ctx context.Context, participant *entities.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(participant).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Meeting{}).
			Where("id = ?", participant.MeetingID).
			UpdateColumn("participants_count", gorm.Expr("participants_count + 1")).
			Error
	})
}

// List retrieves participants, optionally filtered by meeting
func (r *participantRepository) List(ctx context.Context, meetingID *uuid.UUID) ([]*entities.Participant, error) {
	var participants []*entities.Participant
	query := r.db.WithContext(ctx).Model(&entities.Participant{})

	if meetingID != nil {
		query = query.Where("meeting_id = ?", *meetingID)
	}

	err := query.Find(&participants).Error
	return participants, err
}

// Count returns the total number of participants
func (r *participantRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entities.Participant{}).Count(&total).Error
	return total, err
}

// CountByDepartment groups participant counts by department
func (r *participantRepository) CountByDepartment(ctx context.Context) ([]repositories.DepartmentCount, error) {
	var counts []repositories.DepartmentCount
	err := r.db.WithContext(ctx).
		Model(&entities.Participant{}).
		Select("department, COUNT(id) AS participant_count").
		Where("department IS NOT NULL").
		Group("department").
		Scan(&counts).Error
	return counts, err
}
