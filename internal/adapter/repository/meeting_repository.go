package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HectorGitt/MeetDash/internal/domain/entities"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// List retrieves meetings with offset pagination. The limit is applied
// verbatim, so an explicit zero yields zero rows.
func (r *meetingRepository) List(ctx context.Context, skip, limit int) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Offset(skip).
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}

// Update persists changes to an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}

// Delete removes a meeting together with its participants, analytics and
// the participants' sentiment readings in one transaction
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM sentiment_data WHERE participant_id IN (SELECT id FROM participants WHERE meeting_id = ?)",
			id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.MeetingAnalytics{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Meeting{}).Error
	})
}

// Count returns the total number of meetings
func (r *meetingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entities.Meeting{}).Count(&total).Error
	return total, err
}

// FindRecent retrieves the most recently created meetings
func (r *meetingRepository) FindRecent(ctx context.Context, limit int) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}
