package presenter

import (
	"encoding/json"

	"github.com/HectorGitt/MeetDash/internal/adapter/dto/data"
	"github.com/HectorGitt/MeetDash/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *data.MeetingResponse {
	if m == nil {
		return nil
	}

	return &data.MeetingResponse{
		ID:                m.ID.String(),
		Title:             m.Title,
		Description:       m.Description,
		Date:              m.Date,
		Duration:          m.Duration,
		ParticipantsCount: m.ParticipantsCount,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ToMeetingListResponse converts a slice of Meeting entities
func ToMeetingListResponse(meetings []*entities.Meeting) []*data.MeetingResponse {
	responses := make([]*data.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return responses
}

// ToParticipantResponse converts a Participant entity to ParticipantResponse DTO
func ToParticipantResponse(p *entities.Participant) *data.ParticipantResponse {
	if p == nil {
		return nil
	}

	return &data.ParticipantResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Email:      p.Email,
		Role:       p.Role,
		Department: p.Department,
		MeetingID:  p.MeetingID.String(),
	}
}

// ToParticipantListResponse converts a slice of Participant entities
func ToParticipantListResponse(participants []*entities.Participant) []*data.ParticipantResponse {
	responses := make([]*data.ParticipantResponse, len(participants))
	for i, p := range participants {
		responses[i] = ToParticipantResponse(p)
	}
	return responses
}

// ToConnectorResponse converts a DataConnector entity to ConnectorResponse DTO
func ToConnectorResponse(c *entities.DataConnector) *data.ConnectorResponse {
	if c == nil {
		return nil
	}

	return &data.ConnectorResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		ConnectorType: c.ConnectorType,
		Status:        string(c.Status),
		LastSync:      c.LastSync,
		Config:        json.RawMessage(c.Config),
		CreatedAt:     c.CreatedAt,
	}
}

// ToConnectorListResponse converts a slice of DataConnector entities
func ToConnectorListResponse(connectors []*entities.DataConnector) []*data.ConnectorResponse {
	responses := make([]*data.ConnectorResponse, len(connectors))
	for i, c := range connectors {
		responses[i] = ToConnectorResponse(c)
	}
	return responses
}

// ToSentimentResponse converts a SentimentData entity to SentimentResponse DTO
func ToSentimentResponse(s *entities.SentimentData) *data.SentimentResponse {
	if s == nil {
		return nil
	}

	return &data.SentimentResponse{
		ID:             s.ID.String(),
		ParticipantID:  s.ParticipantID.String(),
		Timestamp:      s.Timestamp,
		SentimentScore: s.SentimentScore,
		Emotion:        s.Emotion,
		Confidence:     s.Confidence,
		TextSnippet:    s.TextSnippet,
	}
}

// ToSentimentListResponse converts a slice of SentimentData entities
func ToSentimentListResponse(readings []*entities.SentimentData) []*data.SentimentResponse {
	responses := make([]*data.SentimentResponse, len(readings))
	for i, s := range readings {
		responses[i] = ToSentimentResponse(s)
	}
	return responses
}
