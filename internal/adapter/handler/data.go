package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/HectorGitt/MeetDash/internal/adapter/dto/common"
	"github.com/HectorGitt/MeetDash/internal/adapter/dto/data"
	"github.com/HectorGitt/MeetDash/internal/adapter/presenter"
	analyticsUsecase "github.com/HectorGitt/MeetDash/internal/usecase/analytics"
	connectorUsecase "github.com/HectorGitt/MeetDash/internal/usecase/connector"
	meetingUsecase "github.com/HectorGitt/MeetDash/internal/usecase/meeting"
)

const defaultMeetingsLimit = 100

// Data handles meeting, participant, connector and sentiment HTTP requests
type Data struct {
	meetingService   meetingUsecase.Service
	connectorService connectorUsecase.Service
	sentimentService analyticsUsecase.Service
	logger           *zap.Logger
}

// NewDataHandler creates a new data handler
func NewDataHandler(
	meetingService meetingUsecase.Service,
	connectorService connectorUsecase.Service,
	sentimentService analyticsUsecase.Service,
	logger *zap.Logger,
) *Data {
	return &Data{
		meetingService:   meetingService,
		connectorService: connectorService,
		sentimentService: sentimentService,
		logger:           logger,
	}
}

// ListMeetings handles GET /api/data/meetings
// @Summary      List meetings
// @Tags         Data
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"
// @Param        limit  query     int  false  "Max rows (default: 100)"
// @Success      200    {array}   data.MeetingResponse
// @Router       /api/data/meetings [get]
func (h *Data) ListMeetings(c echo.Context) error {
	var req data.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_query", err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, "validation_failed", err)
	}

	limit := defaultMeetingsLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	meetings, err := h.meetingService.ListMeetings(c.Request().Context(), req.Skip, limit)
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingListResponse(meetings))
}

// CreateMeeting handles POST /api/data/meetings
// @Summary      Create a meeting
// @Tags         Data
// @Accept       json
// @Produce      json
// @Param        request  body      data.CreateMeetingRequest  true  "Meeting"
// @Success      200      {object}  data.MeetingResponse
// @Failure      422      {object}  common.ErrorResponse
// @Router       /api/data/meetings [post]
func (h *Data) CreateMeeting(c echo.Context) error {
	var req data.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_payload", err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, "validation_failed", err)
	}

	meeting, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.Time,
		Duration:    req.Duration,
	})
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(meeting))
}

// GetMeeting handles GET /api/data/meetings/:id
// @Summary      Get a meeting
// @Tags         Data
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  data.MeetingResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/data/meetings/{id} [get]
func (h *Data) GetMeeting(c echo.Context) error {
	meetingID, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c, "meeting")
	}

	meeting, err := h.meetingService.GetMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(meeting))
}

// UpdateMeeting handles PUT /api/data/meetings/:id
// @Summary      Update a meeting
// @Tags         Data
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Meeting ID (UUID)"
// @Param        request  body      data.UpdateMeetingRequest  true  "Meeting"
// @Success      200      {object}  data.MeetingResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /api/data/meetings/{id} [put]
func (h *Data) UpdateMeeting(c echo.Context) error {
	meetingID, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c, "meeting")
	}

	var req data.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_payload", err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, "validation_failed", err)
	}

	meeting, err := h.meetingService.UpdateMeeting(c.Request().Context(), meetingID, meetingUsecase.UpdateMeetingInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date.Time,
		Duration:    req.Duration,
	})
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(meeting))
}

// DeleteMeeting handles DELETE /api/data/meetings/:id
// @Summary      Delete a meeting
// @Tags         Data
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  common.MessageResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/data/meetings/{id} [delete]
func (h *Data) DeleteMeeting(c echo.Context) error {
	meetingID, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c, "meeting")
	}

	if err := h.meetingService.DeleteMeeting(c.Request().Context(), meetingID); err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, common.MessageResponse{
		Message: "Meeting deleted successfully",
	})
}

// ListParticipants handles GET /api/data/participants
// @Summary      List participants
// @Tags         Data
// @Produce      json
// @Param        meeting_id  query     string  false  "Filter by meeting (UUID)"
// @Success      200         {array}   data.ParticipantResponse
// @Router       /api/data/participants [get]
func (h *Data) ListParticipants(c echo.Context) error {
	var meetingID *uuid.UUID
	if raw := c.QueryParam("meeting_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return invalidIDResponse(c, "meeting")
		}
		meetingID = &id
	}

	participants, err := h.meetingService.ListParticipants(c.Request().Context(), meetingID)
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToParticipantListResponse(participants))
}

// CreateParticipant handles POST /api/data/participants
// @Summary      Create a participant
// @Description  Creates a participant and increments the meeting's participant count
// @Tags         Data
// @Accept       json
// @Produce      json
// @Param        request  body      data.CreateParticipantRequest  true  "Participant"
// @Success      200      {object}  data.ParticipantResponse
// @Failure      404      {object}  common.ErrorResponse
// @Failure      422      {object}  common.ErrorResponse
// @Router       /api/data/participants [post]
func (h *Data) CreateParticipant(c echo.Context) error {
	var req data.CreateParticipantRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_payload", err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, "validation_failed", err)
	}

	meetingID, err := uuid.Parse(req.MeetingID)
	if err != nil {
		return invalidIDResponse(c, "meeting")
	}

	participant, err := h.meetingService.CreateParticipant(c.Request().Context(), meetingUsecase.CreateParticipantInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
		MeetingID:  meetingID,
	})
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToParticipantResponse(participant))
}

// ListConnectors handles GET /api/data/connectors
// @Summary      List data connectors
// @Tags         Data
// @Produce      json
// @Success      200  {array}  data.ConnectorResponse
// @Router       /api/data/connectors [get]
func (h *Data) ListConnectors(c echo.Context) error {
	connectors, err := h.connectorService.ListConnectors(c.Request().Context())
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToConnectorListResponse(connectors))
}

// CreateConnector handles POST /api/data/connectors
// @Summary      Create a data connector
// @Tags         Data
// @Accept       json
// @Produce      json
// @Param        request  body      data.CreateConnectorRequest  true  "Connector"
// @Success      200      {object}  data.ConnectorResponse
// @Failure      422      {object}  common.ErrorResponse
// @Router       /api/data/connectors [post]
func (h *Data) CreateConnector(c echo.Context) error {
	var req data.CreateConnectorRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_payload", err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, "validation_failed", err)
	}

	connector, err := h.connectorService.CreateConnector(c.Request().Context(), connectorUsecase.CreateConnectorInput{
		Name:          req.Name,
		ConnectorType: req.ConnectorType,
		Status:        req.Status,
		Config:        datatypes.JSON(req.Config),
	})
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToConnectorResponse(connector))
}

// SyncConnector handles PUT /api/data/connectors/:id/sync
// @Summary      Mark a connector as synced
// @Tags         Data
// @Produce      json
// @Param        id   path      string  true  "Connector ID (UUID)"
// @Success      200  {object}  common.MessageResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/data/connectors/{id}/sync [put]
func (h *Data) SyncConnector(c echo.Context) error {
	connectorID, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c, "connector")
	}

	connector, err := h.connectorService.SyncConnector(c.Request().Context(), connectorID)
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, common.MessageResponse{
		Message: fmt.Sprintf("Connector %s synced successfully", connector.Name),
	})
}

// ListSentiment handles GET /api/data/sentiment
// @Summary      List sentiment readings
// @Tags         Data
// @Produce      json
// @Param        participant_id  query     string  false  "Filter by participant (UUID)"
// @Success      200             {array}   data.SentimentResponse
// @Router       /api/data/sentiment [get]
func (h *Data) ListSentiment(c echo.Context) error {
	var participantID *uuid.UUID
	if raw := c.QueryParam("participant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return invalidIDResponse(c, "participant")
		}
		participantID = &id
	}

	readings, err := h.sentimentService.ListSentiment(c.Request().Context(), participantID)
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToSentimentListResponse(readings))
}

// CreateSentiment handles POST /api/data/sentiment
// @Summary      Record a sentiment reading
// @Tags         Data
// @Accept       json
// @Produce      json
// @Param        request  body      data.CreateSentimentRequest  true  "Sentiment reading"
// @Success      200      {object}  data.SentimentResponse
// @Failure      422      {object}  common.ErrorResponse
// @Router       /api/data/sentiment [post]
func (h *Data) CreateSentiment(c echo.Context) error {
	var req data.CreateSentimentRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_payload", err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, "validation_failed", err)
	}

	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		return invalidIDResponse(c, "participant")
	}

	reading, err := h.sentimentService.CreateSentiment(c.Request().Context(), analyticsUsecase.CreateSentimentInput{
		ParticipantID:  participantID,
		Timestamp:      req.Timestamp.Time,
		SentimentScore: *req.SentimentScore,
		Emotion:        req.Emotion,
		Confidence:     req.Confidence,
		TextSnippet:    req.TextSnippet,
	})
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToSentimentResponse(reading))
}
