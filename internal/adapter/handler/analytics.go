package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	dtoanalytics "github.com/HectorGitt/MeetDash/internal/adapter/dto/analytics"
	"github.com/HectorGitt/MeetDash/internal/adapter/presenter"
	analyticsUsecase "github.com/HectorGitt/MeetDash/internal/usecase/analytics"
	dashboardUsecase "github.com/HectorGitt/MeetDash/internal/usecase/dashboard"
	"github.com/HectorGitt/MeetDash/internal/domain/repositories"
)

// Analytics handles analytics, trend and workforce HTTP requests
type Analytics struct {
	analyticsService analyticsUsecase.Service
	dashboardService dashboardUsecase.Service
	logger           *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	analyticsService analyticsUsecase.Service,
	dashboardService dashboardUsecase.Service,
	logger *zap.Logger,
) *Analytics {
	return &Analytics{
		analyticsService: analyticsService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard handles GET /api/analytics/dashboard
// @Summary      Composed dashboard view
// @Description  Always returns 200; underlying failures yield a zeroed payload
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  dashboard.Data
// @Router       /api/analytics/dashboard [get]
func (h *Analytics) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboardService.GetDashboardData(c.Request().Context()))
}

// GetMeetingAnalytics handles GET /api/analytics/meetings/:id/analytics
// @Summary      Get meeting analytics
// @Tags         Analytics
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  analytics.AnalyticsResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/analytics/meetings/{id}/analytics [get]
func (h *Analytics) GetMeetingAnalytics(c echo.Context) error {
	meetingID, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c, "meeting")
	}

	analytics, err := h.analyticsService.GetMeetingAnalytics(c.Request().Context(), meetingID)
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToAnalyticsResponse(analytics))
}

// CreateMeetingAnalytics handles POST /api/analytics/meetings/:id/analytics
// @Summary      Create meeting analytics
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Meeting ID (UUID)"
// @Param        request  body      analytics.CreateAnalyticsRequest  true  "Analytics"
// @Success      200      {object}  analytics.AnalyticsResponse
// @Failure      400      {object}  common.ErrorResponse  "Analytics already exist"
// @Failure      404      {object}  common.ErrorResponse
// @Router       /api/analytics/meetings/{id}/analytics [post]
func (h *Analytics) CreateMeetingAnalytics(c echo.Context) error {
	meetingID, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c, "meeting")
	}

	var req dtoanalytics.CreateAnalyticsRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_payload", err)
	}

	analytics, err := h.analyticsService.CreateMeetingAnalytics(c.Request().Context(), meetingID, analyticsUsecase.CreateAnalyticsInput{
		OverallSentimentScore: req.OverallSentimentScore,
		EngagementScore:       req.EngagementScore,
		ProductivityScore:     req.ProductivityScore,
		KeyTopics:             datatypes.JSON(req.KeyTopics),
		ActionItems:           datatypes.JSON(req.ActionItems),
		Summary:               req.Summary,
	})
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToAnalyticsResponse(analytics))
}

// UpdateMeetingAnalytics handles PUT /api/analytics/meetings/:id/analytics
// @Summary      Update meeting analytics
// @Description  Applies only the provided fields; absent fields keep prior values
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Meeting ID (UUID)"
// @Param        request  body      analytics.UpdateAnalyticsRequest  true  "Sparse update"
// @Success      200      {object}  analytics.AnalyticsResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /api/analytics/meetings/{id}/analytics [put]
func (h *Analytics) UpdateMeetingAnalytics(c echo.Context) error {
	meetingID, err := parseIDParam(c)
	if err != nil {
		return invalidIDResponse(c, "meeting")
	}

	var req dtoanalytics.UpdateAnalyticsRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_payload", err)
	}

	analytics, err := h.analyticsService.UpdateMeetingAnalytics(c.Request().Context(), meetingID, analyticsUsecase.UpdateAnalyticsInput{
		OverallSentimentScore: req.OverallSentimentScore,
		EngagementScore:       req.EngagementScore,
		ProductivityScore:     req.ProductivityScore,
		KeyTopics:             datatypes.JSON(req.KeyTopics),
		ActionItems:           datatypes.JSON(req.ActionItems),
		Summary:               req.Summary,
	})
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToAnalyticsResponse(analytics))
}

// GetSentimentTrends handles GET /api/analytics/sentiment/trends
// @Summary      N-day sentiment trend
// @Description  Groups existing readings by day; days without data are omitted
// @Tags         Analytics
// @Produce      json
// @Param        days  query     int  false  "Trailing window in days (default: 30)"
// @Success      200   {array}   analytics.TrendPoint
// @Router       /api/analytics/sentiment/trends [get]
func (h *Analytics) GetSentimentTrends(c echo.Context) error {
	var req dtoanalytics.TrendsRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_query", err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, "validation_failed", err)
	}

	trend, err := h.analyticsService.SentimentTrends(c.Request().Context(), req.Days)
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, trend)
}

// ListWorkforceMetrics handles GET /api/analytics/workforce/metrics
// @Summary      List workforce metrics
// @Tags         Analytics
// @Produce      json
// @Param        department   query     string  false  "Filter by department"
// @Param        metric_name  query     string  false  "Filter by metric name"
// @Success      200          {array}   analytics.WorkforceMetricResponse
// @Router       /api/analytics/workforce/metrics [get]
func (h *Analytics) ListWorkforceMetrics(c echo.Context) error {
	var req dtoanalytics.ListWorkforceRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_query", err)
	}

	metrics, err := h.analyticsService.ListWorkforceMetrics(c.Request().Context(), repositories.WorkforceFilters{
		Department: req.Department,
		MetricName: req.MetricName,
	})
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToWorkforceMetricListResponse(metrics))
}

// CreateWorkforceMetric handles POST /api/analytics/workforce/metrics
// @Summary      Record a workforce metric
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Param        request  body      analytics.CreateWorkforceMetricRequest  true  "Metric"
// @Success      200      {object}  analytics.WorkforceMetricResponse
// @Failure      422      {object}  common.ErrorResponse
// @Router       /api/analytics/workforce/metrics [post]
func (h *Analytics) CreateWorkforceMetric(c echo.Context) error {
	var req dtoanalytics.CreateWorkforceMetricRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, "invalid_payload", err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, "validation_failed", err)
	}

	metric, err := h.analyticsService.CreateWorkforceMetric(c.Request().Context(), analyticsUsecase.CreateWorkforceMetricInput{
		Department:  req.Department,
		MetricName:  req.MetricName,
		MetricValue: *req.MetricValue,
		MetricDate:  req.MetricDate.Time,
	})
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToWorkforceMetricResponse(metric))
}

// GetSummary handles GET /api/analytics/summary
// @Summary      Overview statistics
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  analytics.SummaryOutput
// @Router       /api/analytics/summary [get]
func (h *Analytics) GetSummary(c echo.Context) error {
	summary, err := h.analyticsService.Summary(c.Request().Context())
	if err != nil {
		return respondError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
