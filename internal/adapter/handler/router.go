package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HectorGitt/MeetDash/internal/adapter/dto/common"
	"github.com/HectorGitt/MeetDash/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	dataHandler      *Data
	analyticsHandler *Analytics
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, dataHandler *Data, analyticsHandler *Analytics) *Router {
	return &Router{
		cfg:              cfg,
		dataHandler:      dataHandler,
		analyticsHandler: analyticsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.root)
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	rt.setupDataRoutes(api)
	rt.setupAnalyticsRoutes(api)
}

// setupDataRoutes configures the raw data routes
func (rt *Router) setupDataRoutes(g *echo.Group) {
	dataGroup := g.Group("/data")

	dataGroup.GET("/meetings", rt.dataHandler.ListMeetings)
	dataGroup.POST("/meetings", rt.dataHandler.CreateMeeting)
	dataGroup.GET("/meetings/:id", rt.dataHandler.GetMeeting)
	dataGroup.PUT("/meetings/:id", rt.dataHandler.UpdateMeeting)
	dataGroup.DELETE("/meetings/:id", rt.dataHandler.DeleteMeeting)

	dataGroup.GET("/participants", rt.dataHandler.ListParticipants)
	dataGroup.POST("/participants", rt.dataHandler.CreateParticipant)

	dataGroup.GET("/connectors", rt.dataHandler.ListConnectors)
	dataGroup.POST("/connectors", rt.dataHandler.CreateConnector)
	dataGroup.PUT("/connectors/:id/sync", rt.dataHandler.SyncConnector)

	dataGroup.GET("/sentiment", rt.dataHandler.ListSentiment)
	dataGroup.POST("/sentiment", rt.dataHandler.CreateSentiment)
}

// setupAnalyticsRoutes configures the aggregation routes
func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	analyticsGroup := g.Group("/analytics")

	analyticsGroup.GET("/dashboard", rt.analyticsHandler.GetDashboard)
	analyticsGroup.GET("/summary", rt.analyticsHandler.GetSummary)

	analyticsGroup.GET("/meetings/:id/analytics", rt.analyticsHandler.GetMeetingAnalytics)
	analyticsGroup.POST("/meetings/:id/analytics", rt.analyticsHandler.CreateMeetingAnalytics)
	analyticsGroup.PUT("/meetings/:id/analytics", rt.analyticsHandler.UpdateMeetingAnalytics)

	analyticsGroup.GET("/sentiment/trends", rt.analyticsHandler.GetSentimentTrends)

	analyticsGroup.GET("/workforce/metrics", rt.analyticsHandler.ListWorkforceMetrics)
	analyticsGroup.POST("/workforce/metrics", rt.analyticsHandler.CreateWorkforceMetric)
}

// root returns a short service banner
func (rt *Router) root(c echo.Context) error {
	return c.JSON(http.StatusOK, common.StatusResponse{
		Status:  "running",
		Message: "MeetDash API is running",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"environment": rt.cfg.Server.Environment,
	})
}
