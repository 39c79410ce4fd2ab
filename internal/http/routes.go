package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered on the API group.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// ScenarioRoutes registers the scenario, report and export endpoints.
type ScenarioRoutes struct {
	handler *Handler
}

// NewScenarioRoutes creates a new ScenarioRoutes instance.
func NewScenarioRoutes(handler *Handler) *ScenarioRoutes {
	return &ScenarioRoutes{handler: handler}
}

// RegisterRoutes registers scenario routes.
func (r *ScenarioRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/parameters", r.handler.GetParameters)
	rg.GET("/treatment-distribution", r.handler.TreatmentDistribution)

	scenarios := rg.Group("/scenarios")
	scenarios.GET("", r.handler.ListScenarios)
	scenarios.POST("/calculate", r.handler.CalculateScenario)
	scenarios.GET("/confidence-intervals", r.handler.ConfidenceIntervals)
	scenarios.GET("/sensitivity", r.handler.Sensitivity)

	rg.GET("/report", r.handler.GetReport)
	rg.GET("/charts", r.handler.GetCharts)
	rg.GET("/export/:table", r.handler.ExportTable)
}

// GetHandler returns the underlying scenario handler.
func (r *ScenarioRoutes) GetHandler() *Handler {
	return r.handler
}
