package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/salinity-service/internal/service"
)

// SalinityRoutes handles salinity, assumption and history route registration.
type SalinityRoutes struct {
	handler             *Handler
	assumptionsHandler  *AssumptionsHandler
	calculationsHandler *CalculationsHandler
}

// NewSalinityRoutes creates a new SalinityRoutes instance. The assumption and
// history routes are only registered when their services are configured.
func NewSalinityRoutes(handler *Handler, profiles service.AssumptionProfilesService, history service.CalculationHistoryService) *SalinityRoutes {
	r := &SalinityRoutes{handler: handler}

	if profiles != nil {
		r.assumptionsHandler = NewAssumptionsHandler(profiles, handler.calculator, handler)
	}
	if history != nil {
		r.calculationsHandler = NewCalculationsHandler(history)
	}

	return r
}

// RegisterRoutes registers the routes on the API group.
func (r *SalinityRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	salinity := rg.Group("/salinity")
	salinity.POST("", r.handler.CalculateSalinity)
	salinity.POST("/summary", r.handler.SummarizeSalinity)
	salinity.GET("/specific-gravity", r.handler.SpecificGravity)
	salinity.GET("/reference", r.handler.ReferenceComposition)

	if r.assumptionsHandler != nil {
		rg.GET("/assumptions", r.assumptionsHandler.GetActiveAssumptions)
		rg.PUT("/assumptions", r.assumptionsHandler.UpdateAssumptions)
		rg.GET("/assumptions/history", r.assumptionsHandler.ListAssumptions)
	}

	if r.calculationsHandler != nil {
		rg.GET("/calculations", r.calculationsHandler.ListCalculations)
		rg.GET("/calculations/:id", r.calculationsHandler.GetCalculation)
	}
}
