package handler

import (
	appbilling "github.com/alvarosc2000/BriefNest-Local/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// PlanHandler handles plan catalog HTTP requests
type PlanHandler struct {
	BaseHandler
	planService *appbilling.PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planService *appbilling.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// ListPlans returns the plan catalog with prices and credits
func (h *PlanHandler) ListPlans(c *gin.Context) {
	h.Success(c, h.planService.ListPlans())
}
