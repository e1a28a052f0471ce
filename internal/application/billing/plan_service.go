package billing

import (
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/billing"
)

// PlanService exposes the plan catalog
type PlanService struct{}

// NewPlanService creates a new plan service
func NewPlanService() *PlanService {
	return &PlanService{}
}

// ListPlans returns the catalog in display order
func (s *PlanService) ListPlans() []PlanView {
	plans := billing.Plans()
	views := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, planViewFromDomain(p))
	}
	return views
}
