package billing

import (
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/billing"
	"github.com/google/uuid"
)

// PlanView is the catalog entry returned to clients
type PlanView struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	MonthlyCredits    int    `json:"monthly_credits"`
	MonthlyPriceCents int64  `json:"monthly_price_cents"`
	MonthlyPrice      string `json:"monthly_price"`
	ExtraBriefCents   int64  `json:"extra_brief_cents"`
	ExtraBriefPrice   string `json:"extra_brief_price"`
	Purchasable       bool   `json:"purchasable"`
}

// planViewFromDomain maps a catalog plan to its client view
func planViewFromDomain(p billing.Plan) PlanView {
	return PlanView{
		ID:                string(p.ID),
		Name:              p.Name,
		MonthlyCredits:    p.MonthlyCredits,
		MonthlyPriceCents: p.MonthlyPriceCents,
		MonthlyPrice:      p.MonthlyPrice().StringFixed(2),
		ExtraBriefCents:   p.ExtraBriefCents,
		ExtraBriefPrice:   p.ExtraBriefPrice().StringFixed(2),
		Purchasable:       p.Purchasable(),
	}
}

// PlanCheckoutInput contains the data for starting a plan purchase
type PlanCheckoutInput struct {
	UserID uuid.UUID
	Plan   string
}

// BriefsCheckoutInput contains the data for buying extra briefs
type BriefsCheckoutInput struct {
	UserID   uuid.UUID
	Quantity int
}

// CheckoutResult contains the Stripe session redirect for the client
type CheckoutResult struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// WebhookResult contains the result of processing a webhook
type WebhookResult struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Processed bool   `json:"processed"`
	Message   string `json:"message,omitempty"`
}
