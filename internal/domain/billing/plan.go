package billing

import (
	"strings"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PlanID identifies a subscription plan
type PlanID string

const (
	PlanFree   PlanID = "free"
	PlanBasico PlanID = "basico"
	PlanPro    PlanID = "pro"
	PlanEquipo PlanID = "equipo"
)

// Plan describes a subscription tier: its monthly brief allowance,
// the monthly price, and the unit price for extra briefs bought on top.
// Prices are stored in cents to match Stripe amounts.
type Plan struct {
	ID                PlanID
	Name              string
	MonthlyCredits    int
	MonthlyPriceCents int64
	ExtraBriefCents   int64
}

// MonthlyPrice returns the monthly price as a decimal in major units
func (p Plan) MonthlyPrice() decimal.Decimal {
	return decimal.NewFromInt(p.MonthlyPriceCents).Div(decimal.NewFromInt(100))
}

// ExtraBriefPrice returns the per-brief top-up price as a decimal in major units
func (p Plan) ExtraBriefPrice() decimal.Decimal {
	return decimal.NewFromInt(p.ExtraBriefCents).Div(decimal.NewFromInt(100))
}

// Purchasable reports whether the plan can be bought through checkout
func (p Plan) Purchasable() bool {
	return p.ID != PlanFree
}

// catalog is the single source of truth for plan pricing and allowances.
// Every lookup (checkout pricing, webhook credit grants, renewal resets,
// plan listing) goes through this table.
var catalog = []Plan{
	{ID: PlanFree, Name: "Free", MonthlyCredits: 1, MonthlyPriceCents: 0, ExtraBriefCents: 0},
	{ID: PlanBasico, Name: "Básico", MonthlyCredits: 3, MonthlyPriceCents: 700, ExtraBriefCents: 700},
	{ID: PlanPro, Name: "Pro", MonthlyCredits: 10, MonthlyPriceCents: 1500, ExtraBriefCents: 500},
	{ID: PlanEquipo, Name: "Equipo", MonthlyCredits: 30, MonthlyPriceCents: 2900, ExtraBriefCents: 300},
}

// Plans returns the full plan catalog in display order
func Plans() []Plan {
	out := make([]Plan, len(catalog))
	copy(out, catalog)
	return out
}

// PlanByID looks up a plan by its identifier
func PlanByID(id PlanID) (Plan, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, shared.NewDomainError("UNKNOWN_PLAN", "Unknown plan: "+string(id))
}

// ParsePlanID normalizes and validates a plan identifier from external input
func ParsePlanID(raw string) (PlanID, error) {
	id := PlanID(strings.ToLower(strings.TrimSpace(raw)))
	if _, err := PlanByID(id); err != nil {
		return "", err
	}
	return id, nil
}
