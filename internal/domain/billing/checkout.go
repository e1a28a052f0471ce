package billing

import (
	"strconv"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseType distinguishes what a checkout session pays for
type PurchaseType string

const (
	PurchasePlan   PurchaseType = "plan"
	PurchaseBriefs PurchaseType = "briefs"
)

// CheckoutMetadata is attached to every Stripe Checkout session and read
// back by the webhook to apply the purchase to the right user.
type CheckoutMetadata struct {
	UserID   uuid.UUID
	Type     PurchaseType
	Plan     PlanID // set when Type == PurchasePlan
	Quantity int    // set when Type == PurchaseBriefs
}

// ToMap serializes the metadata for the Stripe API
func (m CheckoutMetadata) ToMap() map[string]string {
	out := map[string]string{
		"user_id": m.UserID.String(),
		"type":    string(m.Type),
	}
	switch m.Type {
	case PurchasePlan:
		out["plan"] = string(m.Plan)
	case PurchaseBriefs:
		out["quantity"] = strconv.Itoa(m.Quantity)
	}
	return out
}

// ParseCheckoutMetadata reads metadata returned by Stripe on a completed
// checkout session. Unknown or malformed metadata is an error so the
// webhook never applies a purchase it cannot attribute.
func ParseCheckoutMetadata(raw map[string]string) (CheckoutMetadata, error) {
	userID, err := uuid.Parse(raw["user_id"])
	if err != nil {
		return CheckoutMetadata{}, shared.NewDomainError("INVALID_METADATA", "Checkout metadata has no valid user_id")
	}

	meta := CheckoutMetadata{UserID: userID, Type: PurchaseType(raw["type"])}
	switch meta.Type {
	case PurchasePlan:
		planID, err := ParsePlanID(raw["plan"])
		if err != nil {
			return CheckoutMetadata{}, err
		}
		meta.Plan = planID
	case PurchaseBriefs:
		qty, err := strconv.Atoi(raw["quantity"])
		if err != nil || qty < 1 {
			return CheckoutMetadata{}, shared.NewDomainError("INVALID_METADATA", "Checkout metadata has no valid quantity")
		}
		meta.Quantity = qty
	default:
		return CheckoutMetadata{}, shared.NewDomainError("INVALID_METADATA", "Unknown purchase type in checkout metadata")
	}

	return meta, nil
}
