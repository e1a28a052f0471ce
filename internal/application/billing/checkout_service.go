package billing

import (
	"context"
	"fmt"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/billing"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/identity"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	infrabilling "github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/billing"
	"go.uber.org/zap"
)

// CheckoutProvider creates payment sessions with the external processor
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, input infrabilling.CheckoutSessionInput) (*infrabilling.CheckoutSessionOutput, error)
}

// CheckoutService creates Stripe Checkout sessions for plan purchases
// and extra-brief top-ups. All prices come from the plan catalog.
type CheckoutService struct {
	userRepo identity.UserRepository
	provider CheckoutProvider
	logger   *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(userRepo identity.UserRepository, provider CheckoutProvider, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		userRepo: userRepo,
		provider: provider,
		logger:   logger,
	}
}

// CreatePlanCheckout starts a checkout session for a plan purchase
func (s *CheckoutService) CreatePlanCheckout(ctx context.Context, input PlanCheckoutInput) (*CheckoutResult, error) {
	planID, err := billing.ParsePlanID(input.Plan)
	if err != nil {
		return nil, err
	}
	plan, err := billing.PlanByID(planID)
	if err != nil {
		return nil, err
	}
	if !plan.Purchasable() {
		return nil, shared.NewDomainError("PLAN_NOT_PURCHASABLE", "Plan cannot be purchased: "+string(plan.ID))
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	metadata := billing.CheckoutMetadata{
		UserID: user.ID,
		Type:   billing.PurchasePlan,
		Plan:   plan.ID,
	}

	session, err := s.provider.CreateCheckoutSession(ctx, infrabilling.CheckoutSessionInput{
		CustomerEmail: user.Email,
		ProductName:   "Plan " + plan.Name,
		Description:   fmt.Sprintf("%d briefs al mes", plan.MonthlyCredits),
		AmountCents:   plan.MonthlyPriceCents,
		Quantity:      1,
		Metadata:      metadata.ToMap(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Plan checkout session created",
		zap.String("user_id", user.ID.String()),
		zap.String("plan", string(plan.ID)),
		zap.String("session_id", session.SessionID))

	return &CheckoutResult{SessionID: session.SessionID, URL: session.URL}, nil
}

// CreateBriefsCheckout starts a checkout session for extra briefs.
// The unit price is the extra-brief price of the user's current plan.
func (s *CheckoutService) CreateBriefsCheckout(ctx context.Context, input BriefsCheckoutInput) (*CheckoutResult, error) {
	if input.Quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	plan, err := billing.PlanByID(user.Plan)
	if err != nil {
		return nil, err
	}
	if plan.ExtraBriefCents <= 0 {
		return nil, shared.NewDomainError("PLAN_NOT_PURCHASABLE", "Current plan does not allow extra briefs")
	}

	metadata := billing.CheckoutMetadata{
		UserID:   user.ID,
		Type:     billing.PurchaseBriefs,
		Quantity: input.Quantity,
	}

	session, err := s.provider.CreateCheckoutSession(ctx, infrabilling.CheckoutSessionInput{
		CustomerEmail: user.Email,
		ProductName:   "Briefs extra",
		Description:   fmt.Sprintf("Briefs adicionales para el plan %s", plan.Name),
		AmountCents:   plan.ExtraBriefCents,
		Quantity:      int64(input.Quantity),
		Metadata:      metadata.ToMap(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Extra briefs checkout session created",
		zap.String("user_id", user.ID.String()),
		zap.Int("quantity", input.Quantity),
		zap.String("session_id", session.SessionID))

	return &CheckoutResult{SessionID: session.SessionID, URL: session.URL}, nil
}
