package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domainbilling "github.com/alvarosc2000/BriefNest-Local/internal/domain/billing"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/identity"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	infrabilling "github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/billing"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
)

// ErrSignatureVerification is returned when the Stripe-Signature header
// does not match the payload. Callers must not apply any state change.
var ErrSignatureVerification = shared.NewDomainError("WEBHOOK_SIGNATURE", "Webhook signature verification failed")

// processedEventTTL is how long an event id is remembered for replay
// protection. Stripe retries for at most 3 days; 30 days leaves margin.
const processedEventTTL = 30 * 24 * time.Hour

// checkoutApplyAttempts bounds optimistic-lock retries when a purchase
// races a concurrent credit spend on the same user row.
const checkoutApplyAttempts = 3

// StripeWebhookService handles Stripe webhook events
type StripeWebhookService struct {
	config      *infrabilling.StripeConfig
	userRepo    identity.UserRepository
	idempotency shared.IdempotencyStore
	logger      *zap.Logger
}

// StripeWebhookServiceConfig contains configuration for StripeWebhookService
type StripeWebhookServiceConfig struct {
	Config      *infrabilling.StripeConfig
	UserRepo    identity.UserRepository
	Idempotency shared.IdempotencyStore
	Logger      *zap.Logger
}

// NewStripeWebhookService creates a new StripeWebhookService
func NewStripeWebhookService(cfg StripeWebhookServiceConfig) *StripeWebhookService {
	return &StripeWebhookService{
		config:      cfg.Config,
		userRepo:    cfg.UserRepo,
		idempotency: cfg.Idempotency,
		logger:      cfg.Logger,
	}
}

// ProcessWebhook verifies and processes a Stripe webhook event.
// The signature is checked before anything else; a replayed event id is
// acknowledged without applying the purchase twice.
func (s *StripeWebhookService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.config.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		s.logger.Error("Failed to verify webhook signature", zap.Error(err))
		return nil, ErrSignatureVerification
	}

	s.logger.Info("Processing Stripe webhook event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))

	result := &WebhookResult{
		EventID:   event.ID,
		EventType: string(event.Type),
		Processed: true,
	}

	fresh, err := s.idempotency.MarkProcessed(ctx, event.ID, processedEventTTL)
	if err != nil {
		s.logger.Error("Failed to check event idempotency",
			zap.String("event_id", event.ID),
			zap.Error(err))
		result.Processed = false
		result.Message = "idempotency check failed"
		return result, err
	}
	if !fresh {
		s.logger.Info("Skipping already processed event", zap.String("event_id", event.ID))
		result.Processed = false
		result.Message = "Event already processed"
		return result, nil
	}

	switch event.Type {
	case "checkout.session.completed":
		err = s.handleCheckoutCompleted(ctx, event)
	default:
		s.logger.Debug("Unhandled webhook event type",
			zap.String("event_type", string(event.Type)))
		result.Message = "Event type not handled"
	}

	if err != nil {
		s.logger.Error("Failed to process webhook event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		// The failure is transient, so give the claim back and let the
		// Stripe redelivery try again.
		s.releaseClaim(ctx, event.ID)
		result.Processed = false
		result.Message = err.Error()
		return result, err
	}

	return result, nil
}

// releaseClaim drops the idempotency claim for an event whose processing
// failed, so a redelivery gets another attempt.
func (s *StripeWebhookService) releaseClaim(ctx context.Context, eventID string) {
	if err := s.idempotency.Release(ctx, eventID); err != nil {
		s.logger.Error("Failed to release webhook event claim",
			zap.String("event_id", eventID),
			zap.Error(err))
	}
}

// handleCheckoutCompleted applies a completed purchase to the user
func (s *StripeWebhookService) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("failed to unmarshal checkout session: %w", err)
	}

	meta, err := domainbilling.ParseCheckoutMetadata(session.Metadata)
	if err != nil {
		s.logger.Warn("Checkout session has unusable metadata",
			zap.String("session_id", session.ID),
			zap.Error(err))
		// Note: not treated as an error because sessions created outside
		// this system can share the webhook endpoint. We acknowledge
		// receipt to prevent Stripe retries.
		return nil
	}

	// A concurrent brief generation can bump the user's row version
	// between our read and write. Re-read and re-apply on conflict so the
	// purchase lands on top of the spend instead of overwriting it.
	for attempt := 1; attempt <= checkoutApplyAttempts; attempt++ {
		user, err := s.userRepo.FindByID(ctx, meta.UserID)
		if err != nil {
			if err == shared.ErrNotFound {
				s.logger.Warn("User not found for completed checkout",
					zap.String("user_id", meta.UserID.String()),
					zap.String("session_id", session.ID))
				return nil
			}
			return fmt.Errorf("failed to find user: %w", err)
		}

		if err := s.applyPurchase(user, meta); err != nil {
			// Metadata that parsed but names an unknown plan or a bad
			// quantity will never apply. Acknowledge to stop retries.
			s.logger.Warn("Checkout purchase cannot be applied",
				zap.String("session_id", session.ID),
				zap.String("user_id", user.ID.String()),
				zap.Error(err))
			return nil
		}

		err = s.userRepo.Update(ctx, user)
		if err == nil {
			return nil
		}
		if !errors.Is(err, shared.ErrConcurrencyConflict) {
			return fmt.Errorf("failed to save user: %w", err)
		}
		s.logger.Debug("User row changed during checkout apply, retrying",
			zap.String("user_id", user.ID.String()),
			zap.Int("attempt", attempt))
	}

	return fmt.Errorf("checkout %s: user row kept changing after %d attempts", session.ID, checkoutApplyAttempts)
}

// applyPurchase mutates the user according to the checkout metadata
func (s *StripeWebhookService) applyPurchase(user *identity.User, meta domainbilling.CheckoutMetadata) error {
	now := time.Now()
	switch meta.Type {
	case domainbilling.PurchasePlan:
		plan, err := domainbilling.PlanByID(meta.Plan)
		if err != nil {
			return err
		}
		if err := user.ApplyPlanPurchase(plan, now); err != nil {
			return err
		}
		s.logger.Info("Plan purchase applied",
			zap.String("user_id", user.ID.String()),
			zap.String("plan", string(plan.ID)))

	case domainbilling.PurchaseBriefs:
		if err := user.AddCredits(meta.Quantity, now); err != nil {
			return err
		}
		s.logger.Info("Extra briefs credited",
			zap.String("user_id", user.ID.String()),
			zap.Int("quantity", meta.Quantity))
	}

	return nil
}
