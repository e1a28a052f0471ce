package handler

import (
	"errors"
	"io"
	"net/http"

	billingapp "github.com/alvarosc2000/BriefNest-Local/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// Stripe payloads are small; anything past this cap is rejected before
// signature verification.
const maxWebhookPayloadSize = 65536

// StripeWebhookHandler receives webhook deliveries from Stripe. The
// route is unauthenticated; the Stripe-Signature header is the only
// accepted proof of origin.
type StripeWebhookHandler struct {
	BaseHandler
	webhookService *billingapp.StripeWebhookService
}

func NewStripeWebhookHandler(webhookService *billingapp.StripeWebhookService) *StripeWebhookHandler {
	return &StripeWebhookHandler{webhookService: webhookService}
}

// StripeWebhookResponse is the acknowledgement body sent back to Stripe.
type StripeWebhookResponse struct {
	Received  bool   `json:"received" example:"true"`
	EventID   string `json:"event_id,omitempty" example:"evt_1234567890"`
	EventType string `json:"event_type,omitempty" example:"checkout.session.completed"`
	Message   string `json:"message,omitempty" example:"Webhook processed successfully"`
}

// HandleStripeWebhook verifies and applies a Stripe event. A missing or
// invalid signature gets 400 and changes nothing. A transient processing
// failure after a valid signature gets 500 so Stripe redelivers.
func (h *StripeWebhookHandler) HandleStripeWebhook(c *gin.Context) {
	// Signature verification needs the raw bytes, so the body is read
	// here instead of going through binding.
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookPayloadSize+1))
	if err != nil {
		h.rejectWebhook(c, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(payload) > maxWebhookPayloadSize {
		h.rejectWebhook(c, http.StatusRequestEntityTooLarge, "Payload too large")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		h.rejectWebhook(c, http.StatusBadRequest, "Missing Stripe-Signature header")
		return
	}

	result, err := h.webhookService.ProcessWebhook(c.Request.Context(), payload, signature)
	if errors.Is(err, billingapp.ErrSignatureVerification) {
		h.rejectWebhook(c, http.StatusBadRequest, "Webhook signature verification failed")
		return
	}
	if err != nil {
		// Internal details stay out of the response body. The non-2xx
		// status makes Stripe redeliver the event.
		c.JSON(http.StatusInternalServerError, StripeWebhookResponse{
			Received:  false,
			EventID:   result.EventID,
			EventType: result.EventType,
			Message:   "Webhook received but processing encountered an issue",
		})
		return
	}

	c.JSON(http.StatusOK, StripeWebhookResponse{
		Received:  true,
		EventID:   result.EventID,
		EventType: result.EventType,
		Message:   result.Message,
	})
}

func (h *StripeWebhookHandler) rejectWebhook(c *gin.Context, status int, message string) {
	c.JSON(status, StripeWebhookResponse{Received: false, Message: message})
}
