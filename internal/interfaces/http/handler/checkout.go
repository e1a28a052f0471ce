package handler

import (
	appbilling "github.com/alvarosc2000/BriefNest-Local/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles Stripe checkout HTTP requests
type CheckoutHandler struct {
	BaseHandler
	checkoutService *appbilling.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *appbilling.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// PlanCheckoutRequest represents the request body for a plan purchase
type PlanCheckoutRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// BriefsCheckoutRequest represents the request body for buying extra briefs
type BriefsCheckoutRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=100"`
}

// CreatePlanCheckout starts a Stripe checkout session for a plan purchase
func (h *CheckoutHandler) CreatePlanCheckout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req PlanCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.checkoutService.CreatePlanCheckout(c.Request.Context(), appbilling.PlanCheckoutInput{
		UserID: userID,
		Plan:   req.Plan,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CreateBriefsCheckout starts a Stripe checkout session for extra brief credits
func (h *CheckoutHandler) CreateBriefsCheckout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req BriefsCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.checkoutService.CreateBriefsCheckout(c.Request.Context(), appbilling.BriefsCheckoutInput{
		UserID:   userID,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
