package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	appbilling "github.com/alvarosc2000/BriefNest-Local/internal/application/billing"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/billing"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/identity"
	infrabilling "github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/billing"
	"github.com/alvarosc2000/BriefNest-Local/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockCheckoutProvider is a mock implementation of billing.CheckoutProvider
type MockCheckoutProvider struct {
	mock.Mock
}

func (m *MockCheckoutProvider) CreateCheckoutSession(ctx context.Context, input infrabilling.CheckoutSessionInput) (*infrabilling.CheckoutSessionOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infrabilling.CheckoutSessionOutput), args.Error(1)
}

type checkoutTestEnv struct {
	userRepo *MockUserRepository
	provider *MockCheckoutProvider
	router   *gin.Engine
	userID   uuid.UUID
}

func newCheckoutTestEnv(t *testing.T) *checkoutTestEnv {
	t.Helper()

	env := &checkoutTestEnv{
		userRepo: new(MockUserRepository),
		provider: new(MockCheckoutProvider),
		userID:   uuid.New(),
	}

	service := appbilling.NewCheckoutService(env.userRepo, env.provider, zap.NewNop())
	h := NewCheckoutHandler(service)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("jwt_user_id", env.userID.String())
	})
	router.POST("/api/v1/checkout/plan", h.CreatePlanCheckout)
	router.POST("/api/v1/checkout/briefs", h.CreateBriefsCheckout)
	env.router = router
	return env
}

func checkoutTestUser(t *testing.T, env *checkoutTestEnv) *identity.User {
	t.Helper()
	user, err := identity.NewUser("ana@example.com", "secret-password1", "Ana")
	require.NoError(t, err)
	user.ID = env.userID
	return user
}

func TestCheckoutHandler_CreatePlanCheckout(t *testing.T) {
	env := newCheckoutTestEnv(t)
	user := checkoutTestUser(t, env)

	env.userRepo.On("FindByID", mock.Anything, env.userID).Return(user, nil)
	env.provider.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(&infrabilling.CheckoutSessionOutput{
			SessionID: "cs_test_123",
			URL:       "https://checkout.stripe.com/pay/cs_test_123",
		}, nil)

	rec := postJSON(t, env.router, "/api/v1/checkout/plan", gin.H{"plan": "pro"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "cs_test_123", data["session_id"])
	assert.NotEmpty(t, data["url"])
}

func TestCheckoutHandler_UnknownPlan(t *testing.T) {
	env := newCheckoutTestEnv(t)

	rec := postJSON(t, env.router, "/api/v1/checkout/plan", gin.H{"plan": "enterprise"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

func TestCheckoutHandler_FreePlanNotPurchasable(t *testing.T) {
	env := newCheckoutTestEnv(t)

	rec := postJSON(t, env.router, "/api/v1/checkout/plan", gin.H{"plan": "free"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodePlanNotPurchasable, resp.Error.Code)
}

func TestCheckoutHandler_CreateBriefsCheckout(t *testing.T) {
	env := newCheckoutTestEnv(t)
	user := checkoutTestUser(t, env)

	proPlan, err := billing.PlanByID(billing.PlanPro)
	require.NoError(t, err)
	require.NoError(t, user.ApplyPlanPurchase(proPlan, time.Now()))

	env.userRepo.On("FindByID", mock.Anything, env.userID).Return(user, nil)
	env.provider.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(input infrabilling.CheckoutSessionInput) bool {
		return input.Quantity == 3
	})).Return(&infrabilling.CheckoutSessionOutput{
		SessionID: "cs_test_456",
		URL:       "https://checkout.stripe.com/pay/cs_test_456",
	}, nil)

	rec := postJSON(t, env.router, "/api/v1/checkout/briefs", gin.H{"quantity": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	env.provider.AssertExpectations(t)
}

func TestCheckoutHandler_BriefsInvalidQuantity(t *testing.T) {
	env := newCheckoutTestEnv(t)

	rec := postJSON(t, env.router, "/api/v1/checkout/briefs", gin.H{"quantity": 0})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
