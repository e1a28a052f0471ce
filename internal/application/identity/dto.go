package identity

import (
	"time"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/billing"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/identity"
	"github.com/google/uuid"
)

// RegisterInput contains the data for registering a new user
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput contains the credentials for logging in
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult contains the issued token and the user profile
type AuthResult struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        UserProfile `json:"user"`
}

// UserProfile is the user view returned to clients, including the
// credit bookkeeping derived from the plan catalog
type UserProfile struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name,omitempty"`
	Plan            string     `json:"plan"`
	PlanName        string     `json:"plan_name"`
	BriefsAvailable int        `json:"briefs_available"`
	BriefsUsed      int        `json:"briefs_used"`
	BriefsRemaining int        `json:"briefs_remaining"`
	ExtraBriefCents int64      `json:"extra_brief_cents"`
	PaymentRequired bool       `json:"payment_required"`
	PlanRenewalAt   *time.Time `json:"plan_renewal_at,omitempty"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
}

// profileFromDomain maps a domain user to its client view.
// Remaining credits are clamped at zero.
func profileFromDomain(user *identity.User) UserProfile {
	profile := UserProfile{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		Plan:            string(user.Plan),
		PlanName:        string(user.Plan),
		BriefsAvailable: user.BriefsAvailable,
		BriefsUsed:      user.BriefsUsed,
		BriefsRemaining: max(user.BriefsAvailable, 0),
		PaymentRequired: user.BriefsAvailable <= 0,
		PlanRenewalAt:   user.PlanRenewalAt,
		LastLoginAt:     user.LastLoginAt,
	}

	if plan, err := billing.PlanByID(user.Plan); err == nil {
		profile.PlanName = plan.Name
		profile.ExtraBriefCents = plan.ExtraBriefCents
	}

	return profile
}
