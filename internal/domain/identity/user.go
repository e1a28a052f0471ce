package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/billing"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents an account in the system.
// It is the aggregate root for authentication and credit bookkeeping.
type User struct {
	shared.BaseAggregateRoot
	Email           string
	PasswordHash    string
	Name            string
	Plan            billing.PlanID
	BriefsAvailable int
	BriefsUsed      int
	PlanRenewalAt   *time.Time
	LastLoginAt     *time.Time
}

// NewUser creates a new user on the free plan with its trial allowance
func NewUser(email, password, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if name != "" && len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	freePlan, err := billing.PlanByID(billing.PlanFree)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      passwordHash,
		Name:              strings.TrimSpace(name),
		Plan:              freePlan.ID,
		BriefsAvailable:   freePlan.MonthlyCredits,
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.UpdatedAt = at
	u.IncrementVersion()
}

// ApplyPlanPurchase switches the user to the purchased plan, resets the
// usage counters to the plan allowance and schedules the next renewal.
func (u *User) ApplyPlanPurchase(plan billing.Plan, now time.Time) error {
	if !plan.Purchasable() {
		return shared.NewDomainError("PLAN_NOT_PURCHASABLE", "Plan cannot be purchased: "+string(plan.ID))
	}

	renewal := now.AddDate(0, 1, 0)
	u.Plan = plan.ID
	u.BriefsAvailable = plan.MonthlyCredits
	u.BriefsUsed = 0
	u.PlanRenewalAt = &renewal
	u.UpdatedAt = now
	u.IncrementVersion()

	return nil
}

// AddCredits grants extra brief credits on top of the plan allowance
func (u *User) AddCredits(quantity int, now time.Time) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Credit quantity must be at least 1")
	}

	u.BriefsAvailable += quantity
	u.UpdatedAt = now
	u.IncrementVersion()

	return nil
}

// RenewalDue reports whether the plan period has elapsed
func (u *User) RenewalDue(now time.Time) bool {
	return u.PlanRenewalAt != nil && !now.Before(*u.PlanRenewalAt)
}

// Renew resets the usage counters to the plan allowance and advances the
// renewal date by whole months until it is in the future.
func (u *User) Renew(plan billing.Plan, now time.Time) {
	next := *u.PlanRenewalAt
	for !next.After(now) {
		next = next.AddDate(0, 1, 0)
	}

	u.BriefsAvailable = plan.MonthlyCredits
	u.BriefsUsed = 0
	u.PlanRenewalAt = &next
	u.UpdatedAt = now
	u.IncrementVersion()
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	// Check for at least one letter and one number
	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
