package identity

import (
	"context"
	"time"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/billing"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/identity"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles profile and credit queries
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the user's profile with plan and credit state.
// When the plan period has elapsed the allowance is lazily renewed
// before answering, so the client always sees fresh counters.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if user.RenewalDue(now) {
		user, err = s.renew(ctx, user, now)
		if err != nil {
			return nil, err
		}
	}

	profile := profileFromDomain(user)
	return &profile, nil
}

// renew resets the user's allowance for the new plan period. A
// concurrent renewal from another request is not an error; the fresh
// row is re-read instead.
func (s *UserService) renew(ctx context.Context, user *identity.User, now time.Time) (*identity.User, error) {
	plan, err := billing.PlanByID(user.Plan)
	if err != nil {
		s.logger.Error("User has unknown plan",
			zap.String("user_id", user.ID.String()),
			zap.String("plan", string(user.Plan)))
		return nil, err
	}

	user.Renew(plan, now)

	if err := s.userRepo.Update(ctx, user); err != nil {
		if err == shared.ErrConcurrencyConflict {
			return s.userRepo.FindByID(ctx, user.ID)
		}
		return nil, err
	}

	s.logger.Info("Plan allowance renewed",
		zap.String("user_id", user.ID.String()),
		zap.String("plan", string(plan.ID)),
		zap.Timep("next_renewal", user.PlanRenewalAt))

	return user, nil
}
