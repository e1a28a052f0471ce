package brief

import (
	"context"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/identity"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/llm"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generator produces the brief text from a prompt
type Generator interface {
	Complete(ctx context.Context, input llm.CompletionInput) (string, error)
}

// BriefService handles brief generation and project queries
type BriefService struct {
	userRepo    identity.UserRepository
	projectRepo brief.ProjectRepository
	txScope     TransactionScope
	generator   Generator
	logger      *zap.Logger
}

// NewBriefService creates a new brief service
func NewBriefService(
	userRepo identity.UserRepository,
	projectRepo brief.ProjectRepository,
	txScope TransactionScope,
	generator Generator,
	logger *zap.Logger,
) *BriefService {
	return &BriefService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		txScope:     txScope,
		generator:   generator,
		logger:      logger,
	}
}

// Generate consumes one credit, generates the brief text and persists the
// project. The credit decrement is a single conditional update, so two
// concurrent requests can never spend the same credit. If generation or
// persistence fails after the decrement, the credit is refunded.
func (s *BriefService) Generate(ctx context.Context, input GenerateBriefInput) (*ProjectResult, error) {
	if err := input.Form.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	consumed, err := s.userRepo.ConsumeCredit(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !consumed {
		s.logger.Info("Brief generation rejected, no credits left",
			zap.String("user_id", input.UserID.String()))
		return nil, shared.ErrNoCredits
	}

	text, err := s.generator.Complete(ctx, llm.CompletionInput{
		System: systemPrompt,
		Prompt: BuildPrompt(input.Form),
	})
	if err != nil {
		s.logger.Error("Brief generation failed",
			zap.String("user_id", input.UserID.String()),
			zap.Error(err))
		s.refundCredit(ctx, input.UserID)
		return nil, shared.ErrGenerationFailed
	}

	project, err := brief.NewProject(input.UserID, input.Form, text)
	if err != nil {
		s.refundCredit(ctx, input.UserID)
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.Projects().Create(ctx, project)
	})
	if err != nil {
		s.logger.Error("Failed to persist project",
			zap.String("user_id", input.UserID.String()),
			zap.Error(err))
		s.refundCredit(ctx, input.UserID)
		return nil, err
	}

	s.logger.Info("Brief generated",
		zap.String("user_id", input.UserID.String()),
		zap.String("project_id", project.ID.String()),
		zap.String("project_name", project.Form.ProjectName))

	return projectResultFromDomain(project), nil
}

// refundCredit returns a consumed credit after a failed generation
func (s *BriefService) refundCredit(ctx context.Context, userID uuid.UUID) {
	if err := s.userRepo.RefundCredit(ctx, userID); err != nil {
		s.logger.Error("Failed to refund credit",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
}

// List returns a page of the user's projects, newest first
func (s *BriefService) List(ctx context.Context, input ListProjectsInput) (*ListProjectsResult, error) {
	filter := shared.DefaultFilter()
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 {
		filter.PageSize = input.PageSize
	}

	projects, total, err := s.projectRepo.FindByUser(ctx, input.UserID, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, projectSummaryFromDomain(p))
	}

	return &ListProjectsResult{
		Projects:   summaries,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

// Get returns one of the user's projects. A project belonging to another
// user is reported as not found rather than forbidden.
func (s *BriefService) Get(ctx context.Context, userID, projectID uuid.UUID) (*ProjectResult, error) {
	project, err := s.GetDomain(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	return projectResultFromDomain(project), nil
}

// GetDomain returns the domain project for a user, for callers that need
// the aggregate itself (PDF rendering)
func (s *BriefService) GetDomain(ctx context.Context, userID, projectID uuid.UUID) (*brief.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.BelongsTo(userID) {
		return nil, shared.ErrNotFound
	}
	return project, nil
}

// Delete removes one of the user's projects
func (s *BriefService) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !project.BelongsTo(userID) {
		return shared.ErrNotFound
	}
	return s.projectRepo.Delete(ctx, projectID)
}
