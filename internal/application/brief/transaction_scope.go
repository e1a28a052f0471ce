package brief

import (
	"context"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/identity"
)

// TransactionScope provides transactional access to the repositories
// involved in brief generation. When a function is executed within a
// transaction scope, all repository operations will be part of the same
// database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a
// transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// Users returns the user repository scoped to the current transaction
	Users() identity.UserRepository
	// Projects returns the project repository scoped to the current transaction
	Projects() brief.ProjectRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing.
type NoOpTransactionScope struct {
	userRepo    identity.UserRepository
	projectRepo brief.ProjectRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(userRepo identity.UserRepository, projectRepo brief.ProjectRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Users returns the user repository.
func (s *NoOpTransactionScope) Users() identity.UserRepository {
	return s.userRepo
}

// Projects returns the project repository.
func (s *NoOpTransactionScope) Projects() brief.ProjectRepository {
	return s.projectRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
