package persistence

import (
	"context"

	appbrief "github.com/alvarosc2000/BriefNest-Local/internal/application/brief"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/identity"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appbrief.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to the repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Users returns the user repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Users() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

// Projects returns the project repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Projects() brief.ProjectRepository {
	return NewGormProjectRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appbrief.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appbrief.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
