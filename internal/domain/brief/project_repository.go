package brief

import (
	"context"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *Project) error

	// FindByID finds a project by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindByUser returns the user's projects, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*Project, int64, error)

	// Delete deletes a project by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
