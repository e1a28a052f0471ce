package persistence

import (
	"context"
	"errors"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, project *brief.Project) error {
	model := models.ProjectModelFromDomain(project)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*brief.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUser returns the user's projects, newest first
func (r *GormProjectRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*brief.Project, int64, error) {
	var projectModels []models.ProjectModel
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	if err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&projectModels).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]*brief.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = projectModels[i].ToDomain()
	}
	return projects, total, nil
}

// Delete deletes a project by ID
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormProjectRepository implements ProjectRepository
var _ brief.ProjectRepository = (*GormProjectRepository)(nil)
