package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProjectTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ProjectModel{})
	require.NoError(t, err)

	return db
}

func newTestProject(t *testing.T, userID uuid.UUID, name string) *brief.Project {
	form := brief.BriefForm{
		ProjectName:    name,
		MainGoal:       "Increase signups",
		TargetAudience: "Small agencies",
		Channels:       []string{"Instagram", "Email"},
	}
	project, err := brief.NewProject(userID, form, "Generated brief text")
	require.NoError(t, err)
	return project
}

func TestGormProjectRepository_CreateAndFind(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	project := newTestProject(t, userID, "Launch Campaign")

	err := repo.Create(ctx, project)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, found.UserID)
	assert.Equal(t, "Launch Campaign", found.Form.ProjectName)
	assert.Equal(t, []string{"Instagram", "Email"}, found.Form.Channels)
	assert.Equal(t, "Generated brief text", found.GeneratedBrief)
}

func TestGormProjectRepository_FindByID_NotFound(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProjectRepository_FindByUser(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newTestProject(t, owner, fmt.Sprintf("Project %d", i))))
	}
	require.NoError(t, repo.Create(ctx, newTestProject(t, other, "Not mine")))

	t.Run("returns only the user's projects", func(t *testing.T) {
		projects, total, err := repo.FindByUser(ctx, owner, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, projects, 3)
		for _, p := range projects {
			assert.Equal(t, owner, p.UserID)
		}
	})

	t.Run("paginates results", func(t *testing.T) {
		filter := shared.Filter{Page: 2, PageSize: 2}
		projects, total, err := repo.FindByUser(ctx, owner, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, projects, 1)
	})

	t.Run("empty result for user without projects", func(t *testing.T) {
		projects, total, err := repo.FindByUser(ctx, uuid.New(), shared.DefaultFilter())
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, projects)
	})
}

func TestGormProjectRepository_Delete(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	project := newTestProject(t, uuid.New(), "Doomed")
	require.NoError(t, repo.Create(ctx, project))

	err := repo.Delete(ctx, project.ID)
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, project.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, project.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
