// This file covers the project repository against a real PostgreSQL database.
package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/alvarosc2000/BriefNest-Local/internal/domain/brief"
	"github.com/alvarosc2000/BriefNest-Local/internal/domain/shared"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProject(t *testing.T, userID uuid.UUID, name string) *brief.Project {
	t.Helper()
	form := brief.BriefForm{
		ProjectName:    name,
		MainGoal:       "Aumentar la notoriedad de marca",
		TargetAudience: "Profesionales de marketing 25-45",
		Tone:           "Cercano y profesional",
		Channels:       []string{"Instagram", "LinkedIn"},
	}
	project, err := brief.NewProject(userID, form, "## Resumen\nBrief generado para "+name)
	require.NoError(t, err)
	return project
}

func TestProjectRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	userRepo := persistence.NewGormUserRepository(testDB.DB)
	projectRepo := persistence.NewGormProjectRepository(testDB.DB)
	ctx := context.Background()

	owner := newTestUser(t, "owner@example.com")
	require.NoError(t, userRepo.Create(ctx, owner))

	project := newTestProject(t, owner.ID, "Lanzamiento Otoño")
	require.NoError(t, projectRepo.Create(ctx, project))

	t.Run("FindByID round-trips the questionnaire", func(t *testing.T) {
		found, err := projectRepo.FindByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, found.UserID)
		assert.Equal(t, "Lanzamiento Otoño", found.Form.ProjectName)
		assert.Equal(t, []string{"Instagram", "LinkedIn"}, found.Form.Channels)
		assert.Contains(t, found.GeneratedBrief, "Brief generado")
	})

	t.Run("FindByID not found", func(t *testing.T) {
		_, err := projectRepo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, projectRepo.Delete(ctx, project.ID))
		_, err := projectRepo.FindByID(ctx, project.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProjectRepository_FindByUser(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	userRepo := persistence.NewGormUserRepository(testDB.DB)
	projectRepo := persistence.NewGormProjectRepository(testDB.DB)
	ctx := context.Background()

	owner := newTestUser(t, "many@example.com")
	other := newTestUser(t, "other@example.com")
	require.NoError(t, userRepo.Create(ctx, owner))
	require.NoError(t, userRepo.Create(ctx, other))

	for i := 0; i < 5; i++ {
		p := newTestProject(t, owner.ID, fmt.Sprintf("Proyecto %d", i))
		require.NoError(t, projectRepo.Create(ctx, p))
	}
	require.NoError(t, projectRepo.Create(ctx, newTestProject(t, other.ID, "Ajeno")))

	t.Run("Pagination and total count", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.PageSize = 2

		page1, total, err := projectRepo.FindByUser(ctx, owner.ID, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, page1, 2)

		filter.Page = 3
		page3, _, err := projectRepo.FindByUser(ctx, owner.ID, filter)
		require.NoError(t, err)
		assert.Len(t, page3, 1)
	})

	t.Run("Only the owner's projects are returned", func(t *testing.T) {
		projects, total, err := projectRepo.FindByUser(ctx, other.ID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, projects, 1)
		assert.Equal(t, "Ajeno", projects[0].Form.ProjectName)
	})

	t.Run("Empty result for unknown user", func(t *testing.T) {
		projects, total, err := projectRepo.FindByUser(ctx, uuid.New(), shared.DefaultFilter())
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, projects)
	})
}
