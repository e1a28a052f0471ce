package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"create projects table":  "create_projects_table",
		"Create-Projects-Table":  "create_projects_table",
		"CREATE_PROJECTS_TABLE":  "create_projects_table",
		"create__projects_table": "create_projects_table",
		"Add Credits 123":        "add_credits_123",
		"   spaces   ":           "spaces",
		"special!@#$chars":       "specialchars",
		"trailing_":              "trailing",
		"_leading":               "leading",
		"":                       "",
	}

	for input, want := range cases {
		assert.Equal(t, want, sanitizeName(input), "input %q", input)
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "create projects table", "Projects with questionnaire and generated brief")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.True(t, strings.HasSuffix(mf.UpPath, ".up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, ".down.sql"))

	upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "create projects table")
	assert.Contains(t, string(up), "Projects with questionnaire and generated brief")
	assert.Contains(t, string(up), "Write your UP migration SQL here")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "Rollback")
	assert.Contains(t, string(down), "Write your DOWN migration SQL here")
}

func TestCreateMigration_CreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "migrations")

	_, err := CreateMigration(nested, "seed plans", "seed plan catalog")
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{
		"000001_create_users.up.sql",
		"000001_create_users.down.sql",
		"000002_create_projects.up.sql",
		"000002_create_projects.down.sql",
		"000003_create_processed_events.up.sql",
		"000003_create_processed_events.down.sql",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("-- test"), 0644))
	}

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"000001_create_users",
		"000002_create_projects",
		"000003_create_processed_events",
	}, migrations)
}

func TestListMigrations_EmptyAndMissingDirectories(t *testing.T) {
	migrations, err := ListMigrations(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, migrations)

	migrations, err = ListMigrations("/nonexistent/path/to/migrations")
	require.NoError(t, err)
	assert.Empty(t, migrations)
}

func TestListMigrations_SkipsNonMigrationEntries(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{
		"000001_create_users.up.sql",
		"000001_create_users.down.sql",
		"README.md",
		".gitkeep",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("test"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.up.sql"), 0755))

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_create_users"}, migrations)
}
