package state

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowland-wm/snowland/pkg/filesystem"
	"github.com/snowland-wm/snowland/pkg/testutil"
	"github.com/snowland-wm/snowland/pkg/types"
)

func TestLoadMissingFileIsFirstRun(t *testing.T) {
	fs := filesystem.NewOS()
	path := filepath.Join(t.TempDir(), "state")

	s, err := Load(fs, path)
	require.NoError(t, err)

	assert.Equal(t, types.FirstRun, s.Kind)
	assert.True(t, s.FirstInstallAt.IsZero())
	assert.True(t, s.LastRunAt.IsZero())
}

func TestLoadExistingFileIsSubsequentRun(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "state",
		"first_install_at=2025-01-01T10:00:00Z\nlast_run_at=2025-01-01T10:00:00Z\nlast_run_at=2025-02-03T09:30:00Z\n")

	s, err := Load(fs, path)
	require.NoError(t, err)

	assert.Equal(t, types.SubsequentRun, s.Kind)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), s.FirstInstallAt)
	// Appended entries win
	assert.Equal(t, time.Date(2025, 2, 3, 9, 30, 0, 0, time.UTC), s.LastRunAt)
}

func TestLoadToleratesMalformedLines(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "state",
		"# comment\n\ngarbage line\nlast_run_at=not-a-timestamp\nfirst_install_at=2025-01-01T10:00:00Z\n")

	s, err := Load(fs, path)
	require.NoError(t, err)

	assert.Equal(t, types.SubsequentRun, s.Kind)
	assert.False(t, s.FirstInstallAt.IsZero())
	assert.True(t, s.LastRunAt.IsZero())
}

func TestPersistFirstRun(t *testing.T) {
	fs := filesystem.NewOS()
	path := filepath.Join(t.TempDir(), "nested", "state")

	s, err := Load(fs, path)
	require.NoError(t, err)
	require.Equal(t, types.FirstRun, s.Kind)

	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Persist(fs, now))

	content := testutil.ReadFile(t, path)
	assert.Contains(t, content, "first_install_at=2025-03-04T12:00:00Z")
	assert.Contains(t, content, "last_run_at=2025-03-04T12:00:00Z")
}

func TestPersistAppendsOnSubsequentRuns(t *testing.T) {
	fs := filesystem.NewOS()
	path := filepath.Join(t.TempDir(), "state")

	first, err := Load(fs, path)
	require.NoError(t, err)
	require.NoError(t, first.Persist(fs, time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)))

	second, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, types.SubsequentRun, second.Kind)
	require.NoError(t, second.Persist(fs, time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)))

	content := testutil.ReadFile(t, path)
	assert.Equal(t, 1, strings.Count(content, "first_install_at="))
	assert.Equal(t, 2, strings.Count(content, "last_run_at="))

	third, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC), third.LastRunAt)
	assert.Equal(t, time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC), third.FirstInstallAt)
}
