package iobundle_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/internal/iobundle"
	"github.com/kriptogan/dexnorm/pkg/config"
	"github.com/kriptogan/dexnorm/pkg/errcode"
	"github.com/kriptogan/dexnorm/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	data, err := os.ReadFile(filepath.Join("testdata", "pokemon_data.json"))
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "pokemon_data.json"), data, 0644)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptAssetsDir(dir),
		config.OptBackupDir(filepath.Join(dir, "backup")),
		config.OptJobsNumber(2),
	})
	return cfg
}

func count(t *testing.T, db *sql.DB, table string) int {
	var res int
	err := db.QueryRow("SELECT count(*) FROM " + table).Scan(&res)
	require.NoError(t, err)
	return res
}

// TestBundle verifies bundle tables and their content.
func TestBundle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	require := require.New(t)
	assert := assert.New(t)

	cfg := testConfig(t)
	res, err := iobundle.New(cfg).Bundle(context.Background())
	require.NoError(err)
	assert.Equal(cfg.BundlePath(), res.Path)
	assert.Empty(res.BackupPath)
	assert.Positive(res.SizeAfter)

	db, err := sql.Open("sqlite", cfg.BundlePath())
	require.NoError(err)
	defer db.Close()

	assert.Equal(2, count(t, db, "creatures"))
	assert.Equal(5, count(t, db, "level_up_moves"))
	assert.Equal(5, count(t, db, "moves"))
	assert.Equal(3, count(t, db, "abilities"))
	assert.Equal(4, count(t, db, "types"))
	assert.Equal(2, count(t, db, "stats"))
	assert.Equal(6, count(t, db, "bundle_info"))

	var sprite string
	var exp sql.NullInt64
	err = db.QueryRow(
		"SELECT sprite_path, base_experience FROM creatures WHERE id = 122",
	).Scan(&sprite, &exp)
	require.NoError(err)
	assert.Equal("mr. mime.png", sprite)
	assert.False(exp.Valid)

	rows, err := db.Query(`
SELECT move_name, version_group
  FROM level_up_moves
  WHERE creature_id = 122
  ORDER BY position`)
	require.NoError(err)
	defer rows.Close()
	var names, groups []string
	for rows.Next() {
		var n, g string
		require.NoError(rows.Scan(&n, &g))
		names = append(names, n)
		groups = append(groups, g)
	}
	require.NoError(rows.Err())
	assert.Equal([]string{"barrier", "tackle", "confusion"}, names)
	assert.Equal("legends-arceus", groups[2])

	var moveID string
	err = db.QueryRow("SELECT id FROM moves WHERE name = 'tackle'").Scan(&moveID)
	require.NoError(err)
	assert.Equal(schema.EntityID("tackle"), moveID)

	var version string
	err = db.QueryRow(
		"SELECT value FROM bundle_info WHERE key = 'releases_priority'",
	).Scan(&version)
	require.NoError(err)
	assert.Contains(version, "scarlet-violet,legends-arceus")
}

// TestBundle_Replace verifies the previous bundle is backed up.
func TestBundle_Replace(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	cfg := testConfig(t)
	b := iobundle.New(cfg)

	first, err := b.Bundle(context.Background())
	require.NoError(t, err)
	second, err := b.Bundle(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, second.BackupPath)
	assert.Equal(t, first.SizeAfter, second.SizeBefore)
	info, err := os.Stat(second.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, first.SizeAfter, info.Size())
}

// TestWrite_DuplicateKey verifies a failed insert leaves no table and
// reports the table name.
func TestWrite_DuplicateKey(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	path := filepath.Join(t.TempDir(), "bad.sqlite")
	tables := []schema.Table{{
		Model: schema.Type{},
		Rows: [][]any{
			{"id1", "fire", 0, 1},
			{"id1", "water", 1, 1},
		},
	}}

	err := iobundle.Write(context.Background(), path, tables)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.BundleWriteError, gnErr.Code)
	assert.Equal(t, []any{"types"}, gnErr.Vars)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	var n int
	err = db.QueryRow(
		"SELECT count(*) FROM sqlite_master WHERE name = 'types'",
	).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
