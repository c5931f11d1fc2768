package iopublish_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/kriptogan/dexnorm/internal/iodb"
	"github.com/kriptogan/dexnorm/internal/iopublish"
	"github.com/kriptogan/dexnorm/internal/iotesting"
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

	cfg := iotesting.GetTestConfig()
	cfg.Update([]config.Option{
		config.OptAssetsDir(dir),
		config.OptJobsNumber(2),
		config.OptDatabaseBatchSize(2),
	})
	return cfg
}

// TestPublish_NotConnected verifies that Publish refuses to run
// without a connection.
func TestPublish_NotConnected(t *testing.T) {
	cfg := config.New()
	err := iopublish.New(cfg, iodb.NewPgxOperator()).
		Publish(context.Background())
	require.Error(t, err)

	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

// TestPublish verifies that rows are published and that publishing
// twice replaces the previous content.
func TestPublish(t *testing.T) {
	op := iotesting.ConnectOrSkip(t)
	ctx := context.Background()
	require.NoError(t, op.DropAllTables(ctx))
	t.Cleanup(func() { _ = op.DropAllTables(ctx) })

	cfg := testConfig(t)
	pub := iopublish.New(cfg, op)

	for range 2 {
		require.NoError(t, pub.Publish(ctx))

		tests := []struct {
			table string
			rows  int
		}{
			{schema.Creature{}.TableName(), 2},
			{schema.LevelUpMove{}.TableName(), 5},
			{schema.Move{}.TableName(), 5},
			{schema.Type{}.TableName(), 4},
			{schema.Stat{}.TableName(), 2},
			{schema.Ability{}.TableName(), 3},
			{schema.BundleInfo{}.TableName(), 6},
		}
		for _, tt := range tests {
			var n int
			err := op.Pool().
				QueryRow(ctx, "SELECT count(*) FROM "+tt.table).Scan(&n)
			require.NoError(t, err)
			assert.Equal(t, tt.rows, n, tt.table)
		}
	}

	var sprite string
	err := op.Pool().QueryRow(ctx,
		"SELECT sprite_path FROM creatures WHERE id = 122").Scan(&sprite)
	require.NoError(t, err)
	assert.Equal(t, "mr. mime.png", sprite)

	var baseExp *int
	err = op.Pool().QueryRow(ctx,
		"SELECT base_experience FROM creatures WHERE id = 122").Scan(&baseExp)
	require.NoError(t, err)
	assert.Nil(t, baseExp)
}
