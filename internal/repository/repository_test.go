package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/config"
	"billbook/mocks"
)

func TestNew_File(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Driver: config.DriverFile, FilePath: filepath.Join(t.TempDir(), "ledger.json"), StorageKey: "k",
	}}

	b, err := New(cfg, nil)
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, config.DriverFile, b.Driver)
	res, err := b.Repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestNew_Bolt(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Driver: config.DriverBolt, BoltPath: filepath.Join(t.TempDir(), "ledger.db"), StorageKey: "k",
	}}

	b, err := New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DriverBolt, b.Driver)
	assert.NoError(t, b.Close())
}

func TestNew_S3(t *testing.T) {
	cfg := &config.Config{
		Store: config.StoreConfig{Driver: config.DriverS3, StorageKey: "k"},
		S3:    config.S3Config{Bucket: "bucket", LedgerPrefix: "ledger"},
	}

	_, err := New(cfg, nil)
	assert.Error(t, err)

	b, err := New(cfg, new(mocks.MockObjectStorage))
	require.NoError(t, err)
	assert.Equal(t, config.DriverS3, b.Driver)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(&config.Config{Store: config.StoreConfig{Driver: "redis"}}, nil)
	assert.ErrorContains(t, err, "redis")
}
