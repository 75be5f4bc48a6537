package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/pkg/config"
)

func TestOpenRepositoriesMemory(t *testing.T) {
	ctx := context.Background()

	repos, err := openRepositories(ctx, &config.Config{StoreDriver: config.DriverMemory})
	require.NoError(t, err)
	assert.NotNil(t, repos.users)
	assert.NotNil(t, repos.products)
	assert.NotNil(t, repos.orders)
	assert.NoError(t, repos.close(ctx))
}

func TestOpenRepositoriesUnknownDriver(t *testing.T) {
	_, err := openRepositories(context.Background(), &config.Config{StoreDriver: "sqlite"})
	assert.EqualError(t, err, `unknown store driver "sqlite"`)
}

func TestSetupLogging(t *testing.T) {
	assert.NoError(t, setupLogging(&config.Config{LogLevel: "debug", LogFormat: "json"}))
	assert.Error(t, setupLogging(&config.Config{LogLevel: "loud"}))
}
