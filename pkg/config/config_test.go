package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("SALES_ADMIN_USERNAME", "admin")
	t.Setenv("SALES_ADMIN_PASSWORD", "s3cret")
	t.Setenv("SALES_SESSION_TTL", "2h")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "admin", c.AdminUsername)
	assert.Equal(t, DriverMongo, c.StoreDriver)
	assert.Equal(t, ":8080", c.ServeHTTPAddress)
	assert.Equal(t, 2*time.Hour, c.SessionTTL)
}

func TestLoadRequiresAdmin(t *testing.T) {
	for _, key := range []string{"SALES_ADMIN_USERNAME", "SALES_ADMIN_PASSWORD"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("SALES_ADMIN_USERNAME", "admin")
	t.Setenv("SALES_ADMIN_PASSWORD", "s3cret")
	t.Setenv("SALES_STORE_DRIVER", "sqlite")

	_, err := Load()
	assert.EqualError(t, err, `unknown store driver "sqlite"`)
}
