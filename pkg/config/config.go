package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const appID = "sales"

const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type Config struct {
	ServeHTTPAddress string `envconfig:"serve_http_address" default:":8080"`

	AdminUsername string `envconfig:"admin_username" required:"true"`
	AdminPassword string `envconfig:"admin_password" required:"true"`

	StoreDriver   string `envconfig:"store_driver" default:"mongo"`
	MongoURI      string `envconfig:"mongo_uri" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"mongo_database" default:"sales"`
	MySQLDSN      string `envconfig:"mysql_dsn" default:"sales:sales@tcp(localhost:3306)/sales"`

	RedisURL   string        `envconfig:"redis_url" default:"redis://localhost:6379/0"`
	SessionTTL time.Duration `envconfig:"session_ttl" default:"0s"`

	Currency string `envconfig:"currency" default:"Rs."`

	LogLevel  string `envconfig:"log_level" default:"info"`
	LogFormat string `envconfig:"log_format" default:"json"`

	TracingEnabled  bool   `envconfig:"tracing_enabled" default:"false"`
	TracingEndpoint string `envconfig:"tracing_endpoint"`

	ShutdownTimeout time.Duration `envconfig:"shutdown_timeout" default:"10s"`
}

// Load reads the configuration from SALES_* environment variables.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(appID, &c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverMySQL, DriverMemory:
	default:
		return errors.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.SessionTTL < 0 {
		return errors.New("session ttl must not be negative")
	}
	return nil
}
