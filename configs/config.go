package configs

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SourceBuiltin  = "builtin"
	SourceDatabase = "database"
)

type DB struct {
	Driver             string `default:"postgres"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port           int      `default:"8080"`
	AllowedOrigins []string `default:"[*]"`
}

// Catalog selects where the reference tables come from.
type Catalog struct {
	Source string `default:"builtin"`
}

type Config struct {
	DB      DB
	Server  Server
	Catalog Catalog
}

const envPrefix = "COCKTAIL" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if !slices.Contains([]string{SourceBuiltin, SourceDatabase}, c.Catalog.Source) {
		return fmt.Errorf("%w: unknown catalog source %q", ErrConfiguration, c.Catalog.Source)
	}

	if !slices.Contains([]string{DriverPostgres, DriverSQLite}, c.DB.Driver) {
		return fmt.Errorf("%w: unknown database driver %q", ErrConfiguration, c.DB.Driver)
	}

	if c.Catalog.Source == SourceDatabase && c.DB.Driver == DriverPostgres && c.DB.Host == "" {
		return fmt.Errorf("%w: DB.Host is required for the database catalog source", ErrConfiguration)
	}

	return nil
}
