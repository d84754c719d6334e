// Package app wires configuration, stores and services into a runnable core.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/feldmann-io/protosnap/internal/common"
	"github.com/feldmann-io/protosnap/internal/identity"
	"github.com/feldmann-io/protosnap/internal/interfaces"
	"github.com/feldmann-io/protosnap/internal/oauth"
	"github.com/feldmann-io/protosnap/internal/storage"
)

// App holds all initialized stores and services. It is the shared core used
// by cmd/protosnap-server and by the handler tests.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Credentials interfaces.CredentialStore
	Catalog     interfaces.CatalogStore
	Directory   *identity.Directory
	Tokens      *oauth.TokenBuilder
	OAuth       *oauth.Service
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging and all services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	common.LoadVersionFromFile()

	// Check provided path, PROTOSNAP_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("PROTOSNAP_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "protosnap.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/protosnap.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level, config.Logging.Format)

	credentials := storage.NewMemoryCredentialStore()
	catalog := storage.NewCatalog()
	directory := identity.NewDirectory()

	tokens := oauth.NewTokenBuilder(
		config.Auth.JWTSecret,
		config.Auth.BaseURL,
		config.Auth.TenantID,
		config.Auth.GetTokenLifetime(),
	)

	oauthService := oauth.NewService(
		credentials,
		directory,
		tokens,
		logger,
		config.Auth.GetCodeLifetime(),
		config.Auth.GetRefreshLifetime(),
		config.Auth.DefaultClientID,
		config.Auth.DefaultScope,
	)

	return &App{
		Config:      config,
		Logger:      logger,
		Credentials: credentials,
		Catalog:     catalog,
		Directory:   directory,
		Tokens:      tokens,
		OAuth:       oauthService,
		StartupTime: time.Now(),
	}, nil
}
