package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("EATWISE_SERVER_PORT")
		os.Unsetenv("EATWISE_SERVER_ENVIRONMENT")
		os.Unsetenv("EATWISE_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("EATWISE_CATALOG_PATH")
		os.Unsetenv("EATWISE_EXTERNAL_BASE_URL")
		os.Unsetenv("EATWISE_EXTERNAL_TIMEOUT")
		os.Unsetenv("EATWISE_EXTERNAL_RATE_PER_SEC")
		os.Unsetenv("EATWISE_EXTERNAL_BURST")
		os.Unsetenv("EATWISE_CACHE_TTL")
		os.Unsetenv("EATWISE_SEARCH_DEFAULT_LIMIT")
		os.Unsetenv("EATWISE_SEARCH_MAX_LIMIT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Catalog.Path != "eatwise.db" {
			t.Errorf("Catalog.Path = %s, want eatwise.db", cfg.Catalog.Path)
		}
		if cfg.External.BaseURL != "https://world.openfoodfacts.org" {
			t.Errorf("External.BaseURL = %s, want https://world.openfoodfacts.org", cfg.External.BaseURL)
		}
		if cfg.External.Timeout != 10*time.Second {
			t.Errorf("External.Timeout = %v, want 10s", cfg.External.Timeout)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.Search.DefaultLimit != 20 {
			t.Errorf("Search.DefaultLimit = %d, want 20", cfg.Search.DefaultLimit)
		}
		if cfg.Search.MaxLimit != 100 {
			t.Errorf("Search.MaxLimit = %d, want 100", cfg.Search.MaxLimit)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EATWISE_SERVER_PORT", "9090")
		os.Setenv("EATWISE_SERVER_ENVIRONMENT", "production")
		os.Setenv("EATWISE_CATALOG_PATH", "/var/lib/eatwise/foods.db")
		os.Setenv("EATWISE_EXTERNAL_BASE_URL", "https://custom.api.com")
		os.Setenv("EATWISE_EXTERNAL_TIMEOUT", "5s")
		os.Setenv("EATWISE_CACHE_TTL", "1h")
		os.Setenv("EATWISE_SEARCH_DEFAULT_LIMIT", "10")
		os.Setenv("EATWISE_SEARCH_MAX_LIMIT", "50")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Catalog.Path != "/var/lib/eatwise/foods.db" {
			t.Errorf("Catalog.Path = %s, want /var/lib/eatwise/foods.db", cfg.Catalog.Path)
		}
		if cfg.External.BaseURL != "https://custom.api.com" {
			t.Errorf("External.BaseURL = %s, want https://custom.api.com", cfg.External.BaseURL)
		}
		if cfg.External.Timeout != 5*time.Second {
			t.Errorf("External.Timeout = %v, want 5s", cfg.External.Timeout)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Search.DefaultLimit != 10 {
			t.Errorf("Search.DefaultLimit = %d, want 10", cfg.Search.DefaultLimit)
		}
		if cfg.Search.MaxLimit != 50 {
			t.Errorf("Search.MaxLimit = %d, want 50", cfg.Search.MaxLimit)
		}
	})

	t.Run("fails validation when limits are inconsistent", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EATWISE_SEARCH_DEFAULT_LIMIT", "50")
		os.Setenv("EATWISE_SEARCH_MAX_LIMIT", "10")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for max limit below default")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Catalog:  CatalogConfig{Path: "eatwise.db"},
			External: ExternalConfig{BaseURL: "https://world.openfoodfacts.org"},
			Search:   SearchConfig{DefaultLimit: 20, MaxLimit: 100},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when catalog path is empty", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.Path = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty catalog path")
		}
	})

	t.Run("fails when external base URL is empty", func(t *testing.T) {
		cfg := valid()
		cfg.External.BaseURL = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty base URL")
		}
	})

	t.Run("fails when the default limit is not positive", func(t *testing.T) {
		cfg := valid()
		cfg.Search.DefaultLimit = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero default limit")
		}
	})

	t.Run("fails when the max limit is below the default", func(t *testing.T) {
		cfg := valid()
		cfg.Search.MaxLimit = 5
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for max limit below default")
		}
	})
}
