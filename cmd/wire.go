package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	tomlrepo "github.com/bnema/wttrbot/internal/adapters/repo/toml"
	"github.com/bnema/wttrbot/internal/adapters/store/memcache"
	"github.com/bnema/wttrbot/internal/adapters/weather/wttr"
	"github.com/bnema/wttrbot/internal/domain"
	"github.com/bnema/wttrbot/internal/ports"
)

type app struct {
	repo     *tomlrepo.Repository
	profile  tomlrepo.Profile
	store    *memcache.Store
	provider ports.ForecastProvider
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	profile, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	store := memcache.New()
	for nick, location := range profile.Aliases {
		store.Put(nick, domain.CanonicalPlace(location))
	}

	provider := &wttr.Client{
		BaseURL:        envOrDefault("WTTRBOT_WTTR_BASE_URL", wttr.DefaultBaseURL),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: 30 * time.Second,
	}

	return &app{
		repo:     repo,
		profile:  profile,
		store:    store,
		provider: provider,
	}, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
