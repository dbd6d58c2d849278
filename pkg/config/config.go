package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	RapidAPI struct {
		Key  string `env:"RAPIDAPI_KEY"`
		Host string `env:"RAPIDAPI_HOST"`
	}
	Instagram struct {
		SessionID string `env:"INSTAGRAM_SESSION_ID"`
		// FetchStories gates the profile-load story fan-out. Off by default so
		// every profile resolve does not burn upstream quota on a section that
		// is rarely available anyway.
		FetchStories bool `env:"FETCH_USER_STORIES" env-default:"false"`
	}
	Resolver struct {
		DetailTimeoutSeconds int `env:"RESOLVE_TIMEOUT_SECONDS" env-default:"30"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
