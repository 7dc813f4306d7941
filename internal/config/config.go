package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"45"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
		TrustProxy      bool   `env:"TRUST_PROXY" envDefault:"false"` // honour X-Forwarded-For / X-Real-IP
	} `envPrefix:"SERVER_"`
	Site struct {
		BaseURL    string `env:"BASE_URL" envDefault:"https://www.pharmacietassigny.fr"`
		ContentDir string `env:"CONTENT_DIR" envDefault:"./content"`
		SourceDir  string `env:"SOURCE_DIR" envDefault:"../init"`
		Timezone   string `env:"TIMEZONE" envDefault:"Europe/Paris"`
		Locale     string `env:"LOCALE" envDefault:"fr"`
	} `envPrefix:"SITE_"`
	Chat struct {
		Provider      string `env:"PROVIDER" envDefault:"mistral"` // mistral | gemini
		APIKey        string `env:"API_KEY"`
		AgentID       string `env:"AGENT_ID" envDefault:"ag_019bc0529c8c70749ee22136fe48d793"`
		BaseURL       string `env:"BASE_URL" envDefault:"https://api.mistral.ai"`
		Model         string `env:"MODEL" envDefault:"gemini-2.5-flash"`
		GeminiBaseURL string `env:"GEMINI_BASE_URL"` // empty keeps the SDK endpoint
		SystemPrompt  string `env:"SYSTEM_PROMPT"`
		Timeout       int    `env:"TIMEOUT" envDefault:"30"`
		FallbackReply string `env:"FALLBACK_REPLY" envDefault:"Je n'ai pas pu générer de réponse."`
		MaxTurns      int    `env:"MAX_TURNS" envDefault:"50"` // most recent turns forwarded, 0 for all
		RateLimit     struct {
			PerMinute int `env:"PER_MINUTE" envDefault:"20"`
			Burst     int `env:"BURST" envDefault:"5"`
		} `envPrefix:"RATE_LIMIT_"`
	} `envPrefix:"CHAT_"`
	Redis struct {
		Addr           string `env:"ADDR"` // empty keeps the rate limiter in memory
		Password       string `env:"PASSWORD"`
		DB             int    `env:"DB" envDefault:"0"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"5"`
	} `envPrefix:"REDIS_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// only the first one keeps the log readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
