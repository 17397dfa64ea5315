// internal/config/config.go
package config

import (
    "fmt"

    "github.com/caarlos0/env/v11"
)

// Config is the process-wide configuration, read once at startup and passed
// explicitly into the pieces that need it. COHERE_API_KEY is the one required
// value; without it the process must not serve requests.
type Config struct {
    CohereAPIKey  string `env:"COHERE_API_KEY,required,notEmpty"`
    CohereBaseURL string `env:"COHERE_BASE_URL" envDefault:"https://api.cohere.ai"`
    CohereModel   string `env:"COHERE_MODEL" envDefault:"command-xlarge-nightly"`
    TTSBaseURL    string `env:"TTS_BASE_URL" envDefault:"https://translate.google.com"`
    ListenAddr    string `env:"LISTEN_ADDR" envDefault:":8080"`
}

func Load() (*Config, error) {
    cfg := &Config{}
    if err := env.Parse(cfg); err != nil {
        return nil, fmt.Errorf("load config: %w", err)
    }
    return cfg, nil
}
