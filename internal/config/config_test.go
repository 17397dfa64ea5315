package config_test

import (
	"testing"

	"github.com/errorpointers/drip-campaign-backend/internal/config"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("COHERE_API_KEY", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error when COHERE_API_KEY is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COHERE_API_KEY", "test-key")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CohereAPIKey != "test-key" {
		t.Errorf("CohereAPIKey = %q", cfg.CohereAPIKey)
	}
	if cfg.CohereModel != "command-xlarge-nightly" {
		t.Errorf("CohereModel = %q", cfg.CohereModel)
	}
	if cfg.CohereBaseURL != "https://api.cohere.ai" {
		t.Errorf("CohereBaseURL = %q", cfg.CohereBaseURL)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("COHERE_API_KEY", "test-key")
	t.Setenv("COHERE_MODEL", "command-light")
	t.Setenv("LISTEN_ADDR", ":9090")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CohereModel != "command-light" {
		t.Errorf("CohereModel = %q", cfg.CohereModel)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
}
