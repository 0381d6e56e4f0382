package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
environment: test
anthropic:
  api_key: sk-test
twilio:
  account_sid: AC123
  auth_token: token
redis:
  addr: localhost:6379
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timezone != "Asia/Kolkata" {
		t.Fatalf("expected default timezone, got %q", cfg.Timezone)
	}
	if cfg.History.Backend != "none" {
		t.Fatalf("expected default history backend, got %q", cfg.History.Backend)
	}
	if cfg.Queue.Workers != 2 {
		t.Fatalf("expected default queue workers, got %d", cfg.Queue.Workers)
	}
}

func TestValidateRejectsMissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no anthropic key", `
environment: test
twilio:
  account_sid: AC123
  auth_token: token
redis:
  addr: localhost:6379
`},
		{"no twilio auth", `
environment: test
anthropic:
  api_key: sk-test
redis:
  addr: localhost:6379
`},
		{"no environment", `
anthropic:
  api_key: sk-test
twilio:
  account_sid: AC123
  auth_token: token
redis:
  addr: localhost:6379
`},
		{"bad history backend", validYAML + `
history:
  backend: postgres
`},
		{"clickhouse backend without host", validYAML + `
history:
  backend: clickhouse
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-env")
	t.Setenv("TWILIO_WHATSAPP_NUMBER", "whatsapp:+10000000000")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Anthropic.APIKey != "sk-env" {
		t.Fatalf("env override not applied, got %q", cfg.Anthropic.APIKey)
	}
	if cfg.Twilio.FromNumber != "whatsapp:+10000000000" {
		t.Fatalf("from number override not applied, got %q", cfg.Twilio.FromNumber)
	}
}
