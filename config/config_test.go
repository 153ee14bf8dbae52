package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAMLWithEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("env:\n  serviceName: authsvc\nsecretKey:\n  access: from-file\nauth:\n  bcryptCost: 4\n  tokenTTL: 1h\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yamlBody, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env-0123456789abcdef0123456789")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.SecretKey.Access != "from-env-0123456789abcdef0123456789" {
		t.Fatalf("secret = %q, want env override", cfg.SecretKey.Access)
	}
	if cfg.Auth == nil || cfg.Auth.BcryptCost != 4 || cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("auth = %+v, want bcryptCost 4 and tokenTTL 1h", cfg.Auth)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("config"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestConfig_DefaultsAndValidate(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("default tokenTTL = %v, want 168h", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("default bcryptCost = %d", cfg.Auth.BcryptCost)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("default body size = %q", cfg.HTTP.MaxRequestBodySize)
	}

	cfg.SecretKey.Access = "too-short"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected short secret to be rejected")
	}

	cfg.SecretKey.Access = "0123456789abcdef0123456789abcdef"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
