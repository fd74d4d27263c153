package config

import "testing"

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
		"store": map[string]any{
			"autoMigrate": true,
			"retry": map[string]any{
				"maxAttempts": 3,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "STORE_AUTOMIGRATE", want: "store.autoMigrate"},
		{envKey: "STORE_RETRY_MAXATTEMPTS", want: "store.retry.maxAttempts"},
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

func TestApplyDefaults_FillsStoreSettings(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Store.Backend != BackendMemory {
		t.Fatalf("Store.Backend = %q, want %q", cfg.Store.Backend, BackendMemory)
	}
	if cfg.Store.Retry.MaxAttempts != defaultRetryMaxAttempts {
		t.Fatalf("Store.Retry.MaxAttempts = %d, want %d", cfg.Store.Retry.MaxAttempts, defaultRetryMaxAttempts)
	}
	if cfg.Store.Retry.InitialInterval != defaultRetryInitialInterval {
		t.Fatalf("Store.Retry.InitialInterval = %s, want %s", cfg.Store.Retry.InitialInterval, defaultRetryInitialInterval)
	}
	if cfg.PubSub == nil {
		t.Fatal("PubSub is nil")
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{Store: &StoreConfig{Backend: BackendPostgres, Retry: RetryConfig{MaxAttempts: 7}}}
	cfg.applyDefaults()

	if cfg.Store.Backend != BackendPostgres {
		t.Fatalf("Store.Backend = %q, want %q", cfg.Store.Backend, BackendPostgres)
	}
	if cfg.Store.Retry.MaxAttempts != 7 {
		t.Fatalf("Store.Retry.MaxAttempts = %d, want 7", cfg.Store.Retry.MaxAttempts)
	}
}
