package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.MatchThreshold != 0.5 {
		t.Errorf("MatchThreshold = %v, want 0.5", cfg.MatchThreshold)
	}
	if cfg.CORSAllowedOrigins != "http://localhost:5173" {
		t.Errorf("CORSAllowedOrigins = %q", cfg.CORSAllowedOrigins)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("MATCH_THRESHOLD", "0.42")
	t.Setenv("DATABASE_URL", "postgres://localhost/biometric")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q, want :9999", cfg.HTTPAddr)
	}
	if cfg.MatchThreshold != 0.42 {
		t.Errorf("MatchThreshold = %v, want 0.42", cfg.MatchThreshold)
	}
	if cfg.DatabaseURL != "postgres://localhost/biometric" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}

func TestLoad_InvalidThreshold(t *testing.T) {
	for _, v := range []string{"0", "-1"} {
		t.Setenv("MATCH_THRESHOLD", v)
		if _, err := Load(); err == nil {
			t.Errorf("MATCH_THRESHOLD=%s should fail validation", v)
		}
	}
}
