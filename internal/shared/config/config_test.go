package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("GEMINI_MODEL", "")
	cfg := Load()

	if cfg.Port == "" {
		t.Fatalf("expected default port")
	}
	if cfg.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Fatalf("expected default upload cap, got %d", cfg.MaxUploadBytes)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("expected default model, got %q", cfg.GeminiModel)
	}
}

func TestMaxUploadBytesOverride(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "1048576")
	cfg := Load()
	if cfg.MaxUploadBytes != 1<<20 {
		t.Fatalf("expected 1 MiB cap, got %d", cfg.MaxUploadBytes)
	}
}

func TestMaxUploadBytesInvalidFallsBack(t *testing.T) {
	for _, raw := range []string{"not-a-number", "-1", "0"} {
		t.Setenv("MAX_FILE_SIZE", raw)
		if cfg := Load(); cfg.MaxUploadBytes != DefaultMaxUploadBytes {
			t.Fatalf("value %q: expected default cap, got %d", raw, cfg.MaxUploadBytes)
		}
	}
}

func TestCORSAllowOriginsSplit(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", " http://a.example , http://b.example ,")
	cfg := Load()
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowOrigin)
	}
	if cfg.CORSAllowOrigin[0] != "http://a.example" || cfg.CORSAllowOrigin[1] != "http://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"PRODUCTION": "production",
		"staging":    "staging",
		"dev":        "dev",
		"weird":      "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}
