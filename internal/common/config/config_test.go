package config_test

import (
	"errors"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/ametova/valentine-api/internal/common/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_USERNAME", "admin")
	t.Setenv("AUTH_PASSWORD", "supersecret")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
}

func TestLoad_MissingRequiredEnv(t *testing.T) {
	for _, key := range []string{"AUTH_USERNAME", "AUTH_PASSWORD", "MONGODB_URI"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			_, err := config.Load()
			if !errors.Is(err, config.ErrMissingRequiredEnv) {
				t.Errorf("expected ErrMissingRequiredEnv, got %v", err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_SAMESITE", "")
	t.Setenv("SESSION_HTTPS_ONLY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.CookieSameSite != http.SameSiteLaxMode {
		t.Errorf("expected lax same-site default, got %v", cfg.CookieSameSite)
	}
	if cfg.CookieHTTPSOnly {
		t.Error("expected https-only to default to false")
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected 5s request timeout default, got %v", cfg.RequestTimeout)
	}
}

func TestLoad_ParsesValues(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("SESSION_SECRET", "real-secret")
	t.Setenv("MONGODB_DB", "valentines")
	t.Setenv("CORS_ORIGINS", "https://example.com, https://app.example.com ,")
	t.Setenv("SESSION_SAMESITE", "strict")
	t.Setenv("SESSION_HTTPS_ONLY", "true")
	t.Setenv("REQUEST_TIMEOUT", "10s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPPort != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.HTTPPort)
	}
	if cfg.AuthUsername != "admin" || cfg.AuthPassword != "supersecret" {
		t.Error("expected configured credentials to be loaded")
	}
	if cfg.SessionSecret != "real-secret" {
		t.Errorf("unexpected session secret %q", cfg.SessionSecret)
	}
	wantOrigins := []string{"https://example.com", "https://app.example.com"}
	if !reflect.DeepEqual(cfg.CORSOrigins, wantOrigins) {
		t.Errorf("expected origins %v, got %v", wantOrigins, cfg.CORSOrigins)
	}
	if cfg.CookieSameSite != http.SameSiteStrictMode {
		t.Errorf("expected strict same-site, got %v", cfg.CookieSameSite)
	}
	if !cfg.CookieHTTPSOnly {
		t.Error("expected https-only true")
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected 10s request timeout, got %v", cfg.RequestTimeout)
	}
}

func TestLoad_InvalidSameSiteFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_SAMESITE", "bogus")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.CookieSameSite != http.SameSiteLaxMode {
		t.Errorf("expected lax fallback, got %v", cfg.CookieSameSite)
	}
}
