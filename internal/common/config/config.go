package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ametova/valentine-api/internal/common/constants"
)

var ErrMissingRequiredEnv = errors.New("missing required environment variable")

type Config struct {
	HTTPPort        string
	AuthUsername    string
	AuthPassword    string
	SessionSecret   string
	MongoURI        string
	MongoDatabase   string
	CORSOrigins     []string
	CookieSameSite  http.SameSite
	CookieHTTPSOnly bool
	RequestTimeout  time.Duration
}

func Load() (Config, error) {
	username, err := mustEnv("AUTH_USERNAME")
	if err != nil {
		return Config{}, err
	}

	password, err := mustEnv("AUTH_PASSWORD")
	if err != nil {
		return Config{}, err
	}

	mongoURI, err := mustEnv("MONGODB_URI")
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:        getEnv("HTTP_PORT", constants.DefaultHTTPPort),
		AuthUsername:    username,
		AuthPassword:    password,
		SessionSecret:   getEnv("SESSION_SECRET", constants.DefaultSessionSecret),
		MongoURI:        mongoURI,
		MongoDatabase:   getEnv("MONGODB_DB", constants.DefaultMongoDatabase),
		CORSOrigins:     splitOrigins(getEnv("CORS_ORIGINS", constants.DefaultCORSOrigins)),
		CookieSameSite:  parseSameSite(getEnv("SESSION_SAMESITE", "lax")),
		CookieHTTPSOnly: getBoolEnv("SESSION_HTTPS_ONLY", false),
		RequestTimeout:  getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
	}, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getBoolEnv(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
