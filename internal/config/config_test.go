package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/hockey-league/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(ServiceWeb); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UnknownService(t *testing.T) {
	if _, err := Load("worker"); err == nil {
		t.Fatalf("expected error for unknown service")
	}
}

func TestLoad_DefaultsByService(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	web, err := Load(ServiceWeb)
	if err != nil {
		t.Fatalf("load web config: %v", err)
	}
	if web.HTTPAddr != ":8080" || web.ServiceName != ServiceWeb {
		t.Fatalf("unexpected web defaults: addr=%q name=%q", web.HTTPAddr, web.ServiceName)
	}
	if web.LeagueAPITransport != TransportHTTP {
		t.Fatalf("unexpected default transport: %q", web.LeagueAPITransport)
	}
	if web.SiteTimezone == nil || web.SiteTimezone.String() != "Europe/Moscow" {
		t.Fatalf("unexpected default timezone: %v", web.SiteTimezone)
	}
	if web.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %s", web.LogLevel)
	}

	api, err := Load(ServiceAPI)
	if err != nil {
		t.Fatalf("load api config: %v", err)
	}
	if api.HTTPAddr != ":8081" || api.APIStorage != StorageMemory {
		t.Fatalf("unexpected api defaults: addr=%q storage=%q", api.HTTPAddr, api.APIStorage)
	}
}

func TestLoad_ProdUsesSecureCookiesByDefault(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("WEB_SECURE_COOKIES", "")

	cfg, err := Load(ServiceWeb)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.WebSecureCookies {
		t.Fatalf("expected WebSecureCookies=true in prod")
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad api url scheme", env: map[string]string{"LEAGUE_API_URL": "ftp://example.com/api"}},
		{name: "api url without host", env: map[string]string{"LEAGUE_API_URL": "http:///api"}},
		{name: "unknown transport", env: map[string]string{"LEAGUE_API_TRANSPORT": "grpc"}},
		{name: "unknown timezone", env: map[string]string{"SITE_TIMEZONE": "Mars/Olympus"}},
		{name: "short csrf key", env: map[string]string{"WEB_CSRF_KEY": "too-short"}},
		{name: "zero probe workers", env: map[string]string{"READY_PROBE_WORKERS": "0"}},
		{name: "unknown storage", env: map[string]string{"API_STORAGE": "mongo"}},
		{name: "uptrace without dsn", env: map[string]string{"UPTRACE_ENABLED": "true"}},
		{name: "pyroscope without server", env: map[string]string{"PYROSCOPE_ENABLED": "true"}},
		{name: "negative read timeout", env: map[string]string{"APP_READ_TIMEOUT": "-1s"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			if _, err := Load(ServiceWeb); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("LEAGUE_API_URL", "https://functions.example.com/league")
	t.Setenv("LEAGUE_API_TRANSPORT", "FastHTTP")
	t.Setenv("SITE_TIMEZONE", "UTC")
	t.Setenv("WEB_CSRF_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("APP_WRITE_TIMEOUT", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load(ServiceWeb)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LeagueAPIURL != "https://functions.example.com/league" {
		t.Fatalf("unexpected LeagueAPIURL: %q", cfg.LeagueAPIURL)
	}
	if cfg.LeagueAPITransport != TransportFastHTTP {
		t.Fatalf("unexpected transport: %q", cfg.LeagueAPITransport)
	}
	if cfg.SiteTimezone != time.UTC && cfg.SiteTimezone.String() != "UTC" {
		t.Fatalf("unexpected timezone: %v", cfg.SiteTimezone)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("unexpected write timeout: %s", cfg.WriteTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}
