package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_DRIVER", "REMINDER_POLL_INTERVAL", "TRIAGE_HORIZON_DAYS", "OFFICE_ADMIN_USER", "DEFAULT_PHONE_REGION", "DOCUMENT_MAX_BYTES", "CORS_ALLOWED_ORIGINS", "GO_ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.StorageDriver != StorageDriverDynamoDB {
		t.Fatalf("expected dynamodb driver, got %q", cfg.StorageDriver)
	}
	if cfg.ReminderPollInterval != time.Minute {
		t.Fatalf("expected 60s poll interval, got %s", cfg.ReminderPollInterval)
	}
	if cfg.TriageHorizonDays != 7 {
		t.Fatalf("expected horizon 7, got %d", cfg.TriageHorizonDays)
	}
	if cfg.AdminUser != "admin" || cfg.PhoneRegion != "ES" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DocumentMaxBytes != 5<<20 {
		t.Fatalf("unexpected document limit %d", cfg.DocumentMaxBytes)
	}
	if cfg.IsProduction() {
		t.Fatalf("default env must not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("REMINDER_POLL_INTERVAL", "15")
	t.Setenv("TRIAGE_HORIZON_DAYS", "14")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("GO_ENV", "Production")

	cfg := Load()
	if cfg.Port != 9090 || cfg.StorageDriver != StorageDriverMemory {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.ReminderPollInterval != 15*time.Second {
		t.Fatalf("expected plain seconds to be accepted, got %s", cfg.ReminderPollInterval)
	}
	if cfg.TriageHorizonDays != 14 {
		t.Fatalf("unexpected horizon %d", cfg.TriageHorizonDays)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.Location != time.UTC {
		t.Fatalf("expected UTC location, got %v", cfg.Location)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production env")
	}
}

func TestConfig_MercadoPagoSandbox(t *testing.T) {
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", " TEST-123 ")
	t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "payer@testuser.com")
	cfg := Load()
	if !cfg.MercadoPagoSandbox() {
		t.Fatalf("expected sandbox token")
	}
	if cfg.MercadoPagoTestPayerEmail != "payer@testuser.com" {
		t.Fatalf("unexpected payer email %q", cfg.MercadoPagoTestPayerEmail)
	}

	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "APP_USR-123")
	if Load().MercadoPagoSandbox() {
		t.Fatalf("production token must not be sandbox")
	}
}
