package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverMemory   = "memory"
)

// Config is the process configuration read from the environment (a .env file
// is loaded by godotenv/autoload in cmd/api).
type Config struct {
	Port          int
	Env           string
	StorageDriver string

	DynamoDBAutoCreateTables bool

	RedisAddress string

	ReminderPollInterval time.Duration
	TriageHorizonDays    int
	Location             *time.Location

	PubSubProjectID string
	PubSubTopic     string
	GCSBucket       string

	GoogleCredentialsJSON string

	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool

	AdminUser         string
	AdminPasswordHash string

	CORSAllowedOrigins []string
	PhoneRegion        string
	DocumentMaxBytes   int64
}

func Load() Config {
	cfg := Config{
		Port:                       getenvInt("PORT", 8080),
		Env:                        strings.ToLower(getenvDefault("GO_ENV", "development")),
		StorageDriver:              strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDriverDynamoDB)),
		DynamoDBAutoCreateTables:   getenvBool("DYNAMODB_AUTO_CREATE_TABLES"),
		RedisAddress:               strings.TrimSpace(os.Getenv("REDIS_ADDRESS")),
		ReminderPollInterval:       getenvDuration("REMINDER_POLL_INTERVAL", time.Minute),
		TriageHorizonDays:          getenvInt("TRIAGE_HORIZON_DAYS", 7),
		Location:                   loadLocation(os.Getenv("APP_TIMEZONE")),
		PubSubProjectID:            firstNonEmpty(os.Getenv("PUBSUB_PROJECT_ID"), os.Getenv("GOOGLE_CLOUD_PROJECT")),
		PubSubTopic:                strings.TrimSpace(os.Getenv("PUBSUB_TOPIC")),
		GCSBucket:                  strings.TrimSpace(os.Getenv("GCS_BUCKET")),
		GoogleCredentialsJSON:      strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_JSON")),
		MercadoPagoAccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoTestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		MercadoPagoTestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		PaymentGatewayMock:         getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
		AdminUser:                  getenvDefault("OFFICE_ADMIN_USER", "admin"),
		AdminPasswordHash:          strings.TrimSpace(os.Getenv("OFFICE_ADMIN_PASSWORD_HASH")),
		CORSAllowedOrigins:         splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")),
		PhoneRegion:                strings.ToUpper(getenvDefault("DEFAULT_PHONE_REGION", "ES")),
		DocumentMaxBytes:           int64(getenvInt("DOCUMENT_MAX_BYTES", 5<<20)),
	}
	return cfg
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// MercadoPagoSandbox reports whether the access token belongs to a Mercado
// Pago test account.
func (c Config) MercadoPagoSandbox() bool {
	return strings.HasPrefix(c.MercadoPagoAccessToken, "TEST-")
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// getenvDuration accepts Go durations ("90s") or plain seconds ("90").
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func loadLocation(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
