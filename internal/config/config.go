package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	MongoURI            string
	DBName              string

	// StrictWebhookPersistence makes the webhook handler answer 500 when the
	// order write fails, triggering provider-side redelivery. Off by default:
	// failures are logged and the event is acknowledged anyway.
	StrictWebhookPersistence bool

	// DedupeWebhookEvents skips the order write when an order for the same
	// checkout session already exists. Off by default: redelivered events
	// produce duplicate orders.
	DedupeWebhookEvents bool
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		StripeSecretKey:          getEnvOrDefault("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret:      getEnvOrDefault("STRIPE_WEBHOOK_SECRET", ""),
		MongoURI:                 getEnvOrDefault("MONGO_URI", ""),
		DBName:                   getEnvOrDefault("DB_NAME", "production"),
		StrictWebhookPersistence: getBoolEnv("STRICT_WEBHOOK_PERSISTENCE", false),
		DedupeWebhookEvents:      getBoolEnv("DEDUPE_WEBHOOK_EVENTS", false),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
