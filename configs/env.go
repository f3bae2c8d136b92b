package configs

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads the .env file once at startup. A missing file is fine in
// production where variables come from the environment itself.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func EnvMongoURI() string {
	return envOr("MONGO_URI", "mongodb://localhost:27017")
}

func EnvMongoDB() string {
	return envOr("MONGO_DB", "ecommerce")
}

func EnvPort() string {
	return envOr("PORT", "5001")
}

func EnvJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

// EnvRedisAddr is optional; an empty value disables the dashboard cache.
func EnvRedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

func EnvUploadDir() string {
	return envOr("UPLOAD_DIR", "uploads")
}

// EnvPublicBaseURL is prepended to generated image paths.
func EnvPublicBaseURL() string {
	return envOr("PUBLIC_BASE_URL", "http://localhost:"+EnvPort())
}

func EnvPaymentWebhookSecret() string {
	return os.Getenv("PAYMENT_WEBHOOK_SECRET")
}

// EnvOrderStatusStrict controls whether the admin status update validates
// transitions the same way cancellation does, or stays a permissive override.
func EnvOrderStatusStrict() bool {
	return os.Getenv("ORDER_STATUS_STRICT") == "true"
}
