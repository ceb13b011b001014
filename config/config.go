package config

import (
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "dev-secret"

type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	DBUrl          string
	AutoMigrate    bool
	AllowedOrigins []string
	// Auth
	JWTSecret string
	JWTTTL    time.Duration
	// Redis Configuration
	RedisURL        string
	RedisPassword   string
	VacancyCacheTTL time.Duration
	// Image provider: "cloudflare" or "s3"
	ImageProvider string
	// Cloudflare Images
	CFAccountID         string
	CFImagesToken       string
	CFImagesAccountHash string
	CFImagesVariant     string
	// S3-compatible storage
	S3Provider        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	S3PublicBaseURL   string
	WasabiEndpoint    string
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment wins
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "3010"),
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBUrl:          getEnv("DATABASE_URL", ""),
		AutoMigrate:    getEnvBool("AUTO_MIGRATE", true),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		// Auth
		JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),
		JWTTTL:    getEnvDuration("JWT_TTL", 7*24*time.Hour),
		// Redis: REDIS_URL, or REDIS_HOST/REDIS_PORT
		RedisURL:        redisURL(),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		VacancyCacheTTL: getEnvDuration("VACANCY_CACHE_TTL", 30*time.Second),
		// Images
		ImageProvider:       strings.ToLower(getEnv("IMAGE_PROVIDER", "cloudflare")),
		CFAccountID:         getEnv("CF_ACCOUNT_ID", ""),
		CFImagesToken:       getEnv("CF_IMAGES_TOKEN", ""),
		CFImagesAccountHash: getEnv("CF_IMAGES_ACCOUNT_HASH", ""),
		CFImagesVariant:     getEnv("CF_IMAGES_VARIANT", "public"),
		S3Provider:          getEnv("S3_PROVIDER", "aws"),
		S3AccessKeyID:       getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey:   getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:            getEnv("S3_REGION", ""),
		S3Bucket:            getEnv("S3_BUCKET", ""),
		S3PublicBaseURL:     strings.TrimRight(getEnv("S3_PUBLIC_BASE_URL", ""), "/"),
		WasabiEndpoint:      getEnv("WASABI_ENDPOINT", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("WARNING: JWT_SECRET not set, using development secret.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: Redis not configured. Vacancy cache falls back to process memory.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in release mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || os.Getenv("GIN_MODE") == "release"
}

func redisURL() string {
	if u := getEnv("REDIS_URL", ""); u != "" {
		return u
	}
	host, hasHost := os.LookupEnv("REDIS_HOST")
	port, hasPort := os.LookupEnv("REDIS_PORT")
	if !hasHost && !hasPort {
		return ""
	}
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "6379"
	}
	return "redis://" + net.JoinHostPort(host, port)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.TrimRight(p, "/"))
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("30s", "168h") or plain seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
