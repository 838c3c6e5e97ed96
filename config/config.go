package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIME_ZONE must resolve in minimal containers

	"github.com/joho/godotenv"
)

const (
	// PaginationFit places the capture centered on a single page
	PaginationFit = "fit"
	// PaginationSlice splits a tall capture into successive vertical slices
	PaginationSlice = "slice"
)

type Config struct {
	ServerPort  string
	Environment string
	UploadDir   string
	TimeZone    string
	// Capture (headless Chrome)
	ChromePath         string
	CaptureScale       float64
	CaptureSettleDelay time.Duration
	CaptureTimeout     time.Duration // 0 disables the timeout
	PaginationStrategy string
	// Delivery
	DownloadGracePeriod time.Duration
	ExportRateLimit     int // exports per minute per IP
	// Other
	AllowedOrigins []string
	AppURL         string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	strategy := strings.ToLower(getEnv("PAGINATION_STRATEGY", PaginationFit))
	if strategy != PaginationFit && strategy != PaginationSlice {
		log.Printf("[WARNING] Unknown PAGINATION_STRATEGY %q, using %q", strategy, PaginationFit)
		strategy = PaginationFit
	}

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		UploadDir:           getEnv("UPLOAD_DIR", "tmp/exports"),
		TimeZone:            getEnv("TIME_ZONE", "Asia/Tokyo"),
		ChromePath:          os.Getenv("CHROME_PATH"),
		CaptureScale:        getEnvFloat("CAPTURE_SCALE", 2),
		CaptureSettleDelay:  getEnvDuration("CAPTURE_SETTLE_DELAY", 100*time.Millisecond),
		CaptureTimeout:      getEnvDuration("CAPTURE_TIMEOUT", 0),
		PaginationStrategy:  strategy,
		DownloadGracePeriod: getEnvPositiveDuration("DOWNLOAD_GRACE_PERIOD", time.Minute),
		ExportRateLimit:     getEnvInt("EXPORT_RATE_LIMIT", 10),
		AllowedOrigins:      strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:              getEnv("APP_URL", "http://localhost:8080"),
		R2AccountID:         getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:       getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:   getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:        getEnv("R2_BUCKET_NAME", ""),
	}
}

// Location resolves TimeZone, falling back to UTC when it is unknown
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Printf("[WARNING] Unknown TIME_ZONE %q, using UTC: %v", c.TimeZone, err)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARNING] Invalid integer for %s (%q), using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		log.Printf("[WARNING] Invalid number for %s (%q), using %g", key, value, defaultValue)
		return defaultValue
	}
	return f
}

// getEnvDuration accepts Go duration strings ("250ms", "1m") or bare milliseconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := parseDuration(value)
	if err != nil || d < 0 {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// getEnvPositiveDuration is getEnvDuration for settings where zero is not allowed
func getEnvPositiveDuration(key string, defaultValue time.Duration) time.Duration {
	d := getEnvDuration(key, defaultValue)
	if d <= 0 {
		log.Printf("[WARNING] %s must be greater than zero, using %s", key, defaultValue)
		return defaultValue
	}
	return d
}

func parseDuration(value string) (time.Duration, error) {
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(value)
}
