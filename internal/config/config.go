package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by GALOIS_ENV (or .env by default), then
// the matching .secret sidecar if it exists. Everything else is read from
// the environment by the getters below.
func Load() error {
	envFile := os.Getenv("GALOIS_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be populated.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// APIKey is the shared bearer token for /v1. Empty disables auth.
func APIKey() string {
	return os.Getenv("GALOIS_API_KEY")
}

func MigrationsPath() string {
	p := os.Getenv("MIGRATIONS_PATH")
	if p == "" {
		return "migrations"
	}
	return p
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// MaxObjects bounds the objects of a stored or inline context.
// Defaults to 10000; zero disables the bound.
func MaxObjects() int {
	return nonNegativeInt("MAX_OBJECTS", 10000)
}

// MaxAttributes bounds the attribute universe of a context. Key mining is
// exponential in the worst case, so the default is conservative.
func MaxAttributes() int {
	return nonNegativeInt("MAX_ATTRIBUTES", 64)
}

// MiningWorkers bounds the goroutines used per mining call.
// Zero means GOMAXPROCS.
func MiningWorkers() int {
	return nonNegativeInt("MINING_WORKERS", 0)
}

// VerifyInvariants turns on the self-checks after each mining call.
func VerifyInvariants() bool {
	v, err := strconv.ParseBool(os.Getenv("VERIFY_INVARIANTS"))
	return err == nil && v
}

// SlowRequestThreshold is the duration above which requests are logged at
// warn level. Defaults to 2s.
func SlowRequestThreshold() time.Duration {
	d, err := time.ParseDuration(os.Getenv("SLOW_REQUEST_THRESHOLD"))
	if err != nil || d < 0 {
		return 2 * time.Second
	}
	return d
}

func nonNegativeInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
