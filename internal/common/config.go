package common

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Dirs     DirsConfig
	OCR      OCRConfig
	Notify   NotifyConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr           string
	MaxUploadBytes int64
}

// DirsConfig holds the working directories. Both are created on startup and
// handed to the pipeline explicitly; nothing reads them as ambient globals.
type DirsConfig struct {
	UploadDir  string
	ScratchDir string
}

// OCRConfig holds rasterization and recognition configuration
type OCRConfig struct {
	Pdftoppm    string // binary name or absolute path; if empty -> "pdftoppm"
	DPI         int    // rasterization DPI for scanned PDFs, default 300
	Language    string // tesseract language profile, default "por"
	TessdataDir string
	MaxPages    int // 0 = no limit
}

// NotifyConfig holds the realtime progress channel configuration
type NotifyConfig struct {
	RedisAddr     string // empty disables progress publication
	RedisPassword string
}

// DatabaseConfig holds the job journal configuration
type DatabaseConfig struct {
	DSN             string // empty disables the journal
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           getEnv("ADDR", ":8080"),
			MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_MB", 50) * 1024 * 1024,
		},
		Dirs: DirsConfig{
			UploadDir:  getEnv("UPLOAD_DIR", "./uploads"),
			ScratchDir: getEnv("SCRATCH_DIR", "./temp"),
		},
		OCR: OCRConfig{
			Pdftoppm:    getEnv("PDFTOPPM", "pdftoppm"),
			DPI:         getEnvAsInt("OCR_DPI", 300),
			Language:    getEnv("OCR_LANG", "por"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			MaxPages:    getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		Notify: NotifyConfig{
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("ADDR is required")
	}
	if c.Dirs.UploadDir == "" || c.Dirs.ScratchDir == "" {
		return fmt.Errorf("UPLOAD_DIR and SCRATCH_DIR are required")
	}
	if c.OCR.DPI <= 0 {
		return fmt.Errorf("OCR_DPI must be positive")
	}
	return nil
}
