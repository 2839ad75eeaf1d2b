package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults for the server settings.
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultSourcesFile = "sources.yaml"
)

// Server holds the settings of the HTTP server binary.
type Server struct {
	Port        string
	LogLevel    string
	LogFormat   string
	SourcesFile string
}

// LoadServer reads PORT, LOG_LEVEL, LOG_FORMAT and SOURCES_FILE, falling
// back to the package defaults.
func LoadServer() Server {
	return Server{
		Port:        GetEnv("PORT", DefaultPort),
		LogLevel:    GetEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   GetEnv("LOG_FORMAT", DefaultLogFormat),
		SourcesFile: GetEnv("SOURCES_FILE", DefaultSourcesFile),
	}
}

// Load sets environment variables from the given .env files (".env" when
// none are named). Variables already present in the environment win. A
// missing file is an error that callers may ignore.
func Load(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	return godotenv.Load(paths...)
}

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

// GetEnvInt returns key parsed as an int, or fallback when it is unset,
// empty or malformed.
func GetEnvInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}

// GetEnvBool is GetEnvInt for booleans in strconv.ParseBool syntax.
func GetEnvBool(key string, fallback bool) bool {
	if s := os.Getenv(key); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	return fallback
}
