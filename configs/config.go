package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hazzsaeedharis/postgres-nl-agent/internal/agenterr"
)

// Settings holds every environment-driven knob. It is constructed once in
// main and passed down; nothing reads the environment after Load returns.
type Settings struct {
	// Database
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DatabaseURL string

	// Google Cloud
	GoogleProjectID       string
	GoogleCredentialsPath string

	// Dialogflow
	DialogflowProjectID    string
	DialogflowLanguageCode string

	// Gemini
	GeminiAPIKey string

	// Speech
	SpeechLanguageCode string
	SpeechEncoding     string
	SpeechSampleRate   int

	// Application
	Port         string
	Debug        bool
	SeedDemoData bool
}

func Load() (Settings, error) {
	s := Settings{
		DBHost:      getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:      getEnvOrDefault("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		GoogleProjectID:       os.Getenv("GOOGLE_PROJECT_ID"),
		GoogleCredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		DialogflowProjectID:    os.Getenv("DIALOGFLOW_PROJECT_ID"),
		DialogflowLanguageCode: getEnvOrDefault("DIALOGFLOW_LANGUAGE_CODE", "en-US"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		SpeechLanguageCode: getEnvOrDefault("SPEECH_LANGUAGE_CODE", "en-US"),
		SpeechEncoding:     getEnvOrDefault("SPEECH_ENCODING", "LINEAR16"),
		SpeechSampleRate:   getEnvIntOrDefault("SPEECH_SAMPLE_RATE", 16000),

		Port:         getEnvOrDefault("PORT", "8080"),
		Debug:        getEnvBool("DEBUG"),
		SeedDemoData: getEnvBool("SEED_DEMO_DATA"),
	}

	// A full DATABASE_URL stands in for the individual DB_* variables.
	if s.DatabaseURL == "" {
		var missing []string
		for _, v := range []string{"DB_NAME", "DB_USER", "DB_PASSWORD"} {
			if os.Getenv(v) == "" {
				missing = append(missing, v)
			}
		}
		if len(missing) > 0 {
			return Settings{}, &agenterr.ConfigurationError{Missing: missing}
		}
	}

	return s, nil
}

// DSN returns the connection string handed to the postgres driver.
func (s Settings) DSN() string {
	if s.DatabaseURL != "" {
		return s.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		s.DBHost, s.DBUser, s.DBPassword, s.DBName, s.DBPort,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
