package config

import (
	"path/filepath"
	"time"
)

// Config holds all application configuration in a structured way.
// It is built once at startup and read-only afterwards.
type Config struct {
	App      AppConfig
	MCP      MCPConfig
	Paths    PathsConfig
	Database DatabaseConfig
	AI       AIConfig
	APIKeys  APIKeysConfig
}

type AppConfig struct {
	Version     string
	Port        string
	Debug       bool
	Environment string
	BasePath    string
	BasicAuth   []string
	Lambda      bool
}

type MCPConfig struct {
	Transport string // stdio, sse or http
	Port      string
	Host      string
}

type PathsConfig struct {
	Storages string
}

type DatabaseConfig struct {
	PatientStore    string // memory, database or valkey
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string // File path for SQLite, DB Name for Postgres
	ValkeyAddress   string
	ValkeyPassword  string
	ValkeyDB        int
	ValkeyKeyPrefix string
}

type AIConfig struct {
	AnthropicModel string
	OpenAIModel    string
	GeminiModel    string
	RequestTimeout time.Duration
}

type APIKeysConfig struct {
	Stripe    string
	Anthropic string
	OpenAI    string
	Gemini    string
}

const (
	DefaultAnthropicModel = "claude-sonnet-4-5-20250929"
	DefaultOpenAIModel    = "gpt-4o"
	DefaultGeminiModel    = "gemini-2.5-flash"

	// AnalysisTimeout bounds every inference call.
	AnalysisTimeout = 120 * time.Second
)

// Global provides access to the loaded configuration globally (Migration Helper)
var Global *Config

// LoadConfig loads configuration from Environment Variables or defaults.
func LoadConfig() (*Config, error) {
	storages := getEnv("APP_BASE_DIR", "storages")

	var basicAuth []string
	if v := getEnv("APP_BASIC_AUTH", ""); v != "" {
		basicAuth = splitList(v)
	}

	cfg := &Config{
		App: AppConfig{
			Version:     "v2.0.0",
			Port:        getEnv("APP_PORT", "3000"),
			Debug:       getEnvBool("APP_DEBUG", false),
			Environment: getEnv("APP_ENV", "development"),
			BasePath:    getEnv("APP_BASE_PATH", ""),
			BasicAuth:   basicAuth,
			Lambda:      getEnv("AWS_LAMBDA_FUNCTION_NAME", "") != "",
		},
		MCP: MCPConfig{
			Transport: getEnv("MCP_TRANSPORT", "stdio"),
			Port:      getEnv("MCP_PORT", "8080"),
			Host:      getEnv("MCP_HOST", "localhost"),
		},
		Paths: PathsConfig{Storages: storages},
		Database: DatabaseConfig{
			PatientStore:    getEnv("PATIENT_STORE", "memory"),
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", filepath.Join(storages, "patients.db")),
			ValkeyAddress:   getEnv("VALKEY_ADDRESS", "localhost:6379"),
			ValkeyPassword:  getEnv("VALKEY_PASSWORD", ""),
			ValkeyDB:        getEnvInt("VALKEY_DB", 0),
			ValkeyKeyPrefix: getEnv("VALKEY_KEY_PREFIX", "medagent:"),
		},
		AI: AIConfig{
			AnthropicModel: getEnv("ANTHROPIC_MODEL", DefaultAnthropicModel),
			OpenAIModel:    getEnv("OPENAI_MODEL", DefaultOpenAIModel),
			GeminiModel:    getEnv("GEMINI_MODEL", DefaultGeminiModel),
			RequestTimeout: AnalysisTimeout,
		},
		APIKeys: APIKeysConfig{
			Stripe:    firstEnv("STRIPE_API_KEY", "STRIPE_SECRET_KEY"),
			Anthropic: firstEnv("ANTHROPIC_API_KEY", "CLAUDE_API_KEY"),
			OpenAI:    getEnv("OPENAI_API_KEY", ""),
			Gemini:    getEnv("GEMINI_API_KEY", ""),
		},
	}

	Global = cfg
	return cfg, nil
}

// EnvironmentName reports where the process runs, as surfaced in diagnostics.
func (c *Config) EnvironmentName() string {
	if c.App.Lambda {
		return "lambda"
	}
	return "local"
}
