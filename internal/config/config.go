package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Chat provider selection values for CHAT_PROVIDER.
const (
	ProviderOpenAI      = "openai"
	ProviderHuggingFace = "huggingface"
	ProviderDialogflow  = "dialogflow"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Chat upstream
	ChatProvider    string
	UpstreamTimeout time.Duration

	// OpenAI
	OpenAIAPIKey string
	OpenAIModel  string

	// Hugging Face inference
	HuggingFaceToken    string
	HuggingFaceModelURL string

	// Dialogflow
	DialogflowProjectID       string
	DialogflowCredentialsFile string
	DialogflowLanguage        string

	// SMTP
	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	SMTPFrom  string
	ContactTo string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		ChatProvider:    getEnvOrDefault("CHAT_PROVIDER", ProviderOpenAI),
		UpstreamTimeout: time.Duration(getEnvAsIntOrDefault("UPSTREAM_TIMEOUT_SECONDS", 20)) * time.Second,
		OpenAIModel:     getEnvOrDefault("OPENAI_MODEL", "gpt-4o"),
		HuggingFaceModelURL: getEnvOrDefault("HF_MODEL_URL",
			"https://api-inference.huggingface.co/models/facebook/blenderbot-400M-distill"),
		DialogflowCredentialsFile: getEnvOrDefault("DIALOGFLOW_CREDENTIALS_FILE", ""),
		DialogflowLanguage:        getEnvOrDefault("DIALOGFLOW_LANGUAGE", "en-US"),
		SMTPHost:                  getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:                  getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUser:                  getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:                  getEnvOrDefault("SMTP_PASS", ""),
		SMTPFrom:                  getEnvOrDefault("SMTP_FROM", "noreply@portfolio.dev"),
		ContactTo:                 getEnvOrDefault("CONTACT_TO", ""),
		FrontendURL:               getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	// Only the selected upstream's credentials are required.
	switch cfg.ChatProvider {
	case ProviderOpenAI:
		cfg.OpenAIAPIKey = mustGetEnv("OPENAI_API_KEY")
	case ProviderHuggingFace:
		cfg.HuggingFaceToken = mustGetEnv("HF_API_TOKEN")
	case ProviderDialogflow:
		cfg.DialogflowProjectID = mustGetEnv("DIALOGFLOW_PROJECT_ID")
	default:
		panic(fmt.Sprintf("unknown CHAT_PROVIDER %q (want %s, %s or %s)",
			cfg.ChatProvider, ProviderOpenAI, ProviderHuggingFace, ProviderDialogflow))
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
