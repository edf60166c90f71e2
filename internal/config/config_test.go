package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoad_ProviderCredentials(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		keyVar   string
	}{
		{"openai requires api key", "openai", "OPENAI_API_KEY"},
		{"huggingface requires token", "huggingface", "HF_API_TOKEN"},
		{"dialogflow requires project", "dialogflow", "DIALOGFLOW_PROJECT_ID"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			os.Setenv("CHAT_PROVIDER", tc.provider)
			os.Setenv(tc.keyVar, "test-credential")
			defer os.Unsetenv("CHAT_PROVIDER")
			defer os.Unsetenv(tc.keyVar)

			cfg := Load()
			if cfg.ChatProvider != tc.provider {
				t.Errorf("Expected provider %q, got %q", tc.provider, cfg.ChatProvider)
			}
		})
	}
}

func TestLoad_MissingCredentialPanics(t *testing.T) {
	os.Setenv("CHAT_PROVIDER", "openai")
	os.Unsetenv("OPENAI_API_KEY")
	defer os.Unsetenv("CHAT_PROVIDER")

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for missing OPENAI_API_KEY")
		}
	}()
	Load()
}

func TestLoad_UnknownProviderPanics(t *testing.T) {
	os.Setenv("CHAT_PROVIDER", "rasa")
	defer os.Unsetenv("CHAT_PROVIDER")

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown provider")
		}
	}()
	Load()
}

func TestLoad_UpstreamTimeoutDefault(t *testing.T) {
	os.Setenv("CHAT_PROVIDER", "openai")
	os.Setenv("OPENAI_API_KEY", "test-key")
	defer os.Unsetenv("CHAT_PROVIDER")
	defer os.Unsetenv("OPENAI_API_KEY")

	cfg := Load()
	if cfg.UpstreamTimeout != 20*time.Second {
		t.Errorf("Expected 20s default timeout, got %v", cfg.UpstreamTimeout)
	}
}
