package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// GetAllSettings returns the non-secret settings currently loaded in memory.
func GetAllSettings() map[string]any {
	if Global == nil {
		return map[string]any{}
	}
	return map[string]any{
		"app_version":     Global.App.Version,
		"app_debug":       Global.App.Debug,
		"mcp_transport":   Global.MCP.Transport,
		"patient_store":   Global.Database.PatientStore,
		"anthropic_model": Global.AI.AnthropicModel,
		"openai_model":    Global.AI.OpenAIModel,
		"gemini_model":    Global.AI.GeminiModel,
	}
}

// Helpers. Values resolve through viper so bound cobra flags override the environment.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(viper.GetString(key)); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := getEnv(k, ""); v != "" {
			return v
		}
	}
	return ""
}

func getEnvInt(key string, fallback int) int {
	if v := getEnv(key, ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := getEnv(key, ""); v != "" {
		vLower := strings.ToLower(v)
		return vLower == "1" || vLower == "true" || vLower == "yes" || vLower == "on"
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
