/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package conf reads the application configuration from environment
// variables once at startup. The resulting Config is handed to the
// components explicitly; nothing in this package is consulted again
// after Load returns.
package conf

import (
	"fmt"
	"os"
	"strconv"
)

// Supported model providers.
const (
	ProviderOpenAI   = "openai"
	ProviderArk      = "ark"
	ProviderDeepSeek = "deepseek"
	ProviderOllama   = "ollama"
)

type ModelConfig struct {
	Provider    string
	Name        string
	APIKey      string
	BaseURL     string
	Temperature float32
}

type AgentConfig struct {
	MaxStep          int
	WikiLanguage     string
	WikiTopK         int
	SearchMaxResults int
}

type ServerConfig struct {
	Addr string
}

type Config struct {
	Model  ModelConfig
	Agent  AgentConfig
	Server ServerConfig
}

// Load builds the configuration from the environment. The provider
// credential is the only required value; everything else falls back to
// a default. Unknown providers and missing credentials fail here so
// startup stops before any request is served.
func Load() (*Config, error) {
	cfg := &Config{
		Model: ModelConfig{
			Provider:    getEnv("MODEL_PROVIDER", ProviderOpenAI),
			Temperature: float32(getEnvFloat("MODEL_TEMPERATURE", 0.7)),
		},
		Agent: AgentConfig{
			MaxStep:          getEnvInt("AGENT_MAX_STEP", 12),
			WikiLanguage:     getEnv("WIKI_LANGUAGE", "en"),
			WikiTopK:         getEnvInt("WIKI_TOP_K", 5),
			SearchMaxResults: getEnvInt("SEARCH_MAX_RESULTS", 10),
		},
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8888"),
		},
	}

	switch cfg.Model.Provider {
	case ProviderOpenAI:
		cfg.Model.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.Model.Name = getEnv("OPENAI_MODEL_NAME", "gpt-4o-mini")
		cfg.Model.BaseURL = os.Getenv("OPENAI_BASE_URL")
		if cfg.Model.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for provider %s", ProviderOpenAI)
		}
	case ProviderArk:
		cfg.Model.APIKey = os.Getenv("ARK_API_KEY")
		cfg.Model.Name = os.Getenv("ARK_MODEL_NAME")
		if cfg.Model.APIKey == "" {
			return nil, fmt.Errorf("ARK_API_KEY is required for provider %s", ProviderArk)
		}
		if cfg.Model.Name == "" {
			return nil, fmt.Errorf("ARK_MODEL_NAME is required for provider %s", ProviderArk)
		}
	case ProviderDeepSeek:
		cfg.Model.APIKey = os.Getenv("DEEPSEEK_API_KEY")
		cfg.Model.Name = getEnv("DEEPSEEK_MODEL_NAME", "deepseek-chat")
		cfg.Model.BaseURL = os.Getenv("DEEPSEEK_BASE_URL")
		if cfg.Model.APIKey == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY is required for provider %s", ProviderDeepSeek)
		}
	case ProviderOllama:
		// Local runtime, no credential.
		cfg.Model.Name = getEnv("OLLAMA_MODEL_NAME", "llama3")
		cfg.Model.BaseURL = getEnv("OLLAMA_BASE_URL", "http://localhost:11434")
	default:
		return nil, fmt.Errorf("unknown MODEL_PROVIDER %q", cfg.Model.Provider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
