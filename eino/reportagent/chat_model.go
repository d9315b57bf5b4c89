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

package reportagent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/ollama/ollama/api"

	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/conf"
)

// NewChatModel builds the tool-calling chat model for the configured
// provider. Temperature is applied where the component config exposes it.
func NewChatModel(ctx context.Context, mc *conf.ModelConfig) (model.ToolCallingChatModel, error) {
	switch mc.Provider {
	case conf.ProviderOpenAI:
		temperature := mc.Temperature
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL:     mc.BaseURL,
			APIKey:      mc.APIKey,
			Model:       mc.Name,
			Temperature: &temperature,
		})
	case conf.ProviderArk:
		return ark.NewChatModel(ctx, &ark.ChatModelConfig{
			APIKey: mc.APIKey,
			Model:  mc.Name,
		})
	case conf.ProviderDeepSeek:
		return deepseek.NewChatModel(ctx, &deepseek.ChatModelConfig{
			Model:   mc.Name,
			APIKey:  mc.APIKey,
			BaseURL: mc.BaseURL,
		})
	case conf.ProviderOllama:
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: mc.BaseURL,
			Model:   mc.Name,
			Options: &api.Options{Temperature: mc.Temperature},
		})
	default:
		return nil, fmt.Errorf("unknown model provider %q", mc.Provider)
	}
}
