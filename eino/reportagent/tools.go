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
	"time"

	duckduckgo "github.com/cloudwego/eino-ext/components/tool/duckduckgo/v2"
	"github.com/cloudwego/eino-ext/components/tool/wikipedia"
	"github.com/cloudwego/eino/components/tool"

	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/conf"
)

// NewTools builds the two lookup tools the agent may call. The agent
// decides when to call which; nothing else in the app invokes them.
func NewTools(ctx context.Context, ac *conf.AgentConfig) ([]tool.BaseTool, error) {
	searchTool, err := duckduckgo.NewTextSearchTool(ctx, &duckduckgo.Config{
		ToolName:   "web_search",
		ToolDesc:   "Use for general web search and recent info",
		MaxResults: ac.SearchMaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("init web search tool: %w", err)
	}

	wikiTool, err := wikipedia.NewTool(ctx, &wikipedia.Config{
		UserAgent:   "eino-reporter (https://github.com/cloudwego/eino)",
		DocMaxChars: 2000,
		Timeout:     15 * time.Second,
		TopK:        ac.WikiTopK,
		MaxRedirect: 3,
		Language:    ac.WikiLanguage,
	})
	if err != nil {
		return nil, fmt.Errorf("init wikipedia tool: %w", err)
	}

	return []tool.BaseTool{searchTool, wikiTool}, nil
}
