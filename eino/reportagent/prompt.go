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
	"strings"
	"time"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/pkg/report"
)

// systemTemplate fixes the shape of the report. The section list is
// injected from report.Sections so the prompt and the formatter share
// one vocabulary.
const systemTemplate = `You are a research assistant. Create a structured research report on: "{state_name}"
- Use these section labels, in this order, each starting its own line and followed by a colon: {section_list}
- Do NOT include source URLs inline
- Make it concise but informative
- Ground the content in results from the available web search and encyclopedia tools
- Current date: {current_date}`

const userTemplate = `Write the research report on "{state_name}" now.`

func newPromptTemplate() prompt.ChatTemplate {
	return prompt.FromMessages(schema.FString,
		schema.SystemMessage(systemTemplate),
		schema.UserMessage(userTemplate),
	)
}

func buildVariables(ctx context.Context, state string) (map[string]any, error) {
	return map[string]any{
		"state_name":   state,
		"section_list": strings.Join(report.SectionNames(), ", "),
		"current_date": time.Now().Format("2006-01-02"),
	}, nil
}
