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

// Package reportagent runs the research agent that writes one report
// per request: a chat template parameterized with the selected state
// feeds a ReAct agent equipped with a web search tool and an
// encyclopedia tool, and the agent's final message is the report text.
package reportagent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"

	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/conf"
)

// AgentError reports a failed or unusable research agent run. The
// request it belongs to is aborted; callers surface one notice and do
// not retry.
type AgentError struct {
	State string
	Err   error
}

func (e *AgentError) Error() string {
	return fmt.Sprintf("research agent failed for %q: %v", e.State, e.Err)
}

func (e *AgentError) Unwrap() error { return e.Err }

var errEmptyAnswer = errors.New("agent returned an empty answer")

// Config carries the components a Generator runs on.
type Config struct {
	ChatModel model.ToolCallingChatModel
	Tools     []tool.BaseTool
	MaxStep   int
}

// Generator owns the compiled report graph. It is safe for concurrent
// use; every Generate call runs independently.
type Generator struct {
	runnable compose.Runnable[string, *schema.Message]
	tools    []tool.BaseTool
}

// New wires the production pipeline from the loaded configuration.
func New(ctx context.Context, cfg *conf.Config) (*Generator, error) {
	cm, err := NewChatModel(ctx, &cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}
	agentTools, err := NewTools(ctx, &cfg.Agent)
	if err != nil {
		return nil, err
	}
	return newGenerator(ctx, &Config{
		ChatModel: cm,
		Tools:     agentTools,
		MaxStep:   cfg.Agent.MaxStep,
	})
}

func newGenerator(ctx context.Context, cfg *Config) (*Generator, error) {
	agent, err := react.NewAgent(ctx, &react.AgentConfig{
		MaxStep:          cfg.MaxStep,
		ToolCallingModel: cfg.ChatModel,
		ToolsConfig:      compose.ToolsNodeConfig{Tools: cfg.Tools},
	})
	if err != nil {
		return nil, fmt.Errorf("init react agent: %w", err)
	}
	agentLambda, err := compose.AnyLambda(agent.Generate, agent.Stream, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("wrap react agent: %w", err)
	}

	g := compose.NewGraph[string, *schema.Message]()
	_ = g.AddLambdaNode("variables", compose.InvokableLambda(buildVariables))
	_ = g.AddChatTemplateNode("prompt", newPromptTemplate())
	_ = g.AddLambdaNode("agent", agentLambda)
	_ = g.AddEdge(compose.START, "variables")
	_ = g.AddEdge("variables", "prompt")
	_ = g.AddEdge("prompt", "agent")
	_ = g.AddEdge("agent", compose.END)

	runnable, err := g.Compile(ctx, compose.WithGraphName("EinoReporter"))
	if err != nil {
		return nil, fmt.Errorf("compile report graph: %w", err)
	}
	return &Generator{runnable: runnable, tools: cfg.Tools}, nil
}

// Generate runs one research report for the given state and returns the
// agent's final text. Any failure from the run, including an empty
// final answer, comes back as *AgentError.
func (g *Generator) Generate(ctx context.Context, state string, opts ...compose.Option) (string, error) {
	msg, err := g.runnable.Invoke(ctx, state, opts...)
	if err != nil {
		return "", &AgentError{State: state, Err: err}
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "", &AgentError{State: state, Err: errEmptyAnswer}
	}
	return msg.Content, nil
}

// ToolInfos resolves the descriptors of the tools the agent runs with.
func (g *Generator) ToolInfos(ctx context.Context) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(g.tools))
	for _, t := range g.tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
