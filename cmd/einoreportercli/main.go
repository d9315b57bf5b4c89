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

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	clc "github.com/cloudwego/eino-ext/callbacks/cozeloop"
	"github.com/cloudwego/eino-ext/devops"
	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/compose"
	"github.com/coze-dev/cozeloop-go"
	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"

	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/conf"
	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/eino/reportagent"
	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/pkg/env"
	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/pkg/report"
	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/pkg/states"
)

var stateFlag = flag.String("state", "", "state to research, prompts interactively when empty")

var cbHandler callbacks.Handler

func main() {
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()

	if os.Getenv("EINO_DEBUG") == "true" {
		// 开启 Eino 的可视化调试能力
		if err := devops.Init(ctx); err != nil {
			log.Printf("[eino dev] init failed, err=%v", err)
			return
		}
	}

	if err := Init(); err != nil {
		log.Printf("[eino reporter] init failed, err=%v", err)
		return
	}

	state := strings.TrimSpace(*stateFlag)
	if state == "" {
		var err error
		state, err = chooseState(os.Stdin, os.Stdout)
		if err != nil {
			log.Printf("[eino reporter] read state failed, err=%v", err)
			return
		}
	}
	if !states.Valid(state) {
		log.Printf("[eino reporter] unknown state %q", state)
		return
	}

	cfg, err := conf.Load()
	if err != nil {
		log.Printf("[eino reporter] load config failed, err=%v", err)
		return
	}

	gen, err := reportagent.New(ctx, cfg)
	if err != nil {
		log.Printf("[eino reporter] build agent failed, err=%v", err)
		return
	}

	if os.Getenv("DEBUG") == "true" {
		infos, err := gen.ToolInfos(ctx)
		if err != nil {
			log.Printf("[eino reporter] list tools failed, err=%v", err)
			return
		}
		spew.Dump(infos)
	}

	fmt.Printf("🔄 Generating report for %s...\n", state)

	text, err := gen.Generate(ctx, state, compose.WithCallbacks(cbHandler))
	if err != nil {
		log.Printf("[eino reporter] generate failed, err=%v", err)
		return
	}

	data, err := report.Format(report.Title(state), text)
	if err != nil {
		log.Printf("[eino reporter] format document failed, err=%v", err)
		return
	}

	name := report.FileName(state)
	if err := os.WriteFile(name, data, 0644); err != nil {
		log.Printf("[eino reporter] write %s failed, err=%v", name, err)
		return
	}

	fmt.Println("✅ Report successfully generated!")
	fmt.Printf("📄 Saved to %s\n", name)
}

func Init() error {
	// check some essential envs
	switch os.Getenv("MODEL_PROVIDER") {
	case conf.ProviderArk:
		env.MustHasEnvs("ARK_API_KEY", "ARK_MODEL_NAME")
	case conf.ProviderDeepSeek:
		env.MustHasEnvs("DEEPSEEK_API_KEY")
	case conf.ProviderOllama:
	case conf.ProviderOpenAI, "":
		env.MustHasEnvs("OPENAI_API_KEY")
	}

	os.MkdirAll("log", 0755)
	f, err := os.OpenFile("log/eino.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	cbConfig := &LogCallbackConfig{
		Detail: true,
		Writer: f,
	}
	if os.Getenv("DEBUG") == "true" {
		cbConfig.Debug = true
	}
	// this is for invoke option of WithCallback
	cbHandler = LogCallback(cbConfig)

	cozeloopApiToken := os.Getenv("COZELOOP_API_TOKEN")
	cozeloopWorkspaceID := os.Getenv("COZELOOP_WORKSPACE_ID") // use cozeloop trace, from https://loop.coze.cn/open/docs/cozeloop/go-sdk#4a8c980e
	if cozeloopApiToken != "" && cozeloopWorkspaceID != "" {
		client, err := cozeloop.NewClient(
			cozeloop.WithAPIToken(cozeloopApiToken),
			cozeloop.WithWorkspaceID(cozeloopWorkspaceID),
		)
		if err != nil {
			panic(err)
		}
		cozeloop.SetDefaultClient(client)
		callbacks.AppendGlobalHandlers(clc.NewLoopHandler(client))
	}

	return nil
}

func chooseState(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "🎯 Select a State")
	for i, name := range states.All {
		fmt.Fprintf(out, "%3d. %s\n", i+1, name)
	}
	fmt.Fprintf(out, "Choose a state (1-%d, empty for %s): ", len(states.All), states.Default())

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return states.Default(), nil
	}
	if n, convErr := strconv.Atoi(line); convErr == nil {
		if n < 1 || n > len(states.All) {
			return "", fmt.Errorf("choice %d out of range", n)
		}
		return states.All[n-1], nil
	}
	return line, nil
}

type LogCallbackConfig struct {
	Detail bool
	Debug  bool
	Writer io.Writer
}

func LogCallback(config *LogCallbackConfig) callbacks.Handler {
	if config == nil {
		config = &LogCallbackConfig{
			Detail: true,
			Writer: os.Stdout,
		}
	}
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	builder := callbacks.NewHandlerBuilder()
	builder.OnStartFn(func(ctx context.Context, info *callbacks.RunInfo, input callbacks.CallbackInput) context.Context {
		fmt.Fprintf(config.Writer, "[view]: start [%s:%s:%s]\n", info.Component, info.Type, info.Name)
		if config.Detail {
			var b []byte
			if config.Debug {
				b, _ = json.MarshalIndent(input, "", "  ")
			} else {
				b, _ = json.Marshal(input)
			}
			fmt.Fprintf(config.Writer, "%s\n", string(b))
		}
		return ctx
	})
	builder.OnEndFn(func(ctx context.Context, info *callbacks.RunInfo, output callbacks.CallbackOutput) context.Context {
		fmt.Fprintf(config.Writer, "[view]: end [%s:%s:%s]\n", info.Component, info.Type, info.Name)
		return ctx
	})
	return builder.Build()
}
