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
	"context"
	"log"
	"os"

	clc "github.com/cloudwego/eino-ext/callbacks/cozeloop"
	"github.com/cloudwego/eino-ext/devops"
	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/coze-dev/cozeloop-go"
	"github.com/joho/godotenv"

	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/cmd/einoreporter/report"
	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/conf"
	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/eino/reportagent"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	if os.Getenv("EINO_DEBUG") == "true" {
		// 开启 Eino 的可视化调试能力
		if err := devops.Init(ctx); err != nil {
			log.Printf("[eino dev] init failed, err=%v", err)
		}
	}

	initCozeLoopTracing()

	cfg, err := conf.Load()
	if err != nil {
		log.Fatalf("[eino reporter] load config failed, err=%v", err)
	}

	gen, err := reportagent.New(ctx, cfg)
	if err != nil {
		log.Fatalf("[eino reporter] build agent failed, err=%v", err)
	}

	h := server.Default(server.WithHostPorts(cfg.Server.Addr))
	report.BindRoutes(h, gen)
	h.Spin()
}

func initCozeLoopTracing() {
	cozeloopApiToken := os.Getenv("COZELOOP_API_TOKEN")
	cozeloopWorkspaceID := os.Getenv("COZELOOP_WORKSPACE_ID") // use cozeloop trace, from https://loop.coze.cn/open/docs/cozeloop/go-sdk#4a8c980e

	if cozeloopApiToken == "" || cozeloopWorkspaceID == "" {
		return
	}
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
