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

// Package report exposes the report generator over HTTP: the embedded
// single-page form, the states listing and the download endpoint.
package report

import (
	"context"
	"embed"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/eino/reportagent"
	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/pkg/states"
)

//go:embed web
var webContent embed.FS

// Generator is the slice of the report pipeline the HTTP layer needs.
type Generator interface {
	Generate(ctx context.Context, state string, opts ...compose.Option) (string, error)
}

// BindRoutes registers the web form and the report API on h.
func BindRoutes(h *server.Hertz, gen Generator) {
	cb := reportagent.NewLogCallbackHandler()

	h.GET("/", HandleIndex)
	h.GET("/ping", HandlePing)

	api := h.Group("/api")
	api.GET("/states", HandleStates)
	api.GET("/report", HandleGenerate(gen, cb))
}

func HandleIndex(ctx context.Context, c *app.RequestContext) {
	content, err := webContent.ReadFile("web/index.html")
	if err != nil {
		c.String(consts.StatusInternalServerError, "failed to load page")
		return
	}
	c.Data(consts.StatusOK, "text/html; charset=utf-8", content)
}

func HandlePing(ctx context.Context, c *app.RequestContext) {
	c.String(consts.StatusOK, "pong")
}

// HandleStates returns the fixed selectable set in form order plus the
// default selection.
func HandleStates(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{
		"states":  states.All,
		"default": states.Default(),
	})
}
