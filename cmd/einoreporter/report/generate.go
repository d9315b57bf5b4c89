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

package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/RanFeng/ilog"
	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/eino/reportagent"
	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/pkg/docx"
	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/pkg/report"
	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/pkg/states"
)

const agentFailNotice = "API limit reached or an error occurred. Please try again later."

// HandleGenerate runs the pipeline for one state and answers with the
// document as an attachment. An agent failure produces a single error
// notice and no document; the client must re-trigger manually.
func HandleGenerate(gen Generator, cb callbacks.Handler) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		state := c.Query("state")
		if state == "" {
			state = states.Default()
		}
		if !states.Valid(state) {
			c.JSON(consts.StatusBadRequest, utils.H{
				"status":  "error",
				"message": fmt.Sprintf("unknown state %q", state),
			})
			return
		}

		ilog.EventInfo(ctx, "report_generate_start", "state", state)
		text, err := gen.Generate(ctx, state, compose.WithCallbacks(cb))
		if err != nil {
			ilog.EventError(ctx, err, "report_generate_fail", "state", state)
			status := consts.StatusInternalServerError
			message := "report generation failed"
			var agentErr *reportagent.AgentError
			if errors.As(err, &agentErr) {
				status = consts.StatusBadGateway
				message = agentFailNotice
			}
			c.JSON(status, utils.H{"status": "error", "message": message})
			return
		}

		data, err := report.Format(report.Title(state), text)
		if err != nil {
			ilog.EventError(ctx, err, "report_serialize_fail", "state", state)
			c.JSON(consts.StatusInternalServerError, utils.H{
				"status":  "error",
				"message": "failed to build the document",
			})
			return
		}

		ilog.EventInfo(ctx, "report_generate_done", "state", state, "doc_bytes", len(data))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(state)))
		c.Data(consts.StatusOK, docx.MediaType, data)
	}
}
