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

	"github.com/RanFeng/ilog"
	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	callbackutils "github.com/cloudwego/eino/utils/callbacks"
)

// NewLogCallbackHandler traces one report run: which tools the agent
// called with which arguments, and how each model round finished.
func NewLogCallbackHandler() callbacks.Handler {
	return callbackutils.NewHandlerHelper().
		ChatModel(&callbackutils.ModelCallbackHandler{
			OnEnd: onModelEnd,
		}).
		Tool(&callbackutils.ToolCallbackHandler{
			OnStart: onToolStart,
			OnEnd:   onToolEnd,
		}).
		Handler()
}

func onModelEnd(ctx context.Context, info *callbacks.RunInfo, output *model.CallbackOutput) context.Context {
	msg := output.Message
	if msg == nil {
		return ctx
	}
	finishReason := ""
	if msg.ResponseMeta != nil {
		finishReason = msg.ResponseMeta.FinishReason
	}
	ilog.EventInfo(ctx, "model_round_end", "finish_reason", finishReason, "tool_calls", len(msg.ToolCalls))
	return ctx
}

func onToolStart(ctx context.Context, info *callbacks.RunInfo, input *tool.CallbackInput) context.Context {
	args := map[string]any{}
	if err := sonic.Unmarshal([]byte(input.ArgumentsInJSON), &args); err != nil {
		ilog.EventInfo(ctx, "tool_call_start", "tool", info.Name, "raw_args", input.ArgumentsInJSON)
		return ctx
	}
	ilog.EventInfo(ctx, "tool_call_start", "tool", info.Name, "args", args)
	return ctx
}

func onToolEnd(ctx context.Context, info *callbacks.RunInfo, output *tool.CallbackOutput) context.Context {
	resp := output.Response
	if len(resp) > 512 {
		resp = resp[:512] + "..."
	}
	ilog.EventInfo(ctx, "tool_call_end", "tool", info.Name, "response", resp)
	return ctx
}
