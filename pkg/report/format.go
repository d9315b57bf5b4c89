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
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/pkg/docx"
)

// FileExtension is the extension of the produced artifact.
const FileExtension = "docx"

const (
	titlePrefix = "Research Report: "
	noteFormat  = "Generated with Eino · %s"
)

// now is swapped in tests to pin the generation date.
var now = time.Now

// Title returns the document title for a report about the given state.
func Title(state string) string {
	return titlePrefix + state
}

// FileName returns the download name for a report about the given state.
func FileName(state string) string {
	return fmt.Sprintf("%s_report.%s", state, FileExtension)
}

// Build classifies the agent's answer into document blocks. Every
// non-empty line either starts with a recognized "Name:" label, which
// becomes a heading at the label's level followed by a paragraph with
// the remainder, or is carried over as a plain paragraph. A blank
// separator paragraph and a dated generation note close the document.
// Lines that match no label never fail the build; the formatter is
// tolerant of whatever the agent returns.
func Build(title, reportText string) *docx.Document {
	doc := docx.New()
	doc.AddHeading(title, 0)

	for _, raw := range strings.Split(reportText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		matched := false
		for pair := labelLevels.Oldest(); pair != nil; pair = pair.Next() {
			if !strings.HasPrefix(line, pair.Key) {
				continue
			}
			rest := strings.TrimSpace(strings.TrimPrefix(line, pair.Key))
			doc.AddHeading(strings.TrimSuffix(pair.Key, ":"), pair.Value)
			doc.AddParagraph(rest)
			matched = true
			break
		}
		if !matched {
			doc.AddParagraph(line)
		}
	}

	doc.AddParagraph("")
	doc.AddParagraph(fmt.Sprintf(noteFormat, now().Format("2006-01-02")))
	return doc
}

// Format builds the document for one report and serializes it.
func Format(title, reportText string) ([]byte, error) {
	data, err := Build(title, reportText).Bytes()
	if err != nil {
		return nil, fmt.Errorf("serialize report document: %w", err)
	}
	return data, nil
}
