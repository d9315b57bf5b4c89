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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwego/eino-examples/quickstart/eino_reporter/pkg/docx"
)

func pinNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestBuildLabeledAnswer(t *testing.T) {
	pinNow(t, time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC))

	answer := "Introduction: Goa is India's smallest state.\n" +
		"Background: A Portuguese territory until 1961.\n" +
		"\n" +
		"Current Trends: Tourism keeps growing.\n" +
		"Key Data/Stats:\n" +
		"Opportunities/Risks: Coastal erosion is a concern.\n" +
		"Conclusion: Worth watching.\n"

	blocks := Build("Research Report: Goa", answer).Blocks()

	want := []docx.Block{
		{Style: "Title", Text: "Research Report: Goa"},
		{Style: "Heading3", Text: "Introduction"},
		{Text: "Goa is India's smallest state."},
		{Style: "Heading2", Text: "Background"},
		{Text: "A Portuguese territory until 1961."},
		{Style: "Heading4", Text: "Current Trends"},
		{Text: "Tourism keeps growing."},
		{Style: "Heading1", Text: "Key Data/Stats"},
		{Text: ""},
		{Style: "Heading1", Text: "Opportunities/Risks"},
		{Text: "Coastal erosion is a concern."},
		{Style: "Heading1", Text: "Conclusion"},
		{Text: "Worth watching."},
		{Text: ""},
		{Text: "Generated with Eino · 2025-03-14"},
	}
	assert.Equal(t, want, blocks)
}

func TestBuildPlainLines(t *testing.T) {
	pinNow(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	blocks := Build("Research Report: Kerala", "GDP grew 7% this year.").Blocks()

	want := []docx.Block{
		{Style: "Title", Text: "Research Report: Kerala"},
		{Text: "GDP grew 7% this year."},
		{Text: ""},
		{Text: "Generated with Eino · 2025-03-14"},
	}
	assert.Equal(t, want, blocks)
}

func TestBuildSkipsBlankLines(t *testing.T) {
	pinNow(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	blocks := Build("Research Report: Assam", "\n   \n\t\n").Blocks()

	// Only the title, the separator and the generation note remain.
	require.Len(t, blocks, 3)
	assert.Equal(t, "Title", blocks[0].Style)
	assert.Equal(t, docx.Block{Text: ""}, blocks[1])
	assert.Equal(t, docx.Block{Text: "Generated with Eino · 2025-03-14"}, blocks[2])
}

func TestBuildLabelMustStartLine(t *testing.T) {
	pinNow(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	blocks := Build("Research Report: Bihar", "The Background: is mostly rural.").Blocks()

	require.Len(t, blocks, 4)
	assert.Equal(t, docx.Block{Text: "The Background: is mostly rural."}, blocks[1])
}

func TestBuildTrimsIndentedLabels(t *testing.T) {
	pinNow(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	blocks := Build("Research Report: Punjab", "   Conclusion:   All good.  ").Blocks()

	require.Len(t, blocks, 5)
	assert.Equal(t, docx.Block{Style: "Heading1", Text: "Conclusion"}, blocks[1])
	assert.Equal(t, docx.Block{Text: "All good."}, blocks[2])
}

func TestFormatProducesDocx(t *testing.T) {
	data, err := Format(Title("Goa"), "Introduction: Small but busy.")
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "PK", string(data[:2]))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Research Report: Kerala", Title("Kerala"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Kerala_report.docx", FileName("Kerala"))
	assert.Equal(t, "Jammu and Kashmir_report.docx", FileName("Jammu and Kashmir"))
}

func TestSectionNames(t *testing.T) {
	assert.Equal(t, []string{
		"Introduction",
		"Background",
		"Current Trends",
		"Key Data/Stats",
		"Opportunities/Risks",
		"Conclusion",
	}, SectionNames())
}

func TestSectionLevels(t *testing.T) {
	levels := make(map[string]int, len(Sections))
	for _, s := range Sections {
		levels[s.Name] = s.Level
	}
	assert.Equal(t, map[string]int{
		"Introduction":        3,
		"Background":          2,
		"Current Trends":      4,
		"Key Data/Stats":      1,
		"Opportunities/Risks": 1,
		"Conclusion":          1,
	}, levels)
}
