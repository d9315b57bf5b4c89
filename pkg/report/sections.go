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

// Package report turns the research agent's free-text answer into a
// formatted document. The agent is asked to label each section of its
// answer with one of six fixed names; this package owns that section
// vocabulary so the prompt and the formatter cannot drift apart.
package report

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Section is one named part of the report, with the heading level its
// label maps to in the document.
type Section struct {
	Name  string
	Level int
}

// Sections lists the six report sections in the order the agent must
// produce them. The heading levels are uneven and kept as-is.
var Sections = []Section{
	{Name: "Introduction", Level: 3},
	{Name: "Background", Level: 2},
	{Name: "Current Trends", Level: 4},
	{Name: "Key Data/Stats", Level: 1},
	{Name: "Opportunities/Risks", Level: 1},
	{Name: "Conclusion", Level: 1},
}

// SectionNames returns the section names in order.
func SectionNames() []string {
	names := make([]string, 0, len(Sections))
	for _, s := range Sections {
		names = append(names, s.Name)
	}
	return names
}

// labelLevels maps "Name:" line prefixes to heading levels. It is
// scanned in insertion order and the first matching prefix wins.
var labelLevels = newLabelTable()

func newLabelTable() *orderedmap.OrderedMap[string, int] {
	pairs := make([]orderedmap.Pair[string, int], 0, len(Sections))
	for _, s := range Sections {
		pairs = append(pairs, orderedmap.Pair[string, int]{Key: s.Name + ":", Value: s.Level})
	}
	return orderedmap.New[string, int](
		orderedmap.WithInitialData[string, int](pairs...),
	)
}
