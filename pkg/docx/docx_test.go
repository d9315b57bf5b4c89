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

package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parsedDocument mirrors the document part for assertions. Unqualified
// tag names match the "w:" elements on their local names.
type parsedDocument struct {
	Body struct {
		Paragraphs []parsedParagraph `xml:"p"`
	} `xml:"body"`
}

type parsedParagraph struct {
	Props *struct {
		Style struct {
			Val string `xml:"val,attr"`
		} `xml:"pStyle"`
	} `xml:"pPr"`
	Runs []struct {
		Text string `xml:"t"`
	} `xml:"r"`
}

func (p parsedParagraph) style() string {
	if p.Props == nil {
		return ""
	}
	return p.Props.Style.Val
}

func (p parsedParagraph) text() string {
	var out string
	for _, r := range p.Runs {
		out += r.Text
	}
	return out
}

func parseDocumentPart(t *testing.T, data []byte) parsedDocument {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var doc parsedDocument
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		require.NoError(t, xml.Unmarshal(raw, &doc))
		return doc
	}
	t.Fatal("word/document.xml missing from package")
	return doc
}

func TestWritePackageParts(t *testing.T) {
	doc := New()
	doc.AddHeading("Hello", 0)

	data, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
	} {
		assert.True(t, names[want], "missing package part %s", want)
	}
}

func TestDocumentBlocks(t *testing.T) {
	doc := New()
	doc.AddHeading("Research Report: Goa", 0)
	doc.AddHeading("Background", 2)
	doc.AddParagraph("Goa joined India in 1961.")
	doc.AddParagraph("")

	data, err := doc.Bytes()
	require.NoError(t, err)

	parsed := parseDocumentPart(t, data)
	require.Len(t, parsed.Body.Paragraphs, 4)

	assert.Equal(t, "Title", parsed.Body.Paragraphs[0].style())
	assert.Equal(t, "Research Report: Goa", parsed.Body.Paragraphs[0].text())

	assert.Equal(t, "Heading2", parsed.Body.Paragraphs[1].style())
	assert.Equal(t, "Background", parsed.Body.Paragraphs[1].text())

	assert.Equal(t, "", parsed.Body.Paragraphs[2].style())
	assert.Equal(t, "Goa joined India in 1961.", parsed.Body.Paragraphs[2].text())

	// Blank paragraphs carry no runs at all.
	assert.Empty(t, parsed.Body.Paragraphs[3].Runs)
}

func TestAddHeadingLevels(t *testing.T) {
	doc := New()
	doc.AddHeading("title", 0)
	doc.AddHeading("negative", -1)
	doc.AddHeading("one", 1)
	doc.AddHeading("four", 4)
	doc.AddHeading("deep", 9)

	blocks := doc.Blocks()
	require.Len(t, blocks, 5)
	assert.Equal(t, "Title", blocks[0].Style)
	assert.Equal(t, "Title", blocks[1].Style)
	assert.Equal(t, "Heading1", blocks[2].Style)
	assert.Equal(t, "Heading4", blocks[3].Style)
	assert.Equal(t, "Heading4", blocks[4].Style)
}

func TestTextEscaping(t *testing.T) {
	const tricky = `GDP <up> 7% & "stable", they said`

	doc := New()
	doc.AddParagraph(tricky)

	data, err := doc.Bytes()
	require.NoError(t, err)

	parsed := parseDocumentPart(t, data)
	require.Len(t, parsed.Body.Paragraphs, 1)
	assert.Equal(t, tricky, parsed.Body.Paragraphs[0].text())
}

func TestBlocksReturnsCopy(t *testing.T) {
	doc := New()
	doc.AddParagraph("original")

	blocks := doc.Blocks()
	blocks[0].Text = "mutated"

	assert.Equal(t, "original", doc.Blocks()[0].Text)
}
