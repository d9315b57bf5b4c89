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

// Package docx builds minimal WordprocessingML (.docx) files out of an
// ordered sequence of heading and paragraph blocks. It covers exactly
// what a generated report needs: a title, headings at levels 1-4 and
// plain paragraphs. The produced package contains the document part,
// a styles part and the two relationship parts, which is sufficient
// for Word and LibreOffice to open it.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// MediaType is the MIME type of the produced artifact.
const MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Block is one formatting unit of the document body.
type Block struct {
	// Style is the paragraph style id: "" for body text, "Title" or
	// "Heading1".."Heading4".
	Style string
	// Text is the block content, empty for blank paragraphs.
	Text string
}

// Document accumulates blocks in insertion order.
type Document struct {
	blocks []Block
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// AddHeading appends a heading block. Level 0 (or below) uses the Title
// style, levels 1 to 4 map to the Heading1..Heading4 styles, anything
// deeper is clamped to Heading4.
func (d *Document) AddHeading(text string, level int) {
	style := "Title"
	if level > 0 {
		if level > 4 {
			level = 4
		}
		style = fmt.Sprintf("Heading%d", level)
	}
	d.blocks = append(d.blocks, Block{Style: style, Text: text})
}

// AddParagraph appends a body-text block. Empty text produces an empty
// paragraph.
func (d *Document) AddParagraph(text string) {
	d.blocks = append(d.blocks, Block{Text: text})
}

// Blocks returns a copy of the accumulated blocks in order.
func (d *Document) Blocks() []Block {
	out := make([]Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Bytes serializes the document into an in-memory .docx package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes the document as a zip package to w.
func (d *Document) Write(w io.Writer) error {
	body, err := d.documentXML()
	if err != nil {
		return fmt.Errorf("marshal document part: %w", err)
	}

	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/document.xml", body},
		{"word/styles.xml", []byte(stylesXML)},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create zip entry %s: %w", part.name, err)
		}
		if _, err = pw.Write(part.content); err != nil {
			return fmt.Errorf("write zip entry %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip: %w", err)
	}
	return nil
}

const wordprocessingmlNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NS      string   `xml:"xmlns:w,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"w:p"`
	SectPr     xmlSectPr      `xml:"w:sectPr"`
}

type xmlParagraph struct {
	Props *xmlParaProps `xml:"w:pPr,omitempty"`
	Runs  []xmlRun      `xml:"w:r"`
}

type xmlParaProps struct {
	Style xmlVal `xml:"w:pStyle"`
}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlRun struct {
	Text xmlText `xml:"w:t"`
}

type xmlText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

type xmlSectPr struct {
	PageSize   xmlPageSize   `xml:"w:pgSz"`
	PageMargin xmlPageMargin `xml:"w:pgMar"`
}

type xmlPageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xmlPageMargin struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
}

func (d *Document) documentXML() ([]byte, error) {
	doc := xmlDocument{
		NS: wordprocessingmlNS,
		Body: xmlBody{
			// A4 with one-inch margins, sizes in twentieths of a point.
			SectPr: xmlSectPr{
				PageSize:   xmlPageSize{W: 11906, H: 16838},
				PageMargin: xmlPageMargin{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440},
			},
		},
	}
	for _, b := range d.blocks {
		p := xmlParagraph{}
		if b.Style != "" {
			p.Props = &xmlParaProps{Style: xmlVal{Val: b.Style}}
		}
		if b.Text != "" {
			p.Runs = []xmlRun{{Text: xmlText{Space: "preserve", Value: b.Text}}}
		}
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, p)
	}

	raw, err := xml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), raw...), nil
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const stylesXML = xml.Header + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="22"/></w:rPr></w:rPrDefault></w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:after="240"/></w:pPr><w:rPr><w:b/><w:sz w:val="56"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="1"/></w:pPr><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="2"/></w:pPr><w:rPr><w:b/><w:sz w:val="26"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading4"><w:name w:val="heading 4"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="3"/></w:pPr><w:rPr><w:b/><w:i/><w:sz w:val="24"/></w:rPr></w:style>
</w:styles>`
