package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Static package parts. The document carries three paragraph styles mirroring
// the exported exam's formatting: Heading1, tableHeader and options.
const (
	contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
		`</Types>`

	rootRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`

	documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
		`</Relationships>`

	stylesXML = xml.Header + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/>` +
		`<w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman"/><w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr></w:style>` +
		`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/>` +
		`<w:pPr><w:spacing w:before="240" w:after="240"/></w:pPr>` +
		`<w:rPr><w:b/><w:sz w:val="32"/><w:szCs w:val="32"/></w:rPr></w:style>` +
		`<w:style w:type="paragraph" w:styleId="tableHeader"><w:name w:val="Table Header"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/>` +
		`<w:rPr><w:b/></w:rPr></w:style>` +
		`<w:style w:type="paragraph" w:styleId="options"><w:name w:val="Exam Options"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/>` +
		`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:style>` +
		`</w:styles>`
)

// Encode serializes the document tree into a .docx package. The binary is
// assembled fully in memory and only returned once every part has been
// written, so a failed encode leaves nothing behind.
func Encode(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("encode docx: nil document")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", documentXML(doc)},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.body)); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close docx package: %w", err)
	}
	return buf.Bytes(), nil
}

func documentXML(doc *Document) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case Heading:
			writeHeading(&sb, blk)
		case Paragraph:
			writeParagraph(&sb, blk)
		case Table:
			writeTable(&sb, blk)
		}
	}
	// A4 with one-inch margins.
	sb.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>` +
		`</w:sectPr>`)
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func writeHeading(sb *strings.Builder, h Heading) {
	sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="Heading1"/>`)
	if h.PageBreakBefore {
		sb.WriteString(`<w:pageBreakBefore/>`)
	}
	sb.WriteString(`<w:jc w:val="center"/></w:pPr>`)
	writeRun(sb, Run{Text: h.Text})
	sb.WriteString(`</w:p>`)
}

func writeParagraph(sb *strings.Builder, p Paragraph) {
	sb.WriteString(`<w:p>`)
	if p.Style != "" {
		sb.WriteString(`<w:pPr><w:pStyle w:val="` + esc(p.Style) + `"/></w:pPr>`)
	}
	for _, r := range p.Runs {
		writeRun(sb, r)
	}
	sb.WriteString(`</w:p>`)
}

func writeRun(sb *strings.Builder, r Run) {
	sb.WriteString(`<w:r>`)
	if r.Bold || r.Italic {
		sb.WriteString(`<w:rPr>`)
		if r.Bold {
			sb.WriteString(`<w:b/>`)
		}
		if r.Italic {
			sb.WriteString(`<w:i/>`)
		}
		sb.WriteString(`</w:rPr>`)
	}
	sb.WriteString(`<w:t xml:space="preserve">` + esc(r.Text) + `</w:t></w:r>`)
}

const tableProps = `<w:tblPr><w:tblW w:w="5000" w:type="pct"/><w:tblBorders>` +
	`<w:top w:val="single" w:sz="4" w:color="D3D3D3"/>` +
	`<w:left w:val="single" w:sz="4" w:color="D3D3D3"/>` +
	`<w:bottom w:val="single" w:sz="4" w:color="D3D3D3"/>` +
	`<w:right w:val="single" w:sz="4" w:color="D3D3D3"/>` +
	`<w:insideH w:val="single" w:sz="4" w:color="D3D3D3"/>` +
	`<w:insideV w:val="single" w:sz="4" w:color="D3D3D3"/>` +
	`</w:tblBorders></w:tblPr>`

// vSpan tracks a rowspan continuation: how many more rows the merge covers
// and how many grid columns wide it is.
type vSpan struct {
	remaining int
	width     int
}

// writeTable emits the row grid. Colspan maps to gridSpan. Rowspan maps to a
// vMerge restart on the source cell plus synthesized continuation cells in
// the rows below, placed by grid-column occupancy.
func writeTable(sb *strings.Builder, t Table) {
	sb.WriteString(`<w:tbl>` + tableProps)
	pending := map[int]vSpan{}
	for _, row := range t.Rows {
		sb.WriteString(`<w:tr>`)
		col := 0
		next := 0
		for next < len(row.Cells) || hasPending(pending, col) {
			if p, ok := pending[col]; ok {
				writeCell(sb, Cell{ColSpan: p.width}, mergeContinue)
				p.remaining--
				if p.remaining == 0 {
					delete(pending, col)
				} else {
					pending[col] = p
				}
				col += p.width
				continue
			}
			c := row.Cells[next]
			next++
			width := max(c.ColSpan, 1)
			merge := mergeNone
			if max(c.RowSpan, 1) > 1 {
				merge = mergeRestart
				pending[col] = vSpan{remaining: c.RowSpan - 1, width: width}
			}
			c.ColSpan = width
			writeCell(sb, c, merge)
			col += width
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
}

func hasPending(pending map[int]vSpan, col int) bool {
	_, ok := pending[col]
	return ok
}

type mergeState int

const (
	mergeNone mergeState = iota
	mergeRestart
	mergeContinue
)

func writeCell(sb *strings.Builder, c Cell, merge mergeState) {
	sb.WriteString(`<w:tc><w:tcPr>`)
	if c.ColSpan > 1 {
		sb.WriteString(fmt.Sprintf(`<w:gridSpan w:val="%d"/>`, c.ColSpan))
	}
	switch merge {
	case mergeRestart:
		sb.WriteString(`<w:vMerge w:val="restart"/>`)
	case mergeContinue:
		sb.WriteString(`<w:vMerge/>`)
	}
	sb.WriteString(`</w:tcPr>`)
	if merge == mergeContinue {
		sb.WriteString(`<w:p/>`)
	} else {
		style := ""
		if c.Header {
			style = "tableHeader"
		}
		writeParagraph(sb, Paragraph{Style: style, Runs: []Run{{Text: c.Text}}})
	}
	sb.WriteString(`</w:tc>`)
}

func esc(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
