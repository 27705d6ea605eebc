// Package docx holds a backend-agnostic document tree (headings, paragraphs
// with styled runs, tables) and an encoder that packages it as a
// WordprocessingML (.docx) binary.
package docx

// Document is an ordered sequence of block nodes.
type Document struct {
	Blocks []Block
}

// Block is a top-level document node: Heading, Paragraph or Table.
type Block interface {
	isBlock()
}

// Heading is a centered level-1 heading. PageBreakBefore starts a new page
// ahead of it.
type Heading struct {
	Text            string
	PageBreakBefore bool
}

// Paragraph is a run sequence with an optional named paragraph style.
type Paragraph struct {
	Style string
	Runs  []Run
}

// Run is a text span with character formatting.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Table is a grid of rows. Cell spans are expressed on the cells themselves.
type Table struct {
	Rows []Row
}

// Row is one table row.
type Row struct {
	Cells []Cell
}

// Cell is one table cell. ColSpan and RowSpan default to 1 when < 1.
// Header cells render with the bold table-header style.
type Cell struct {
	Text    string
	Header  bool
	ColSpan int
	RowSpan int
}

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (Table) isBlock()     {}

// Text is shorthand for a plain unstyled paragraph.
func Text(s string) Paragraph {
	return Paragraph{Runs: []Run{{Text: s}}}
}
