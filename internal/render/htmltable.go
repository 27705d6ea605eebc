package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/minhdangit/detinai/internal/docx"
)

// parseTableGrid extracts the first <table> of the provider-supplied HTML
// into a row/cell grid. Cell text is the concatenated text content; colspan
// and rowspan are carried numerically, defaulting to 1 when absent or not a
// number. A document without a table, or a table without rows, yields nil.
func parseTableGrid(src string) *docx.Table {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil
	}
	tableNode := findElement(root, atom.Table)
	if tableNode == nil {
		return nil
	}

	var rows []docx.Row
	walkElements(tableNode, atom.Tr, func(tr *html.Node) {
		var cells []docx.Cell
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
				continue
			}
			cells = append(cells, docx.Cell{
				Text:    strings.TrimSpace(textContent(c)),
				Header:  c.DataAtom == atom.Th,
				ColSpan: spanAttr(c, "colspan"),
				RowSpan: spanAttr(c, "rowspan"),
			})
		}
		if len(cells) > 0 {
			rows = append(rows, docx.Row{Cells: cells})
		}
	})
	if len(rows) == 0 {
		return nil
	}
	return &docx.Table{Rows: rows}
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func walkElements(n *html.Node, a atom.Atom, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			fn(c)
			continue
		}
		walkElements(c, a, fn)
	}
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func spanAttr(n *html.Node, name string) int {
	for _, a := range n.Attr {
		if a.Key != name {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSpace(a.Val)); err == nil && v > 0 {
			return v
		}
		return 1
	}
	return 1
}
