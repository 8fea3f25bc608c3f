package inspect

import (
	"fmt"
	"io"

	"github.com/npillmayer/twounordered"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML outputs a container as an HTML table with a single row. Every element
// is a cell with class "first" or "second", depending on its region.
func HTML[E any](v *twounordered.Vecs[E], w io.Writer) error {
	table := element(atom.Table, html.Attribute{Key: "class", Val: "twounordered"})
	row := element(atom.Tr)
	table.AppendChild(row)
	for r, x := range v.All() {
		cell := element(atom.Td, html.Attribute{Key: "class", Val: r.String()})
		cell.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(x)})
		row.AppendChild(cell)
	}
	if err := html.Render(w, table); err != nil {
		tracer().Errorf("rendering container as HTML: %v", err)
		return fmt.Errorf("inspect: %w", err)
	}
	return nil
}

func element(a atom.Atom, attr ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attr,
	}
}
