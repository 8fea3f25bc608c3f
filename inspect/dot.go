package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/twounordered"
)

var dotFill = map[twounordered.Region]string{
	twounordered.First:  "lightblue",
	twounordered.Second: "lightsalmon",
}

// Dot outputs the layout of a container in Graphviz DOT format. Every region
// is drawn as a record node listing its elements in storage order.
func Dot[E any](v *twounordered.Vecs[E], w io.Writer) error {
	fields := map[twounordered.Region][]string{}
	for r, x := range v.All() {
		fields[r] = append(fields[r], recordEscape(fmt.Sprint(x)))
	}
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [shape=record,fontname=Arial,fontsize=12,style=filled];\n")
	for _, r := range []twounordered.Region{twounordered.First, twounordered.Second} {
		label := r.String()
		if len(fields[r]) > 0 {
			label += "|" + strings.Join(fields[r], "|")
		}
		fmt.Fprintf(&b, "\t%q [label=\"%s\" fillcolor=%s];\n", r.String(), label, dotFill[r])
	}
	fmt.Fprintf(&b, "\t%q -> %q [label=\"boundary %d\"];\n",
		twounordered.First.String(), twounordered.Second.String(), len(fields[twounordered.First]))
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// recordEscape escapes characters with special meaning in record labels.
func recordEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '{', '}', '|', '<', '>', '"', '\\', ' ':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
