package playground

import (
	"fmt"
	"strings"
)

// RenderCSS writes the projection as a stylesheet: a .container rule and one
// .item-N rule per slot, N being the 1-based item label.
func RenderCSS(p Projection) string {
	var b strings.Builder
	writeRule(&b, ".container", p.Container.Declarations())
	for _, item := range p.Items {
		b.WriteString("\n")
		writeRule(&b, fmt.Sprintf(".item-%d", item.Index+1), item.Declarations())
	}
	return b.String()
}

func writeRule(b *strings.Builder, selector string, decls []Declaration) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range decls {
		fmt.Fprintf(b, "  %s: %s;\n", d.Property, d.Value)
	}
	b.WriteString("}\n")
}
