package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotuml/pkg/dot"
	"github.com/matzehuels/dotuml/pkg/pkgtree"
	"github.com/matzehuels/dotuml/pkg/puml"
)

// darkLightness is the lightness below which cluster titles switch to white.
const darkLightness = 50

// ToDOT converts a package tree and its edges to Graphviz DOT source.
// The synthetic root is not drawn; its sub-packages become top-level clusters.
func ToDOT(root *pkgtree.Package, edges []dot.Edge, opts puml.Options) string {
	opts = opts.WithDefaults()
	s := opts.Style

	var buf bytes.Buffer
	buf.WriteString("digraph \"classes\" {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=record, style=filled, fillcolor=%s, color=%s, fontname=%s, fontsize=%d];\n",
		quote(colorName(s.ClassBackground)), quote(colorName(s.BorderColor)), quote(s.FontName), s.FontSize)
	fmt.Fprintf(&buf, "  edge [color=%s, fontname=%s, fontsize=%d];\n",
		quote(colorName(s.ArrowColor)), quote(s.FontName), s.FontSize)
	buf.WriteString("\n")

	for _, p := range root.Children() {
		writeCluster(&buf, p, p.Name, 1, opts)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %s -> %s [label=%s];\n", quote(e.From), quote(e.To), quote(e.Label))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, p *pkgtree.Package, path string, level int, opts puml.Options) {
	indent := strings.Repeat("  ", level)
	fontColor := "black"
	if opts.Palette.Lightness(p.Depth) < darkLightness {
		fontColor = "white"
	}

	fmt.Fprintf(buf, "%ssubgraph %s {\n", indent, quote("cluster_"+path))
	fmt.Fprintf(buf, "%s  label=%s;\n", indent, quote(p.Name))
	fmt.Fprintf(buf, "%s  style=filled;\n", indent)
	fmt.Fprintf(buf, "%s  fillcolor=%s;\n", indent, quote(opts.Palette.Color(p.Depth)))
	fmt.Fprintf(buf, "%s  color=%s;\n", indent, quote(colorName(opts.Style.PackageBorder)))
	fmt.Fprintf(buf, "%s  fontcolor=%s;\n", indent, quote(fontColor))

	for _, child := range p.Children() {
		writeCluster(buf, child, path+"."+child.Name, level+1, opts)
	}
	for _, e := range p.Classes() {
		fmt.Fprintf(buf, "%s  %s [label=%s];\n", indent, quote(e.ID), quote(recordLabel(e.Class)))
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

// recordLabel builds a three-field record: name, attributes, methods.
// Member lines are left-justified with "\l".
func recordLabel(c dot.Class) string {
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(escapeRecord(c.Name))
	for _, members := range [][]string{c.Attributes, c.Methods} {
		b.WriteString("|")
		for _, m := range members {
			b.WriteString(escapeRecord(m))
			b.WriteString(`\l`)
		}
	}
	b.WriteString("}")
	return b.String()
}

var recordSpecial = strings.NewReplacer(
	`\`, `\\`,
	`{`, `\{`,
	`}`, `\}`,
	`|`, `\|`,
	`<`, `\<`,
	`>`, `\>`,
)

func escapeRecord(s string) string {
	return recordSpecial.Replace(s)
}

// quote returns s as a DOT string literal. Only double quotes are escaped;
// backslash sequences such as "\l" must reach Graphviz unchanged.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// colorName lowercases X11 color names; hex colors pass through unchanged.
func colorName(c string) string {
	if strings.HasPrefix(c, "#") {
		return c
	}
	return strings.ToLower(c)
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height match the viewBox, so the preview scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
