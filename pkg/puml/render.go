package puml

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/dotuml/pkg/dot"
	"github.com/matzehuels/dotuml/pkg/pkgtree"
)

const indentUnit = "  "

// Render returns the PlantUML document for root and edges. Only the root's
// sub-packages are written as blocks; edges follow in the given order.
func Render(root *pkgtree.Package, edges []dot.Edge, opts Options) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes cannot fail.
	_ = Write(&buf, root, edges, opts)
	return buf.Bytes()
}

// Write renders like [Render] but streams to w, returning the first write
// error.
func Write(w io.Writer, root *pkgtree.Package, edges []dot.Edge, opts Options) error {
	opts = opts.WithDefaults()
	ew := &errWriter{w: w}

	writePreamble(ew, opts.Style)
	for _, p := range root.Children() {
		writePackage(ew, p, 0, opts)
	}
	for _, e := range edges {
		ew.printf("%s --> %s : %s\n", Alias(e.From), Alias(e.To), e.Label)
	}
	ew.printf("@enduml\n")
	return ew.err
}

func writePreamble(w *errWriter, s Style) {
	w.printf("@startuml\n")
	w.printf("skinparam classAttributeIconSize 0\n")
	w.printf("left to right direction\n")
	w.printf("skinparam shadowing true\n")
	w.printf("skinparam packageStyle rect\n")
	w.printf("skinparam class {\n")
	w.printf("  BackgroundColor %s\n", s.ClassBackground)
	w.printf("  ArrowColor %s\n", s.ArrowColor)
	w.printf("  BorderColor %s\n", s.BorderColor)
	w.printf("  FontName %s\n", s.FontName)
	w.printf("  FontSize %d\n", s.FontSize)
	w.printf("}\n")
	w.printf("skinparam package {\n")
	w.printf("  BackgroundColor %s\n", s.PackageBackground)
	w.printf("  FontName %s\n", s.FontName)
	w.printf("}\n")
	w.printf("skinparam arrow {\n")
	w.printf("  Color %s\n", s.ArrowColor)
	w.printf("}\n")
	w.printf("set namespaceSeparator none\n")
}

func writePackage(w *errWriter, p *pkgtree.Package, level int, opts Options) {
	indent := strings.Repeat(indentUnit, level)
	w.printf("%spackage \"%s\" {\n", indent, p.Name)
	w.printf("%s  skinparam packageBackgroundColor %s\n", indent, opts.Palette.Color(p.Depth))
	w.printf("%s  skinparam packageBorderColor %s\n", indent, opts.Style.PackageBorder)

	for _, child := range p.Children() {
		writePackage(w, child, level+1, opts)
	}
	for _, e := range p.Classes() {
		w.printf("%s  class \"%s\" as %s {\n", indent, e.Class.Name, Alias(e.ID))
		for _, a := range e.Class.Attributes {
			w.printf("%s    %s\n", indent, a)
		}
		for _, m := range e.Class.Methods {
			w.printf("%s    %s\n", indent, m)
		}
		w.printf("%s  }\n", indent)
	}
	w.printf("%s}\n", indent)
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
