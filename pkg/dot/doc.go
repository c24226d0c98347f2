// Package dot extracts class diagrams from Graphviz DOT text.
//
// # Overview
//
// Class-diagram generators such as pyreverse describe each class as a DOT node
// with an HTML-like record label, and each relationship as a labeled edge:
//
//	"shop.models.Order" [label=<{Order|id: int<br ALIGN="LEFT"/>|total(): 'Decimal'<br ALIGN="LEFT"/>}>, shape="record"];
//	"shop.models.Order" -> "shop.models.Customer" [label="customer", arrowhead="diamond"];
//
// This package recognizes exactly those two statement shapes anywhere in the
// text. It is not a DOT parser: block structure is not validated and anything
// that does not match is skipped without a diagnostic.
//
// # Extraction
//
// [Extract] strips comments, then returns a [Document] holding the classes in
// order of first appearance and the edges in input order:
//
//	doc := dot.Extract(text)
//	for _, c := range doc.Classes {
//	    fmt.Println(c.ID, c.Name, len(c.Attributes), len(c.Methods))
//	}
//
// [ParseLabel] is the label micro-parser on its own. It has no state and can be
// used on any record label body.
//
// # Reading Files
//
// [ReadFile] loads the input and decodes it to UTF-8. A leading byte order
// mark selects UTF-8 or UTF-16; input without one must be valid UTF-8.
package dot
