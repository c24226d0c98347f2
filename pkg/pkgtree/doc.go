// Package pkgtree groups classes into a package hierarchy inferred from their
// dotted identifiers.
//
// # Overview
//
// The tree is a prefix tree over dot-separated names. A class with ID
// "shop.models.Order" belongs to package "models" inside package "shop"; the
// last component is the class itself. A class whose ID has no dot is placed in
// the fallback package (see [DefaultFallback]), never directly under the root.
//
//	root := pkgtree.Build(doc.Classes, pkgtree.DefaultFallback)
//	for _, p := range root.Children() {
//	    fmt.Println(p.Name, p.Depth)
//	}
//
// # Depth
//
// The root is synthetic, is named "Root", sits at depth 0 and is never
// rendered. Every package sits exactly one level below its parent, so
// top-level packages have depth 1. Depth drives package colors in the
// renderer.
//
// # Ordering
//
// Children are kept in first-insertion order and classes in insertion order,
// so walking the same input always produces the same sequence.
package pkgtree
