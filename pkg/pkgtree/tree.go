package pkgtree

import (
	"strings"

	"github.com/matzehuels/dotuml/pkg/dot"
)

const (
	// RootName is the name of the synthetic root package.
	RootName = "Root"

	// DefaultFallback is the package for classes whose ID has no dot.
	DefaultFallback = "Global"

	separator = "."
)

// Entry is a class owned by a package, keyed by its node ID.
type Entry struct {
	ID    string
	Class dot.Class
}

// Package is one node of the package hierarchy.
type Package struct {
	Name  string
	Depth int

	root     bool
	order    []string
	children map[string]*Package
	classes  []Entry
}

// NewRoot returns an empty synthetic root package.
func NewRoot() *Package {
	return &Package{Name: RootName, root: true, children: make(map[string]*Package)}
}

// IsRoot reports whether p is the synthetic root.
func (p *Package) IsRoot() bool { return p.root }

// Children returns the direct sub-packages in first-insertion order.
func (p *Package) Children() []*Package {
	out := make([]*Package, len(p.order))
	for i, name := range p.order {
		out[i] = p.children[name]
	}
	return out
}

// Child returns the direct sub-package with the given name.
func (p *Package) Child(name string) (*Package, bool) {
	c, ok := p.children[name]
	return c, ok
}

// Classes returns the classes owned directly by p in insertion order.
func (p *Package) Classes() []Entry { return p.classes }

// Insert places e in the package at the dotted path below p, creating missing
// packages on the way. An empty path appends e to p itself and empty
// components (".x", "a..b") are skipped. Repeated IDs are not merged.
func (p *Package) Insert(path string, e Entry) {
	if path == "" {
		p.classes = append(p.classes, e)
		return
	}
	first, rest, _ := strings.Cut(path, separator)
	if first == "" {
		p.Insert(rest, e)
		return
	}
	child, ok := p.children[first]
	if !ok {
		child = p.newChild(first)
	}
	child.Insert(rest, e)
}

func (p *Package) newChild(name string) *Package {
	child := &Package{Name: name, Depth: p.Depth + 1, children: make(map[string]*Package)}
	p.children[name] = child
	p.order = append(p.order, name)
	return child
}

// PackagePath returns the package part of a class ID: every dotted component
// except the last. IDs without a dot, or whose package part is only dots,
// map to fallback.
func PackagePath(id, fallback string) string {
	i := strings.LastIndex(id, separator)
	if i < 0 || strings.Trim(id[:i], separator) == "" {
		return fallback
	}
	return id[:i]
}

// Build creates a root package and inserts every class under its package
// path. An empty fallback selects [DefaultFallback].
func Build(classes []dot.Class, fallback string) *Package {
	if fallback == "" {
		fallback = DefaultFallback
	}
	root := NewRoot()
	for _, c := range classes {
		root.Insert(PackagePath(c.ID, fallback), Entry{ID: c.ID, Class: c})
	}
	return root
}

// Walk calls fn for p and every package below it, depth-first pre-order.
// Returning false from fn skips the package's descendants.
func Walk(p *Package, fn func(*Package) bool) {
	if !fn(p) {
		return
	}
	for _, c := range p.Children() {
		Walk(c, fn)
	}
}

// Stats summarizes a package tree.
type Stats struct {
	Packages int // rendered packages, excluding the root
	Classes  int
	MaxDepth int
}

// Summarize counts the packages and classes below root.
func Summarize(root *Package) Stats {
	var s Stats
	Walk(root, func(p *Package) bool {
		s.Classes += len(p.classes)
		if !p.root {
			s.Packages++
			s.MaxDepth = max(s.MaxDepth, p.Depth)
		}
		return true
	})
	return s
}
