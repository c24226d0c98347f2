// Package nodelink renders the package tree as a Graphviz diagram.
//
// # Overview
//
// The PlantUML output of dotuml needs a PlantUML installation to look at.
// This package draws the same grouping with Graphviz, in process, so the
// inferred packages can be checked right away: every package becomes a
// filled cluster in its depth color and every class a record node listing
// its members.
//
// # Usage
//
//	dot := nodelink.ToDOT(root, doc.Edges, puml.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
