// Package render groups the alternative renderers of the package tree.
//
// The PlantUML writer lives in [github.com/matzehuels/dotuml/pkg/puml]. The
// [nodelink] subpackage renders the same clusters with Graphviz so a diagram
// can be previewed without PlantUML:
//
//	dot := nodelink.ToDOT(root, edges, puml.Options{})
//	svg, err := nodelink.RenderSVG(dot)
package render
