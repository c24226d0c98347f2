// Package pkg provides the libraries behind the dotuml converter.
//
// # Overview
//
// dotuml turns Graphviz class diagrams into PlantUML class diagrams whose
// classes are grouped into nested packages taken from their dotted names.
//
// # Architecture
//
// The data flow through dotuml:
//
//	DOT file
//	    ↓
//	[dot] package (read, strip comments, extract classes and edges)
//	    ↓
//	[pkgtree] package (group classes into the package hierarchy)
//	    ↓
//	[puml] package (colorize by depth and write PlantUML)
//
// [pipeline] runs these stages as one unit and [config] supplies the style.
// The render/nodelink package draws the same hierarchy with Graphviz for a quick preview.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(config.Default(), nil)
//	if _, err := runner.ConvertFile("classes.dot", "classes.puml"); err != nil {
//	    log.Fatal(err)
//	}
package pkg
