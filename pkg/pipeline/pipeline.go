// Package pipeline runs the complete dotuml conversion.
//
// # Architecture
//
// The pipeline consists of three stages run in sequence on one input:
//
//  1. Extract: read the DOT file and pull out classes and edges ([dot])
//  2. Build: group classes into the package tree ([pkgtree])
//  3. Render: write the PlantUML document ([puml])
//
// Nothing is written until all stages have succeeded, so an unreadable input
// never leaves an output file behind.
//
// # Usage
//
//	runner := pipeline.NewRunner(config.Default(), logger)
//	result, err := runner.ConvertFile("classes.dot", "classes.puml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Classes, "classes")
package pipeline

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotuml/pkg/config"
	"github.com/matzehuels/dotuml/pkg/dot"
	apperr "github.com/matzehuels/dotuml/pkg/errors"
	"github.com/matzehuels/dotuml/pkg/observability"
	"github.com/matzehuels/dotuml/pkg/pkgtree"
	"github.com/matzehuels/dotuml/pkg/puml"
)

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the extracted input.
	Document *dot.Document

	// Tree is the root of the package hierarchy.
	Tree *pkgtree.Package

	// Output is the rendered PlantUML text. Empty after [Runner.Load].
	Output []byte

	// Collisions lists distinct class IDs that share an alias.
	Collisions []puml.Collision

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Classes     int
	Edges       int
	Packages    int
	MaxDepth    int
	ExtractTime time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// Runner executes the pipeline with a fixed configuration.
type Runner struct {
	Config config.Config
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(cfg config.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Config: cfg, Logger: logger}
}

// Load reads input and runs the extract and build stages.
func (r *Runner) Load(input string) (*Result, error) {
	hooks := observability.Pipeline()

	extractStart := time.Now()
	hooks.OnExtractStart(input)
	text, err := dot.ReadFile(input)
	if err != nil {
		hooks.OnExtractComplete(input, 0, 0, time.Since(extractStart), err)
		return nil, err
	}
	doc := dot.Extract(text)

	result := &Result{Document: doc}
	result.Stats.ExtractTime = time.Since(extractStart)
	result.Stats.Classes = len(doc.Classes)
	result.Stats.Edges = len(doc.Edges)
	hooks.OnExtractComplete(input, len(doc.Classes), len(doc.Edges), result.Stats.ExtractTime, nil)

	r.Logger.Debug("extracted diagram",
		"classes", len(doc.Classes),
		"edges", len(doc.Edges),
		"duration", result.Stats.ExtractTime)
	if len(doc.Classes) == 0 && len(doc.Edges) == 0 {
		r.Logger.Warn("no class nodes or labeled edges found", "input", input)
	}
	for _, e := range doc.Edges {
		for _, id := range []string{e.From, e.To} {
			if _, ok := doc.Class(id); !ok {
				r.Logger.Debug("edge endpoint has no class node", "id", id, "label", e.Label)
			}
		}
	}

	buildStart := time.Now()
	result.Tree = pkgtree.Build(doc.Classes, r.Config.FallbackPackage)
	result.Stats.BuildTime = time.Since(buildStart)

	summary := pkgtree.Summarize(result.Tree)
	result.Stats.Packages = summary.Packages
	result.Stats.MaxDepth = summary.MaxDepth
	hooks.OnBuildComplete(summary.Packages, summary.MaxDepth, result.Stats.BuildTime)

	r.Logger.Debug("built package tree",
		"packages", summary.Packages,
		"max_depth", summary.MaxDepth,
		"duration", result.Stats.BuildTime)

	result.Collisions = puml.Collisions(doc.Classes)
	for _, c := range result.Collisions {
		r.Logger.Warn("classes share an alias and will merge in the diagram",
			"alias", c.Alias,
			"ids", c.IDs)
	}
	return result, nil
}

// Convert runs all stages and keeps the rendered document in memory.
func (r *Runner) Convert(input string) (*Result, error) {
	result, err := r.Load(input)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	result.Output = puml.Render(result.Tree, result.Document.Edges, r.Config.RenderOptions())
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(len(result.Output), result.Stats.RenderTime)

	r.Logger.Debug("rendered diagram",
		"bytes", len(result.Output),
		"duration", result.Stats.RenderTime)
	return result, nil
}

// ConvertFile runs [Runner.Convert] and writes the document to output.
// The output file is not touched when an earlier stage fails.
func (r *Runner) ConvertFile(input, output string) (*Result, error) {
	result, err := r.Convert(input)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(output, result.Output); err != nil {
		return nil, err
	}
	return result, nil
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperr.Wrap(apperr.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}
