// Package observability provides hooks for instrumenting conversions.
//
// The pipeline reports each stage to the registered [PipelineHooks] so that
// metrics or tracing can be attached without the core packages depending on
// any backend. The default hooks do nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls the hooks around each stage:
//
//	observability.Pipeline().OnExtractStart(input)
//	// ... read and extract ...
//	observability.Pipeline().OnExtractComplete(input, classes, edges, duration, err)
package observability

import (
	"sync"
	"time"
)

// PipelineHooks receives events from the conversion pipeline.
type PipelineHooks interface {
	// Extract events
	OnExtractStart(input string)
	OnExtractComplete(input string, classes, edges int, duration time.Duration, err error)

	// Build events
	OnBuildComplete(packages, maxDepth int, duration time.Duration)

	// Render events
	OnRenderComplete(bytes int, duration time.Duration)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnExtractStart(string)                                    {}
func (NoopPipelineHooks) OnExtractComplete(string, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnBuildComplete(int, int, time.Duration)                  {}
func (NoopPipelineHooks) OnRenderComplete(int, time.Duration)                      {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
// This should be called once at application startup before any conversion.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
