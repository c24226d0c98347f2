// Package cli implements the dotuml command-line interface.
//
// The root command converts a DOT class diagram to PlantUML:
//
//	dotuml classes.dot classes.puml
//
// Additional commands inspect the same input:
//   - tree: print the inferred package tree, optionally as an interactive browser
//   - preview: draw the package clusters with Graphviz (SVG or DOT)
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every command logs the same way.
//
// # Exit Status
//
// [ExitCode] maps command errors to process exit codes: 2 for usage errors
// such as a wrong number of arguments, 130 after an interrupt, 1 for any other
// failure.
package cli
