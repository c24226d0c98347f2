package cli

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotuml/pkg/buildinfo"
	"github.com/matzehuels/dotuml/pkg/config"
	apperr "github.com/matzehuels/dotuml/pkg/errors"
	"github.com/matzehuels/dotuml/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "dotuml"

// Exit codes returned by ExitCode.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130 // standard shell convention for SIGINT
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	errOut     io.Writer
	verbose    bool
	configPath string
}

// New creates a CLI that prints results to out and logs and usage to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		out:    out,
		errOut: errOut,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself performs the conversion.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dotuml INPUT.dot OUTPUT.puml",
		Short: "Convert Graphviz class diagrams to PlantUML",
		Long: `dotuml converts a Graphviz DOT class diagram, as written by pyreverse and
similar generators, into a PlantUML class diagram. Classes are grouped into
nested packages taken from their dotted names, and each package level gets a
lighter shade of blue.

An input named like a subcommand (tree, preview, completion, help) is taken
as that subcommand. Pass such a file with a path, for example ./tree.`,
		Example: `  dotuml classes_shop.dot shop.puml
  dotuml --config dotuml.toml classes.dot classes.puml`,
		Version:       buildinfo.Version,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args[0], args[1])
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "configuration file (.toml, .yaml or .yml)")

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute runs the command tree with args. When a command rejects its
// arguments, that command's usage is printed to the error writer before the
// USAGE error is returned.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}
	if code := apperr.GetCode(err); code != "" {
		c.Logger.Debug("command failed", "code", code)
	}
	if apperr.Is(err, apperr.ErrCodeUsage) && cmd != nil {
		cmd.SetOut(c.errOut)
		_ = cmd.Usage()
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case apperr.Is(err, apperr.ErrCodeUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// exactArgs is cobra.ExactArgs with a USAGE-coded error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return apperr.New(apperr.ErrCodeUsage, "%s accepts %d arg(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// newRunner loads the configuration and creates a pipeline runner.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	logger := loggerFromContext(ctx)
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.configPath != "" {
		logger.Debug("loaded configuration", "path", c.configPath)
	}
	return pipeline.NewRunner(cfg, logger), nil
}
