package cli

import (
	"context"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/dotuml/pkg/errors"
	"github.com/matzehuels/dotuml/pkg/pipeline"
	"github.com/matzehuels/dotuml/pkg/render/nodelink"
)

func (c *CLI) previewCommand() *cobra.Command {
	var dotOnly bool

	cmd := &cobra.Command{
		Use:   "preview INPUT.dot OUTPUT.svg",
		Short: "Render the package grouping with Graphviz",
		Long: `Render the classes grouped into nested package clusters as SVG.

The preview uses the same package tree and colors as the PlantUML output, so
the grouping can be checked without a PlantUML installation. Use --dot to write
the Graphviz source instead of SVG.`,
		Example: `  dotuml preview classes.dot preview.svg
  dotuml preview --dot classes.dot clusters.dot`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], args[1], dotOnly)
		},
	}

	cmd.Flags().BoolVar(&dotOnly, "dot", false, "write Graphviz DOT source instead of SVG")
	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input, output string, dotOnly bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	result, err := runner.Load(input)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	src := nodelink.ToDOT(result.Tree, result.Document.Edges, runner.Config.RenderOptions())
	data := []byte(src)
	if !dotOnly {
		if data, err = nodelink.RenderSVG(src); err != nil {
			return apperr.Wrap(apperr.ErrCodeRenderFailed, err, "render %s", input)
		}
	}
	if err := pipeline.WriteFile(output, data); err != nil {
		return err
	}
	prog.done("Rendered preview of " + input)

	printSuccess(c.out, "Wrote preview")
	printFile(c.out, output)
	printStats(c.out, result.Stats.Classes, result.Stats.Edges, result.Stats.Packages)
	return nil
}
