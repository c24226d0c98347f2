package cli

import (
	"context"

	"github.com/matzehuels/dotuml/pkg/pipeline"
)

// runConvert converts input to PlantUML and writes it to output.
func (c *CLI) runConvert(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := runner.ConvertFile(input, output)
	if err != nil {
		return err
	}
	prog.done("Converted " + input)

	printSuccess(c.out, "Wrote PlantUML diagram")
	printFile(c.out, output)
	printStats(c.out, result.Stats.Classes, result.Stats.Edges, result.Stats.Packages)
	reportCollisions(c, result)
	return nil
}

// reportCollisions repeats alias collisions on the result writer so they are
// visible without --verbose.
func reportCollisions(c *CLI, result *pipeline.Result) {
	for _, col := range result.Collisions {
		printWarning(c.out, "alias %s is shared by %d classes", col.Alias, len(col.IDs))
	}
}
