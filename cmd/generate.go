package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gamma-delta/center-brain-archive/internal/artifact"
	"github.com/gamma-delta/center-brain-archive/internal/schema"
	"github.com/gamma-delta/center-brain-archive/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write dsp.json and dsp.d.ts for the site",
	Long: "Compile the curated tables, render the archive and its TypeScript declarations,\n" +
		"and write both into the site sources. Either both files are replaced or neither is.",
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}
	return generate(cmd.Context(), ws.printer, ws.paths, schema.GeneratorFor(ws.cfg.TypeGenerator))
}

func generate(ctx context.Context, printer *ui.Printer, paths artifact.Paths, gen schema.Generator) error {
	a, err := compileBuiltin()
	if err != nil {
		return err
	}
	bundle, err := artifact.Render(ctx, a, gen)
	if err != nil {
		return err
	}

	printer.PlanningWrite(paths.JSON, len(bundle.JSON))
	printer.PlanningWrite(paths.Declarations, len(bundle.Declarations))
	if err := artifact.Write(bundle, paths); err != nil {
		return err
	}
	printer.Wrote(paths, bundle.Size())
	return nil
}
