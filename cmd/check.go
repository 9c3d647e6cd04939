package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/gamma-delta/center-brain-archive/internal/artifact"
	"github.com/gamma-delta/center-brain-archive/internal/schema"
	"github.com/gamma-delta/center-brain-archive/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the checked-in artifacts match the tables",
	Long: "Re-render both artifacts in memory and compare them with the files in the site\n" +
		"sources. The JSON on disk must also decode strictly and conform to the schema.",
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}
	return check(cmd.Context(), ws.printer, ws.paths, schema.GeneratorFor(ws.cfg.TypeGenerator))
}

func check(ctx context.Context, printer *ui.Printer, paths artifact.Paths, gen schema.Generator) error {
	a, err := compileBuiltin()
	if err != nil {
		return err
	}
	bundle, err := artifact.Render(ctx, a, gen)
	if err != nil {
		return err
	}

	onDisk, err := os.ReadFile(paths.JSON)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Reported as drift below.
	case err != nil:
		return fmt.Errorf("reading %s: %w", paths.JSON, err)
	default:
		if err := artifact.Conform(onDisk); err != nil {
			return fmt.Errorf("%s does not conform to the archive schema: %w", paths.JSON, err)
		}
		printer.Detail(paths.JSON + " conforms to the archive schema")
	}

	drifts, err := artifact.Check(bundle, paths)
	if err != nil {
		return err
	}
	printer.CheckResult(drifts)
	if len(drifts) > 0 {
		return fmt.Errorf("%d artifact(s) out of date", len(drifts))
	}
	return nil
}
