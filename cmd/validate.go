package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamma-delta/center-brain-archive/internal/dsp"
	"github.com/gamma-delta/center-brain-archive/internal/integrity"
	"github.com/gamma-delta/center-brain-archive/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Audit the curated tables for integrity problems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, printer, err := loadConfig()
		if err != nil {
			return err
		}
		return validate(printer, dsp.Builtin{})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validate(printer *ui.Printer, src integrity.Source) error {
	report := integrity.Audit(src)
	printer.IntegrityReport(report)
	if !report.Valid() {
		return fmt.Errorf("validation failed with %d error(s)", report.Count(integrity.SeverityError))
	}
	return nil
}
