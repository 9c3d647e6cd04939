package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gamma-delta/center-brain-archive/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the archive as JSON, YAML, TOML or SQLite",
	Long: "Render the compiled archive in another format. Text formats go to stdout unless\n" +
		"--out is given; sqlite always needs --out.",
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("format", "f", "",
		fmt.Sprintf("output format: %s, sqlite (default from config, json)", strings.Join(export.FormatNames(), ", ")))
	exportCmd.Flags().StringP("out", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, printer, err := loadConfig()
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Export.Format
	}
	out, _ := cmd.Flags().GetString("out")

	if err := exportArchive(cmd.Context(), cmd.OutOrStdout(), format, out); err != nil {
		return err
	}
	if out != "" {
		printer.Info(fmt.Sprintf("exported %s to %s", format, out))
	}
	return nil
}

func exportArchive(ctx context.Context, stdout io.Writer, format, out string) error {
	a, err := compileBuiltin()
	if err != nil {
		return err
	}

	if format == "sqlite" {
		if out == "" {
			return errors.New("sqlite export needs --out")
		}
		return export.WriteSQLite(ctx, out, a)
	}

	f, err := export.FormatByName(format)
	if err != nil {
		return err
	}
	data, err := f.Render(a)
	if err != nil {
		return err
	}
	if out == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
