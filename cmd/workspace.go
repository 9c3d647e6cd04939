package cmd

import (
	"fmt"

	"github.com/gamma-delta/center-brain-archive/internal/archive"
	"github.com/gamma-delta/center-brain-archive/internal/artifact"
	"github.com/gamma-delta/center-brain-archive/internal/config"
	"github.com/gamma-delta/center-brain-archive/internal/dsp"
	"github.com/gamma-delta/center-brain-archive/internal/sourceroot"
	"github.com/gamma-delta/center-brain-archive/internal/ui"
)

// workspace is what the artifact commands share: configuration, the
// checkout-relative output paths and a printer.
type workspace struct {
	cfg     config.Config
	paths   artifact.Paths
	printer *ui.Printer
}

// loadWorkspace refuses to run from a release build, since the outputs are
// located relative to the source checkout.
func loadWorkspace() (*workspace, error) {
	cfg, printer, err := loadConfig()
	if err != nil {
		return nil, err
	}
	root, err := sourceroot.Locate()
	if err != nil {
		return nil, err
	}
	jsonPath, declPath := cfg.OutputPaths(root)
	printer.Detail("checkout root " + root)
	return &workspace{
		cfg:     cfg,
		paths:   artifact.Paths{JSON: jsonPath, Declarations: declPath},
		printer: printer,
	}, nil
}

func loadConfig() (config.Config, *ui.Printer, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	printer := ui.New()
	printer.SetVerbose(cfg.Verbose)
	return cfg, printer, nil
}

// compileBuiltin compiles the curated tables strictly.
func compileBuiltin() (*archive.Archive, error) {
	a, err := archive.Compile(dsp.Builtin{})
	if err != nil {
		return nil, fmt.Errorf("compiling archive: %w", err)
	}
	return a, nil
}
