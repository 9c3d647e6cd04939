package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gamma-delta/center-brain-archive/internal/schema"
	"github.com/gamma-delta/center-brain-archive/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "centerbrain",
	Short: "Dyson Sphere Program data compiler",
	Long: "Centerbrain compiles the curated Dyson Sphere Program tables into the cross-linked\n" +
		"archive the Center Brain Archive site reads, along with its TypeScript declarations.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. A failing external type generator makes
// the process exit with the generator's own exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.New().Error(err.Error())
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var toolErr *schema.ExternalToolError
	if errors.As(err, &toolErr) && toolErr.ExitCode > 0 {
		return toolErr.ExitCode
	}
	return 1
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .centerbrain.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".centerbrain")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("CENTERBRAIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
