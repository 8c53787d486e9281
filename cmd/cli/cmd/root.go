// Package cmd provides the CLI commands for tco.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tco-calculator/internal/config"
	"tco-calculator/internal/logging"
)

// Version is the tool version, overridden at build time with -ldflags
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tco",
	Short: "Compare on-premises and cloud total cost of ownership",
	Long: `tco compares the total cost of ownership of an on-premises deployment
against an equivalent cloud deployment over a 1 to 10 year horizon.

Non-numeric inputs are read as zero; results are recomputed from scratch
on every run.

Examples:
  tco calculate
  tco calculate --servers 20 --cloud-compute 12000 --timeframe 3
  tco calculate --input scenario.hcl --format markdown
  tco fields`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tco-calculator.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tco version %s\n", Version)
	},
}
