// Package cmd - calculate command
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tco-calculator/core/input"
	"tco-calculator/core/output"
	"tco-calculator/internal/config"
	"tco-calculator/internal/logging"
)

var (
	outputFormat string
	inputFile    string
	timeframe    string
	noColor      bool

	// fieldValues holds the raw flag text of every cost field
	fieldValues = make(map[string]*string)
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate and compare on-premises and cloud TCO",
	Long: `Calculate the on-premises and cloud total cost of ownership and report
which is cheaper.

Values are layered: built-in defaults, then --input (JSON, YAML or HCL),
then individual flags. Every value is read as text and anything that does
not start with a number counts as zero.

Examples:
  tco calculate --timeframe 3
  tco calculate --servers 4 --server-cost 8000 --cloud-compute 2500
  tco calculate --input scenario.yaml --format json`,
	Args: cobra.NoArgs,
	RunE: runCalculate,
}

func init() {
	flags := calculateCmd.Flags()
	flags.StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	flags.StringVarP(&inputFile, "input", "i", "", "scenario file (.json, .yaml, .yml, .hcl)")
	flags.StringVarP(&timeframe, "timeframe", "t", "", "analysis timeframe in years (1-10)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")

	for _, f := range input.Fields() {
		fieldValues[f.Key] = flags.String(f.Flag, f.Default, f.Label)
	}
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	form := input.NewForm()
	_ = form.Set(input.TimeframeKey, strconv.Itoa(cfg.Calculator.DefaultTimeframe))

	source := "flags"
	if inputFile != "" {
		if err := form.LoadFile(inputFile); err != nil {
			return err
		}
		source = inputFile
	}

	for _, f := range input.Fields() {
		if cmd.Flags().Changed(f.Flag) {
			if err := form.Set(f.Key, *fieldValues[f.Key]); err != nil {
				return err
			}
		}
	}
	if cmd.Flags().Changed("timeframe") {
		_ = form.Set(input.TimeframeKey, timeframe)
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.DefaultRegistry(noColor || cfg.Output.NoColor).Get(output.Format(format))
	if err != nil {
		return err
	}

	result := output.NewResult(form.Scenario(), source, Version)
	logging.Debug("scenario evaluated",
		zap.String("source", source),
		zap.String("input_hash", result.Metadata.InputHash),
		zap.String("winner", result.Report.Comparison.Winner.String()),
	)

	return formatter.Render(cmd.OutOrStdout(), result)
}
