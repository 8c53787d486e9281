package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tco-calculator/core/input"
	"tco-calculator/core/tco"
	"tco-calculator/core/ui"
)

// fieldsCmd lists every input field with its flag and default
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List input fields, flags and defaults",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := ui.NewWriter(cmd.OutOrStdout(), true)

		var group input.Group
		var tbl *ui.Table
		for _, f := range input.Fields() {
			if f.Group != group {
				if tbl != nil {
					tbl.Render()
					w.Println("")
				}
				group = f.Group
				w.SubHeader(string(group))
				tbl = w.NewTable("KEY", "FLAG", "LABEL", "DEFAULT")
			}
			tbl.AddRow(f.Key, "--"+f.Flag, f.Label, f.Default)
		}
		tbl.Render()

		w.Println("")
		fmt.Fprintf(cmd.OutOrStdout(), "Timeframe: --timeframe (%d-%d years, default %d)\n",
			tco.MinTimeframe, tco.MaxTimeframe, tco.DefaultTimeframe)
	},
}
