package cmd

import (
	"fmt"

	"deviceinfocompare/feature/dumps"
	"deviceinfocompare/feature/report"

	"github.com/spf13/cobra"
)

var (
	compareCurrent  uint
	comparePrevious uint
	compareJSON     bool
	compareNoColor  bool
	compareLog      bool
)

// compareCmd compares two snapshots and prints the differences.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two dumps (default: current devices against the last dump)",
	Long: `Compare a current snapshot against a previous one.

Dump #0 is the list of devices present right now. Without --previous the most
recent stored dump is used.

Examples:
  # Current devices against the last dump
  compare

  # Dump 2 against dump 1 as JSON
  compare --current 2 --previous 1 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := report.FormatText
		if compareJSON {
			format = report.FormatJSON
		}
		renderer, err := report.New(format, compareNoColor)
		if err != nil {
			return err
		}

		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		var previous *uint
		if cmd.Flags().Changed("previous") {
			previous = &comparePrevious
		}

		cmp, err := a.dumps.Compare(cmd.Context(), compareCurrent, previous)
		if err != nil {
			return err
		}

		if compareLog {
			_ = (&report.LogRenderer{Logger: a.log}).Render(nil, cmp.Report)
		}

		out := cmd.OutOrStdout()
		if !compareJSON {
			fmt.Fprintf(out, "Comparing %s\n  against %s\n\n",
				labelFor(cmd, a, cmp.CurrentID), labelFor(cmd, a, cmp.PreviousID))
		}
		return renderer.Render(out, cmp.Report)
	},
}

func labelFor(cmd *cobra.Command, a *application, id uint) string {
	if id == dumps.CurrentDumpID {
		return dumpLabel(nil)
	}
	d, err := a.dumps.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Sprintf("#%d", id)
	}
	return dumpLabel(d)
}

func init() {
	compareCmd.Flags().UintVar(&compareCurrent, "current", 0, "Current dump id (0 = devices present now)")
	compareCmd.Flags().UintVar(&comparePrevious, "previous", 0, "Previous dump id (default: most recent dump)")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Print the report as JSON")
	compareCmd.Flags().BoolVar(&compareNoColor, "no-color", false, "Disable colored output")
	compareCmd.Flags().BoolVar(&compareLog, "log", false, "Also write the result through the application logger")

	RootCmd.AddCommand(compareCmd)
}
