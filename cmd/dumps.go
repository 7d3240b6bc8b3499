package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"deviceinfocompare/core/utils"
	"deviceinfocompare/feature/dumps"

	"github.com/spf13/cobra"
)

var clearConfirm bool

// dumpCmd captures the live device list into a new dump.
var dumpCmd = &cobra.Command{
	Use:   "dump [description]",
	Short: "Save the devices present right now as a new dump",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		dump, count, err := a.dumps.DumpDevices(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Dump #%d saved with %d device(s): %s\n", dump.ID, count, dump.Description)
		return nil
	},
}

// listCmd prints every stored dump.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored dumps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		summaries, err := a.dumps.List(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dumpTable(summaries))
		return nil
	},
}

// devicesCmd prints the devices of one dump.
var devicesCmd = &cobra.Command{
	Use:   "devices [dump-id]",
	Short: "Show the devices of a dump (default: current devices)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := dumps.CurrentDumpID
		if len(args) == 1 {
			parsed, err := utils.ParseID(args[0])
			if err != nil {
				return err
			}
			id = parsed
		}

		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		devices, err := a.dumps.Snapshot(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), deviceTable(devices))
		return nil
	},
}

// removeCmd deletes one stored dump.
var removeCmd = &cobra.Command{
	Use:     "remove <dump-id>",
	Aliases: []string{"rm"},
	Short:   "Remove a stored dump",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.dumps.Remove(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Dump #%d removed\n", id)
		return nil
	},
}

// clearCmd deletes every stored dump.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored dumps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), clearConfirm) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, no dumps were removed.")
			return nil
		}

		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		removed, err := a.dumps.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d dump(s) removed\n", removed)
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearConfirm, "yes", false, "Skip the confirmation prompt")

	RootCmd.AddCommand(dumpCmd, listCmd, devicesCmd, removeCmd, clearCmd)
}

// confirm prompts for "yes" unless assumeYes is set.
func confirm(in io.Reader, out io.Writer, assumeYes bool) bool {
	if assumeYes {
		return true
	}

	fmt.Fprint(out, "Type 'yes' to remove all dumps: ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
