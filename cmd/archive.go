package cmd

import (
	"fmt"

	"deviceinfocompare/core/utils"
	"deviceinfocompare/feature/archive"
	"deviceinfocompare/feature/dumps"
	"deviceinfocompare/feature/report"

	"github.com/spf13/cobra"
)

var importCompare bool

// archiveCmd is the parent command for object storage operations.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Export dumps to and import them from object storage",
}

var archiveExportCmd = &cobra.Command{
	Use:   "export <dump-id>",
	Short: "Upload a dump to the archive bucket",
	Args:  cobra.ExactArgs(1),
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

		svc, err := a.archive()
		if err != nil {
			return err
		}
		key, err := svc.Export(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Dump #%d archived as %s\n", id, key)
		return nil
	},
}

var archiveImportCmd = &cobra.Command{
	Use:   "import <key|dump-id>",
	Short: "Download an archived dump and store it as a new dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		svc, err := a.archive()
		if err != nil {
			return err
		}
		dump, err := svc.Restore(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported as dump #%d: %s\n", dump.ID, dump.Description)

		if !importCompare {
			return nil
		}
		previous := dump.ID
		cmp, err := a.dumps.Compare(cmd.Context(), dumps.CurrentDumpID, &previous)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		return (&report.TextRenderer{}).Render(out, cmp.Report)
	},
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived dumps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		svc, err := a.archive()
		if err != nil {
			return err
		}
		entries, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}

		t := newTable("Key", "Size", "Modified")
		for _, e := range entries {
			t.Row(e.Key, fmt.Sprintf("%d B", e.Size), e.LastModified.Format(timeLayout))
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

var archiveDeleteCmd = &cobra.Command{
	Use:   "delete <key|dump-id>",
	Short: "Remove an archived dump from the bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		svc, err := a.archive()
		if err != nil {
			return err
		}
		if err := svc.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s removed from archive\n", archive.ResolveKey(args[0]))
		return nil
	},
}

func init() {
	archiveImportCmd.Flags().BoolVar(&importCompare, "compare", false, "Compare current devices against the imported dump")

	archiveCmd.AddCommand(archiveExportCmd, archiveImportCmd, archiveListCmd, archiveDeleteCmd)
	RootCmd.AddCommand(archiveCmd)
}

