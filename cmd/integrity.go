package cmd

import (
	"encoding/json"
	"fmt"

	"deviceinfocompare/core/storage"
	"deviceinfocompare/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var integrityArchive bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the dump database, archive bucket and device enumeration",
	Long: `Verifies that the dump and device tables match the expected schema and
that live device enumeration works. With --archive the archive bucket is
inspected as well. The combined report is printed as JSON.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		var client storage.Client
		if integrityArchive {
			client, err = storage.NewClient(a.cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to connect to storage: %w", err)
			}
		}

		svc := integrity.NewService(a.db, client, a.cfg.Storage.Bucket, a.enum, a.log)
		report := svc.CheckAll(cmd.Context())

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		if !report.Healthy {
			a.log.Warn("Integrity checks failed", zap.Any("errors", report.Errors))
			return fmt.Errorf("integrity checks failed")
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&integrityArchive, "archive", false, "Also inspect the archive bucket")
	RootCmd.AddCommand(integrityCmd)
}
