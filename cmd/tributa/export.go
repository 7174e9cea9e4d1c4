package main

import (
	"fmt"
	"os"

	"github.com/mribeiro/tributa/internal/output"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [input-file]",
	Short: "Export the full report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = app.logger.Sync() }()

		input, err := loadInput(args[0])
		if err != nil {
			return err
		}

		report, err := app.engine.BuildReport(input)
		if err != nil {
			return err
		}
		rendered, err := output.NewReportGenerator().JSONReport(report)
		if err != nil {
			return err
		}

		outFile, _ := cmd.Flags().GetString("output")
		if outFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		}
		if err := os.WriteFile(outFile, []byte(rendered+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", outFile, err)
		}
		app.logger.Sugar().Infof("report written to %s", outFile)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
}
