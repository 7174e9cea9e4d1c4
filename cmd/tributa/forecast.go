package main

import (
	"fmt"

	"github.com/mribeiro/tributa/internal/domain"
	"github.com/mribeiro/tributa/internal/output"
	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast [input-file]",
	Short: "Project bracket transitions over the next months",
	Long:  "Walks the projection horizon, reports the rolling revenue and each regime's cost per month, and flags Simples Nacional bracket transitions. Requires an input in derived mode with a twelve-month history.",
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
		if input.Mode != domain.ModeDerived {
			return fmt.Errorf("forecast requires derived mode (a monthly_history section); input is in %s mode", input.Mode)
		}

		report, err := app.engine.BuildReport(input)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		rendered, err := output.NewReportGenerator().Render(report, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	forecastCmd.Flags().String("format", "", "output format: console, json, csv")
}
