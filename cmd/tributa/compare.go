package main

import (
	"fmt"

	"github.com/mribeiro/tributa/internal/compare"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare the three regimes side by side",
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

		analysis, err := app.engine.RunAll(input)
		if err != nil {
			return err
		}
		set := compare.BuildComparisonSet(analysis, args[0])

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table", "":
			fmt.Fprint(cmd.OutOrStdout(), (&compare.TableFormatter{}).Format(set))
		case "json":
			rendered, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
		case "csv":
			rendered, err := (&compare.CSVFormatter{}).Format(set)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().String("format", "", "output format: table, json, csv")
}
