package main

import (
	"fmt"

	"github.com/YuminosukeSato/omoikane/datasets"
	"github.com/spf13/cobra"
)

func newDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fit y = -2x on x = 1..6 and plot the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			output, _ := cmd.Flags().GetString("output")

			ds := datasets.Line(-2, 0, 1, 2, 3, 4, 5, 6)
			model, err := fitModel(cmd.ErrOrStderr(), cfg, ds)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), model, ds); err != nil {
				return err
			}
			if output == "" {
				return nil
			}
			if err := plotFit(output, ds, model); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	addTrainingFlags(cmd, 1e-4, 10000)
	cmd.Flags().StringP("output", "o", "result.png", "image file for the fitted line; empty to skip")
	return cmd
}
