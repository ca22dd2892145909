package main

import (
	"fmt"
	"os"

	"github.com/YuminosukeSato/omoikane/datasets"
	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"github.com/YuminosukeSato/omoikane/regression"
	"github.com/YuminosukeSato/omoikane/visualization"
	"github.com/spf13/cobra"
)

func newFitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a linear function to a CSV file whose last column is the label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			dataPath, _ := flags.GetString("data")
			header, _ := flags.GetBool("header")
			plotPath, _ := flags.GetString("plot")
			tracePath, _ := flags.GetString("trace-plot")
			savePath, _ := flags.GetString("save")

			file, err := os.Open(dataPath)
			if err != nil {
				return errors.Wrap(err, "open data")
			}
			defer file.Close()

			ds, err := datasets.ReadCSV(file, datasets.CSVOptions{Header: header})
			if err != nil {
				return err
			}

			model, err := fitModel(cmd.ErrOrStderr(), cfg, ds)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), model, ds); err != nil {
				return err
			}

			if plotPath != "" {
				if ds.InputSize() != 1 {
					return errors.NewValueError("fit", "--plot needs a single input column")
				}
				if err := plotFit(plotPath, ds, model); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", plotPath)
			}
			if tracePath != "" {
				if err := visualization.PlotErrorTrace(tracePath, model.ErrorTrace()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", tracePath)
			}
			if savePath != "" {
				if err := saveWeights(savePath, model); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", savePath)
			}
			return nil
		},
	}

	addTrainingFlags(cmd, regression.DefaultLearningRate, regression.DefaultMaxIterations)
	flags := cmd.Flags()
	flags.StringP("data", "d", "", "CSV file with inputs followed by the label")
	flags.Bool("header", false, "skip the first CSV record")
	flags.String("plot", "", "write the fitted line to this image (single input only)")
	flags.String("trace-plot", "", "write the error trace to this image")
	flags.String("save", "", "write the fitted weights as JSON")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}
