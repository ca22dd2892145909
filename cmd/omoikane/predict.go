package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/YuminosukeSato/omoikane/core/model"
	"github.com/YuminosukeSato/omoikane/optimization"
	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"github.com/YuminosukeSato/omoikane/regression"
	"github.com/YuminosukeSato/omoikane/visualization"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func newPredictCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict x1 [x2 ...]",
		Short: "Evaluate saved weights at one input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weightsPath, _ := cmd.Flags().GetString("model")

			lr, err := loadWeights(weightsPath)
			if err != nil {
				return err
			}

			x := make([]float64, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errors.Wrapf(err, "argument %d", i+1)
				}
				x[i] = v
			}

			y, err := lr.PredictVector(mat.NewVecDense(len(x), x))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format(y))
			return nil
		},
	}
	cmd.Flags().StringP("model", "m", "", "weights JSON written by fit --save")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

// predictFunc adapts a fitted model to the plotting callback.
// It panics when the model cannot evaluate x, like the optimization core does.
func predictFunc(lr *regression.LinearRegression) func(mat.Vector) float64 {
	return func(x mat.Vector) float64 {
		y, err := lr.PredictVector(x)
		if err != nil {
			panic(err)
		}
		return y
	}
}

func saveWeights(path string, lr *regression.LinearRegression) error {
	weights, err := lr.ExportWeights()
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create weights file")
	}
	if _, err := weights.WriteTo(file); err != nil {
		file.Close()
		return errors.Wrap(err, "write weights")
	}
	return file.Close()
}

func loadWeights(path string) (*regression.LinearRegression, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open weights file")
	}
	defer file.Close()

	weights, err := model.ReadWeights(file)
	if err != nil {
		return nil, err
	}
	lr := regression.NewLinearRegression()
	if err := lr.ImportWeights(weights); err != nil {
		return nil, err
	}
	return lr, nil
}

// plotFit writes the fit plot and turns a prediction panic back into an error.
func plotFit(path string, ds optimization.Dataset, lr *regression.LinearRegression) error {
	return errors.SafeExecute("plotFit", func() error {
		return visualization.PlotFit(path, ds, predictFunc(lr))
	})
}
