package main

import (
	"io"

	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"github.com/YuminosukeSato/omoikane/pkg/log"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "omoikane",
		Short:         "Least squares fitting by gradient descent",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return setupLogging(cmd.ErrOrStderr(), cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "configuration file path")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	root.AddCommand(newFitCommand(), newDemoCommand(), newPredictCommand())
	return root
}

// setupLogging はライブラリ用の zerolog ロガーと、CLI 自身の slog を設定する
func setupLogging(w io.Writer, cfg *Config) error {
	level, ok := log.ParseLevel(cfg.LogLevel)
	if !ok {
		return errors.NewValidationError("log-level", "unknown level", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "console":
		log.SetLogger(log.NewConsoleLogger(w, level))
	case "json":
		log.SetLogger(log.NewZerologLogger(w, level))
		if err := log.SetupLogger(w, cfg.LogLevel); err != nil {
			return err
		}
	default:
		return errors.NewValidationError("log-format", "must be console or json", cfg.LogFormat)
	}
	return nil
}

// addTrainingFlags は学習系コマンド共通のフラグ
func addTrainingFlags(cmd *cobra.Command, learningRate float64, iterations int) {
	flags := cmd.Flags()
	flags.Float64("learning-rate", learningRate, "gradient descent step size")
	flags.Int("iterations", iterations, "iteration count; the optimizer performs iterations-1 updates")
	flags.Bool("progress", true, "show a progress bar on stderr")
}
