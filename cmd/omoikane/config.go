package main

import (
	"strings"

	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "OMOIKANE"

// Config は全コマンド共通の設定。
// 優先順位はフラグ > 環境変数 (OMOIKANE_*) > 設定ファイル > 既定値。
type Config struct {
	LogLevel     string  `mapstructure:"log-level"`
	LogFormat    string  `mapstructure:"log-format"`
	LearningRate float64 `mapstructure:"learning-rate"`
	Iterations   int     `mapstructure:"iterations"`
	Progress     bool    `mapstructure:"progress"`
}

// loadConfig binds the flags of cmd into a fresh viper instance and decodes it.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}
