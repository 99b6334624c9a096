package cli

import (
	"github.com/Dynom/listkit/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Flags are the settings every command has in common
type Flags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  config.LogFormat
}

func (f *Flags) Register(cmd *cobra.Command) {
	f.ConfigFile = config.DefaultFileName
	f.LogFormat = config.LFAuto

	cmd.Flags().StringVar(&f.ConfigFile, "config", f.ConfigFile, "TOML configuration file, ignored when the default is absent")
	cmd.Flags().StringVar(&f.LogLevel, "log-level", "", "Log level (panic, fatal, error, warn, info, debug, trace), overrides the config file")
	cmd.Flags().Var(&f.LogFormat, "log-format", "Log format (json, text, auto), overrides the config file")
}

// Load reads the configuration file and builds the logger. Explicitly set flags take precedence over the file. Logs
// are written to the command's error output, keeping the standard output for results.
func (f *Flags) Load(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	conf, err := config.Load(f.ConfigFile, cmd.Flags().Changed("config"))
	if err != nil {
		return conf, nil, err
	}

	if cmd.Flags().Changed("log-level") {
		conf.Log.Level = f.LogLevel
	}

	if cmd.Flags().Changed("log-format") {
		conf.Log.Format = f.LogFormat
	}

	logger, err := conf.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return conf, nil, err
	}

	return conf, logger, nil
}
