package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/config"
)

type globalFlags struct {
	configFile string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	var gf globalFlags
	cmd := &cobra.Command{
		Use:           "reclist",
		Short:         "Fixed-size record list tool",
		Long:          "reclist stores fixed-size binary records read from standard input in a list and prints them back as hex.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addGlobalFlags(cmd.PersistentFlags(), &gf)

	cmd.AddCommand(
		newRunCommand(&gf),
		newSizeofCommand(),
		newVersionCommand(),
	)
	return cmd
}

func addGlobalFlags(fs *pflag.FlagSet, gf *globalFlags) {
	fs.StringVarP(&gf.configFile, "config", "c", "", "configuration file (.yaml, .toml or .json)")
	fs.StringVar(&gf.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// loadConfig reads the configuration file, if any, and applies the log level
// to the standard logger. An explicit --log-level wins over the file.
func loadConfig(fs *pflag.FlagSet, gf *globalFlags) (config.Config, error) {
	cfg := config.Default()
	if gf.configFile != "" {
		var err error
		cfg, err = config.Load(gf.configFile)
		if err != nil {
			return cfg, fmt.Errorf("loading %s: %w", gf.configFile, err)
		}
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = gf.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.Level())
	logrus.WithFields(logrus.Fields{
		"config":   gf.configFile,
		"itemsize": cfg.ItemSize,
		"level":    cfg.LogLevel,
	}).Debug("configuration loaded")
	return cfg, nil
}
