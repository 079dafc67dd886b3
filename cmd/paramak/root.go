package main

import (
	"fmt"
	"os"

	"github.com/soypat/paramak/config"
	"github.com/soypat/paramak/reactor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "paramak",
	Short:         "Parametric fusion reactor geometry",
	Long:          "Paramak derives the radial and vertical builds of a parametric reactor, prints component profiles and construction plans and assembles the reactor solids.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "paramak:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "development logging at debug level")
	rootCmd.PersistentFlags().StringP("reactor", "r", "", "reactor to use: submersion or cylinder")
}

// env holds what every command needs.
type env struct {
	cfg     config.Config
	reactor reactor.Reactor
	logger  *zap.Logger
}

// load reads the configuration named by the persistent flags.
func load(cmd *cobra.Command) (*env, error) {
	v, err := config.New()
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("reactor"); f != nil && f.Changed {
		v.Set("reactor", f.Value.String())
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		v.Set("log.development", true)
		v.Set("log.level", "debug")
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Log.Logger()
	if err != nil {
		return nil, err
	}
	r, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded", zap.String("file", path), zap.String("reactor", cfg.Reactor))
	return &env{cfg: cfg, reactor: r, logger: logger}, nil
}
