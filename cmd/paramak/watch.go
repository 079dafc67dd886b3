package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/soypat/paramak/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprint the builds whenever the config file changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			return errors.New("watch needs a config file, pass --config")
		}
		e, err := load(cmd)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if err := printBuilds(w, e.reactor); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		e.logger.Info("watching", zap.String("file", path))
		err = watch.File(ctx, path, func() {
			e, err := load(cmd)
			if err == nil {
				err = printBuilds(w, e.reactor)
			}
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "paramak:", err)
			}
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
