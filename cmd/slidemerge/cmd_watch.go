package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slidemerge/internal/pipeline"
	"slidemerge/internal/watch"
)

// runWatch rebuilds the presentation on every change below the slides path
// until interrupted.
func runWatch(cmd *cobra.Command, args []string) error {
	paths := resolvePaths(args)
	if err := pipeline.CheckTemplate(paths.Template); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := pipeline.NewRunner(cfg, logger, cmd.OutOrStdout())
	rebuild := func(ctx context.Context) error {
		_, err := runner.Run(ctx, paths)
		return err
	}

	err := watch.Watch(ctx, paths.Slides, rebuild, logger, watch.Options{
		ExitOnError: cfg.Watch.ExitOnError,
	})
	if err != nil {
		return err
	}
	logger.Info("Stopped watching", zap.String("path", paths.Slides))
	return nil
}
