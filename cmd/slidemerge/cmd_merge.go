package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slidemerge/internal/pipeline"
)

// runMerge performs a single merge.
func runMerge(cmd *cobra.Command, args []string) error {
	paths := resolvePaths(args)
	if err := pipeline.CheckTemplate(paths.Template); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("Merging slides",
		zap.String("template", paths.Template),
		zap.String("slides", paths.Slides),
		zap.String("output", paths.Output))

	runner := pipeline.NewRunner(cfg, logger, cmd.OutOrStdout())
	if _, err := runner.Run(ctx, paths); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
