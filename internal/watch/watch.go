package watch

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configure Watch.
type Options struct {
	ExitOnError bool
}

// Watch observes root recursively and calls rebuild for every change until
// ctx is cancelled. It does not build before the first change.
func Watch(ctx context.Context, root string, rebuild RebuildFunc, log *zap.Logger, opts Options) error {
	if log == nil {
		log = zap.NewNop()
	}
	src, err := NewFSSource(root, log)
	if err != nil {
		return err
	}
	log.Info("watching for changes", zap.String("path", root), zap.Int("dirs", len(src.WatchList())))

	loop := NewLoop(src, rebuild, log, opts.ExitOnError)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return src.Run(gctx) })
	g.Go(func() error { return loop.Run(gctx) })
	return g.Wait()
}
