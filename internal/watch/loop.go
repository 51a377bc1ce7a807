// Package watch re-runs the slide pipeline whenever the slides tree changes.
package watch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Event is one file system change notification.
type Event struct {
	Op   string // create, modify, delete, rename, chmod
	Path string
}

// Source delivers change notifications. Events is closed when the source
// stops.
type Source interface {
	Events() <-chan Event
	Errors() <-chan error
}

// RebuildFunc runs one complete pipeline.
type RebuildFunc func(ctx context.Context) error

// Loop runs a rebuild for every notification, one at a time. The next
// notification is not received until the current rebuild has returned, and
// notifications are never coalesced.
type Loop struct {
	src         Source
	rebuild     RebuildFunc
	log         *zap.Logger
	exitOnError bool
}

// NewLoop returns a Loop. With exitOnError set the first failed rebuild ends
// Run; otherwise failures are logged and watching continues.
func NewLoop(src Source, rebuild RebuildFunc, log *zap.Logger, exitOnError bool) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{src: src, rebuild: rebuild, log: log, exitOnError: exitOnError}
}

// Run blocks until ctx is cancelled, the source closes, or a rebuild fails
// with exitOnError set.
func (l *Loop) Run(ctx context.Context) error {
	events := l.src.Events()
	errs := l.src.Errors()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				l.log.Debug("event source closed")
				return nil
			}
			l.log.Info("change detected", zap.String("op", ev.Op), zap.String("path", ev.Path))

			if err := l.rebuild(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				if l.exitOnError {
					return fmt.Errorf("rebuild after %s of %s: %w", ev.Op, ev.Path, err)
				}
				l.log.Error("rebuild failed, still watching", zap.String("path", ev.Path), zap.Error(err))
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			l.log.Warn("watcher error", zap.Error(err))
		}
	}
}
