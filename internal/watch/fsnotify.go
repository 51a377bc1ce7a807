package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FSSource is a recursive Source backed by fsnotify. fsnotify only watches
// single directories, so every directory below the root is added up front
// and new directories are added as they are created.
type FSSource struct {
	root    string
	watcher *fsnotify.Watcher
	events  chan Event
	errors  chan error
	log     *zap.Logger
}

var _ Source = (*FSSource)(nil)

// NewFSSource starts watching root and every directory below it.
func NewFSSource(root string, log *zap.Logger) (*FSSource, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	s := &FSSource{
		root:    root,
		watcher: w,
		events:  make(chan Event, 16),
		errors:  make(chan error, 1),
		log:     log,
	}
	if err := s.addTree(root); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}
	return s, nil
}

func (s *FSSource) Events() <-chan Event { return s.events }
func (s *FSSource) Errors() <-chan error { return s.errors }

// WatchList returns the directories currently watched.
func (s *FSSource) WatchList() []string {
	return s.watcher.WatchList()
}

// Run forwards fsnotify notifications until ctx is cancelled, then closes
// the watcher and both channels.
func (s *FSSource) Run(ctx context.Context) error {
	defer close(s.events)
	defer close(s.errors)
	defer s.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-s.watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := s.addTree(ev.Name); err != nil {
						s.log.Warn("failed to watch new directory", zap.String("path", ev.Name), zap.Error(err))
					}
				}
			}
			select {
			case s.events <- Event{Op: opName(ev.Op), Path: ev.Name}:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return nil
			}
			select {
			case s.errors <- err:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (s *FSSource) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := s.watcher.Add(path); err != nil {
			return err
		}
		s.log.Debug("watching directory", zap.String("path", path))
		return nil
	})
}

func opName(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "modify"
	case op.Has(fsnotify.Remove):
		return "delete"
	case op.Has(fsnotify.Rename):
		return "rename"
	case op.Has(fsnotify.Chmod):
		return "chmod"
	default:
		return op.String()
	}
}
