package main

import (
	"context"
	"io"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/monkeyfront/logs"
)

// Watch re-processes a file whenever it is written or replaced, until ctx is done.
type Watch func(ctx context.Context, paths []string, stdout io.Writer, stderr io.Writer) error

func (Module) Watch(
	process Process,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Watch {
	return func(ctx context.Context, paths []string, stdout io.Writer, stderr io.Writer) error {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		// watch directories, editors often replace files by rename
		watched := make(map[string]string)
		for _, path := range paths {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			watched[abs] = path
			dir := filepath.Dir(abs)
			if !slices.Contains(watcher.WatchList(), dir) {
				if err := watcher.Add(dir); err != nil {
					return err
				}
			}
		}
		logger.InfoContext(ctx, "watching", "files", paths)

		for {
			select {

			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				path, ok := watched[event.Name]
				if !ok {
					continue
				}
				spanCtx, _ := newSpan(ctx, "changed", "file", path, "op", event.Op.String())
				inputs, err := readInputs([]string{path}, nil)
				if err != nil {
					// removed between event and read
					logger.WarnContext(spanCtx, "read", "file", path, "error", err)
					continue
				}
				if _, _, err := process(spanCtx, inputs, stdout, stderr); err != nil {
					return logs.WrapSpan(spanCtx, err)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.WarnContext(ctx, "watch error", "error", err)
			}
		}
	}
}
