package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pharmacie-tassigny/site/backend/internal/content"
	"github.com/spf13/cobra"
)

const debounce = 300 * time.Millisecond

var watch bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every content document against its schema",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVarP(&watch, "watch", "w", false, "validate again whenever a content file changes")
}

func runValidate(cmd *cobra.Command, args []string) error {
	loader, err := content.NewLoader(contentDir, cfg.Site.Locale)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	err = report(out, loader)
	if !watch {
		return err
	}

	return watchContent(out, loader)
}

func report(out io.Writer, loader *content.Loader) error {
	err := loader.CheckAll()
	if err != nil {
		fmt.Fprintf(out, "content in %s is invalid:\n%v\n", loader.Root(), err)
		return errors.New("content validation failed")
	}

	fmt.Fprintf(out, "content in %s is valid (%d documents)\n", loader.Root(), len(content.Files))
	return nil
}

// watchContent validates again after each burst of writes to a content file,
// until interrupted.
func watchContent(out io.Writer, loader *content.Loader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace files, so the directory is watched rather than each file
	if err := watcher.Add(loader.Root()); err != nil {
		return fmt.Errorf("watch %s: %w", loader.Root(), err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()

		timer := time.NewTimer(debounce)
		timer.Stop()

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !slices.Contains(content.Files, filepath.Base(event.Name)) || event.Op == fsnotify.Chmod {
					continue
				}
				slog.Debug("content file changed", "file", event.Name, "op", event.Op.String())
				timer.Reset(debounce)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("content watcher error", "error", err)
			case <-timer.C:
				_ = report(out, loader)
			}
		}
	}()

	slog.Info("watching content files (CTRL+C to stop)", "dir", loader.Root())
	<-sigChan

	cancel()
	wg.Wait()
	slog.Info("content watcher stopped")
	return nil
}
