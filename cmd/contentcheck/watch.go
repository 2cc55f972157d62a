package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-parse content documents whenever they are saved",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			return watch(ctx, dir, logger)
		},
	}
	cmd.Flags().String("dir", defaultContentDir(), "content directory")
	return cmd
}

// watch logs a summary of every known document once, then again each time one
// is written, until ctx is done.
func watch(ctx context.Context, dir string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the files so editors that replace files
	// on save are still seen.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	for _, name := range []string{content.ProfileFile, content.ExperienceFile, content.CatalogFile, content.ContactFile} {
		report(dir, name, logger)
	}

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
			report(dir, filepath.Base(event.Name), logger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

// report parses one document and logs what it contained. Files that are not
// content documents are ignored.
func report(dir, name string, logger *slog.Logger) {
	kind, ok := content.KindForFile(name)
	if !ok {
		return
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		logger.Error("reading document", "file", name, "error", err)
		return
	}
	record, _ := content.ParseDocument(kind, string(data))
	logger.Info("parsed", append([]any{"file", name}, summarize(record)...)...)
}

// summarize returns slog key/value pairs describing a parsed record.
func summarize(record any) []any {
	switch r := record.(type) {
	case content.Profile:
		return []any{"name", r.Name, "philosophy", len(r.Philosophy), "bio_chars", len(r.Biography)}
	case content.Experience:
		return []any{"internships", len(r.Internships), "awards", len(r.Awards), "certifications", len(r.Certifications)}
	case []content.Project:
		untitled := 0
		for _, p := range r {
			if p.Category == "" {
				untitled++
			}
		}
		return []any{"projects", len(r), "missing_category", untitled}
	case content.Contact:
		return []any{"email", r.Email, "social", len(r.Social), "message_chars", len(r.Message)}
	}
	return nil
}
