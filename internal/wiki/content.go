package wiki

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// File-backed pages: Markdown files in the content directory are
// mirrored into the wiki as published system pages. The filename
// (minus extension) is the slug; a leading "# Title" heading names the
// page. Edits on disk win over edits made through the web.

// LoadContent syncs every .md file under dir into the wiki. A missing
// directory is not an error; running without file-backed content is
// normal.
func (s *Service) LoadContent(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		if err := s.loadContentFile(ctx, filepath.Join(dir, entry.Name())); err != nil {
			s.log.WithError(err).WithField("file", entry.Name()).Warn("content file not loaded")
		}
	}
	return nil
}

// WatchContent reloads content files as they change on disk, until the
// context is canceled. It blocks; run it in its own goroutine.
func (s *Service) WatchContent(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}
	s.log.WithField("dir", dir).Info("watching content directory")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".md") {
				continue
			}
			if err := s.loadContentFile(ctx, event.Name); err != nil {
				s.log.WithError(err).WithField("file", event.Name).Warn("content file not reloaded")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.WithError(err).Warn("content watcher error")
		}
	}
}

func (s *Service) loadContentFile(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	content := string(raw)
	slug := Slugify(strings.TrimSuffix(filepath.Base(path), ".md"))
	title := contentTitle(content, slug)

	existing, err := s.store.PageBySlug(ctx, slug)
	if err == nil {
		if existing.Content == content && existing.Title == title {
			return nil
		}
		snapshot := Revision{
			PageID:   existing.ID,
			Title:    existing.Title,
			Content:  existing.Content,
			Summary:  existing.Summary,
			EditedBy: System.Name,
			Note:     "synced from content file",
		}
		if err := s.store.AddRevision(ctx, &snapshot); err != nil {
			return err
		}
		existing.Title = title
		existing.Content = content
		existing.Summary = Summarize(content)
		existing.UpdatedBy = System.Name
		existing.Published = true
		if err := s.store.UpdatePage(ctx, &existing); err != nil {
			return err
		}
		s.invalidateIndex()
		return nil
	}

	_, err = s.CreatePage(ctx, System, Draft{
		Title:     title,
		Slug:      slug,
		Content:   content,
		Published: true,
	})
	return err
}

// contentTitle extracts the first level-one heading, falling back to a
// title-cased slug.
func contentTitle(content, slug string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
