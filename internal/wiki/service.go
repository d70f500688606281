package wiki

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/soma-satoro/PyReach/internal/platform/errors"
	"github.com/soma-satoro/PyReach/internal/wiki/search"
)

// Service applies wiki business rules over a Store and keeps the
// search index current. Safe for concurrent use.
type Service struct {
	store Store
	log   *logrus.Entry

	mu    sync.RWMutex
	index *search.Index // nil when stale; rebuilt on demand
}

// NewService wraps a store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		log:   logrus.WithField("component", "wiki"),
	}
}

// Draft is the author-supplied content for a page create or update.
type Draft struct {
	Title        string
	Slug         string // derived from Title when empty
	Summary      string // derived from Content when empty
	Content      string
	CategorySlug string
	Tags         []string
	Published    bool
	StaffOnly    bool
	Featured     bool
}

// CreatePage creates a page for the viewer. Pages from non-staff
// authors start unpublished regardless of the draft; staff-only and
// featured flags are staff-only as well.
func (s *Service) CreatePage(ctx context.Context, viewer Viewer, draft Draft) (Page, error) {
	if viewer.Name == "" {
		return Page{}, errors.New(errors.CodeWikiForbidden, "login required to create pages")
	}
	page, err := s.pageFromDraft(ctx, viewer, draft)
	if err != nil {
		return Page{}, err
	}
	page.CreatedBy = viewer.Name
	page.UpdatedBy = viewer.Name

	if err := s.store.CreatePage(ctx, &page); err != nil {
		return Page{}, err
	}
	s.invalidateIndex()
	s.log.WithFields(logrus.Fields{"slug": page.Slug, "by": viewer.Name}).Info("page created")
	return page, nil
}

// UpdatePage edits an existing page, snapshotting the previous content
// as a revision first.
func (s *Service) UpdatePage(ctx context.Context, viewer Viewer, slug string, draft Draft, note string) (Page, error) {
	current, err := s.store.PageBySlug(ctx, slug)
	if err != nil {
		return Page{}, err
	}
	if !current.EditableBy(viewer) {
		return Page{}, errors.New(errors.CodeWikiForbidden, "you cannot edit this page")
	}

	updated, err := s.pageFromDraft(ctx, viewer, draft)
	if err != nil {
		return Page{}, err
	}

	revision := Revision{
		PageID:   current.ID,
		Title:    current.Title,
		Content:  current.Content,
		Summary:  current.Summary,
		EditedBy: viewer.Name,
		Note:     note,
	}
	if err := s.store.AddRevision(ctx, &revision); err != nil {
		return Page{}, err
	}

	current.Title = updated.Title
	current.Slug = updated.Slug
	current.Summary = updated.Summary
	current.Content = updated.Content
	current.CategoryID = updated.CategoryID
	current.Tags = updated.Tags
	current.UpdatedBy = viewer.Name
	if viewer.Staff {
		current.Published = updated.Published
		current.StaffOnly = updated.StaffOnly
		current.Featured = updated.Featured
	}

	if err := s.store.UpdatePage(ctx, &current); err != nil {
		return Page{}, err
	}
	s.invalidateIndex()
	s.log.WithFields(logrus.Fields{"slug": current.Slug, "by": viewer.Name}).Info("page updated")
	return current, nil
}

// DeletePage removes a page and its revisions. Staff only.
func (s *Service) DeletePage(ctx context.Context, viewer Viewer, slug string) error {
	if !viewer.Staff {
		return errors.New(errors.CodeWikiForbidden, "only staff can delete pages")
	}
	page, err := s.store.PageBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.store.DeletePage(ctx, page.ID); err != nil {
		return err
	}
	s.invalidateIndex()
	s.log.WithFields(logrus.Fields{"slug": slug, "by": viewer.Name}).Info("page deleted")
	return nil
}

// Page fetches a page for reading and counts the view. Hidden pages
// return not-found rather than leaking their existence.
func (s *Service) Page(ctx context.Context, viewer Viewer, slug string) (Page, error) {
	page, err := s.store.PageBySlug(ctx, slug)
	if err != nil {
		return Page{}, err
	}
	if !page.ViewableBy(viewer) {
		return Page{}, errors.WithMetadata(errors.CodeWikiPageNotFound, "page not found",
			map[string]string{"slug": slug})
	}
	if err := s.store.IncrementViews(ctx, page.ID); err != nil {
		s.log.WithError(err).WithField("slug", slug).Warn("view count not incremented")
	}
	page.Views++
	return page, nil
}

// PageForEdit fetches a page without counting a view, for edit forms.
func (s *Service) PageForEdit(ctx context.Context, viewer Viewer, slug string) (Page, error) {
	page, err := s.store.PageBySlug(ctx, slug)
	if err != nil {
		return Page{}, err
	}
	if !page.EditableBy(viewer) {
		return Page{}, errors.New(errors.CodeWikiForbidden, "you cannot edit this page")
	}
	return page, nil
}

// Pages lists the pages the viewer may read, newest updates first.
func (s *Service) Pages(ctx context.Context, viewer Viewer) ([]Page, error) {
	pages, err := s.store.Pages(ctx)
	if err != nil {
		return nil, err
	}
	return filterViewable(pages, viewer), nil
}

// Featured lists the viewer-visible featured pages.
func (s *Service) Featured(ctx context.Context, viewer Viewer) ([]Page, error) {
	pages, err := s.Pages(ctx, viewer)
	if err != nil {
		return nil, err
	}
	featured := pages[:0]
	for _, page := range pages {
		if page.Featured {
			featured = append(featured, page)
		}
	}
	return featured, nil
}

// Categories lists every category in display order.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return s.store.Categories(ctx)
}

// Category fetches a category and the pages the viewer may read in it.
func (s *Service) Category(ctx context.Context, viewer Viewer, slug string) (Category, []Page, error) {
	category, err := s.store.CategoryBySlug(ctx, slug)
	if err != nil {
		return Category{}, nil, err
	}
	pages, err := s.store.PagesInCategory(ctx, category.ID)
	if err != nil {
		return Category{}, nil, err
	}
	return category, filterViewable(pages, viewer), nil
}

// CreateCategory adds a category. Staff only. The parent, when named,
// must exist.
func (s *Service) CreateCategory(ctx context.Context, viewer Viewer, name, description, parentSlug string, order int) (Category, error) {
	if !viewer.Staff {
		return Category{}, errors.New(errors.CodeWikiForbidden, "only staff can manage categories")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, errors.New(errors.CodeWikiTitleEmpty, "category name is required")
	}
	category := Category{
		Name:         name,
		Slug:         Slugify(name),
		Description:  strings.TrimSpace(description),
		DisplayOrder: order,
	}
	if parentSlug != "" {
		parent, err := s.store.CategoryBySlug(ctx, parentSlug)
		if err != nil {
			return Category{}, err
		}
		category.ParentID = &parent.ID
	}
	if err := s.store.CreateCategory(ctx, &category); err != nil {
		return Category{}, err
	}
	return category, nil
}

// DeleteCategory removes a category, leaving its pages uncategorized.
// Staff only.
func (s *Service) DeleteCategory(ctx context.Context, viewer Viewer, slug string) error {
	if !viewer.Staff {
		return errors.New(errors.CodeWikiForbidden, "only staff can manage categories")
	}
	category, err := s.store.CategoryBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return s.store.DeleteCategory(ctx, category.ID)
}

// Revisions lists a page's history for any viewer who can read it.
func (s *Service) Revisions(ctx context.Context, viewer Viewer, slug string) ([]Revision, error) {
	page, err := s.store.PageBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.ViewableBy(viewer) {
		return nil, errors.New(errors.CodeWikiPageNotFound, "page not found")
	}
	return s.store.Revisions(ctx, page.ID)
}

// Restore reverts a page to an earlier revision, snapshotting the
// current content first so the restore itself can be undone.
func (s *Service) Restore(ctx context.Context, viewer Viewer, slug string, revisionID int64) (Page, error) {
	page, err := s.store.PageBySlug(ctx, slug)
	if err != nil {
		return Page{}, err
	}
	if !page.EditableBy(viewer) {
		return Page{}, errors.New(errors.CodeWikiForbidden, "you cannot edit this page")
	}
	revision, err := s.store.RevisionByID(ctx, revisionID)
	if err != nil {
		return Page{}, err
	}
	if revision.PageID != page.ID {
		return Page{}, errors.New(errors.CodeWikiRevisionNotFound, "revision belongs to another page")
	}

	snapshot := Revision{
		PageID:   page.ID,
		Title:    page.Title,
		Content:  page.Content,
		Summary:  page.Summary,
		EditedBy: viewer.Name,
		Note:     "before restore",
	}
	if err := s.store.AddRevision(ctx, &snapshot); err != nil {
		return Page{}, err
	}

	page.Title = revision.Title
	page.Content = revision.Content
	page.Summary = revision.Summary
	page.UpdatedBy = viewer.Name
	if err := s.store.UpdatePage(ctx, &page); err != nil {
		return Page{}, err
	}
	s.invalidateIndex()
	return page, nil
}

// Search ranks viewer-visible pages against the query.
func (s *Service) Search(ctx context.Context, viewer Viewer, query string, limit int) ([]search.Hit, error) {
	index, err := s.searchIndex(ctx)
	if err != nil {
		return nil, err
	}
	// Over-fetch so visibility filtering still fills the limit.
	hits := index.Search(query, limit*4)

	visible := hits[:0]
	for _, hit := range hits {
		page, err := s.store.PageBySlug(ctx, hit.Slug)
		if err != nil {
			continue
		}
		if page.ViewableBy(viewer) {
			visible = append(visible, hit)
		}
		if limit > 0 && len(visible) >= limit {
			break
		}
	}
	return visible, nil
}

func (s *Service) pageFromDraft(ctx context.Context, viewer Viewer, draft Draft) (Page, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return Page{}, errors.New(errors.CodeWikiTitleEmpty, "page title is required")
	}
	slug := draft.Slug
	if slug == "" {
		slug = title
	}
	slug = Slugify(slug)
	if slug == "" {
		return Page{}, errors.New(errors.CodeWikiTitleEmpty, "title produces an empty slug")
	}

	summary := strings.TrimSpace(draft.Summary)
	if summary == "" {
		summary = Summarize(draft.Content)
	}

	page := Page{
		Slug:    slug,
		Title:   title,
		Summary: summary,
		Content: draft.Content,
		Tags:    draft.Tags,
	}
	if viewer.Staff {
		page.Published = draft.Published
		page.StaffOnly = draft.StaffOnly
		page.Featured = draft.Featured
	}
	if draft.CategorySlug != "" {
		category, err := s.store.CategoryBySlug(ctx, draft.CategorySlug)
		if err != nil {
			return Page{}, err
		}
		page.CategoryID = &category.ID
	}
	return page, nil
}

func filterViewable(pages []Page, viewer Viewer) []Page {
	visible := pages[:0]
	for _, page := range pages {
		if page.ViewableBy(viewer) {
			visible = append(visible, page)
		}
	}
	return visible
}

func (s *Service) invalidateIndex() {
	s.mu.Lock()
	s.index = nil
	s.mu.Unlock()
}

func (s *Service) searchIndex(ctx context.Context) (*search.Index, error) {
	s.mu.RLock()
	index := s.index
	s.mu.RUnlock()
	if index != nil {
		return index, nil
	}

	pages, err := s.store.Pages(ctx)
	if err != nil {
		return nil, err
	}
	documents := make([]search.Document, len(pages))
	for i, page := range pages {
		documents[i] = search.Document{
			Slug:    page.Slug,
			Title:   page.Title,
			Summary: page.Summary,
			Tags:    page.Tags,
			Content: page.Content,
		}
	}
	index = search.New(documents)

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()
	return index, nil
}
