package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/soma-satoro/PyReach/internal/platform/errors"
	"github.com/soma-satoro/PyReach/internal/wiki"
)

// The Store implements wiki.Store.

// CreateCategory inserts a category and fills in its ID.
func (s *Store) CreateCategory(ctx context.Context, category *wiki.Category) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO wiki_categories (name, slug, description, parent_id, display_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		category.Name, category.Slug, category.Description, toNullInt64(category.ParentID),
		category.DisplayOrder, toMillis(category.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return errors.WithMetadata(errors.CodeWikiSlugTaken, "category slug is taken",
				map[string]string{"slug": category.Slug})
		}
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("category id: %w", err)
	}
	return nil
}

// UpdateCategory persists category changes.
func (s *Store) UpdateCategory(ctx context.Context, category *wiki.Category) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`UPDATE wiki_categories SET name = ?, slug = ?, description = ?, parent_id = ?, display_order = ?
		 WHERE id = ?`,
		category.Name, category.Slug, category.Description, toNullInt64(category.ParentID),
		category.DisplayOrder, category.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category. Pages in it become uncategorized.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	_, err := s.sqlDB.ExecContext(ctx, `DELETE FROM wiki_categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// CategoryBySlug looks up a category.
func (s *Store) CategoryBySlug(ctx context.Context, slug string) (wiki.Category, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, slug, description, parent_id, display_order, created_at
		 FROM wiki_categories WHERE slug = ?`, slug)
	category, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return wiki.Category{}, errors.WithMetadata(errors.CodeWikiCategoryNotFound, "category not found",
			map[string]string{"slug": slug})
	}
	return category, err
}

// Categories lists every category ordered for display.
func (s *Store) Categories(ctx context.Context) ([]wiki.Category, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, slug, description, parent_id, display_order, created_at
		 FROM wiki_categories ORDER BY display_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []wiki.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, category)
	}
	return out, rows.Err()
}

// CreatePage inserts a page and fills in its ID.
func (s *Store) CreatePage(ctx context.Context, page *wiki.Page) error {
	now := time.Now().UTC()
	if page.CreatedAt.IsZero() {
		page.CreatedAt = now
	}
	if page.UpdatedAt.IsZero() {
		page.UpdatedAt = now
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO wiki_pages
		 (slug, title, summary, content, category_id, tags, published, staff_only, featured, views,
		  created_by, updated_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		page.Slug, page.Title, page.Summary, page.Content, toNullInt64(page.CategoryID),
		joinTags(page.Tags), page.Published, page.StaffOnly, page.Featured, page.Views,
		page.CreatedBy, page.UpdatedBy, toMillis(page.CreatedAt), toMillis(page.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return errors.WithMetadata(errors.CodeWikiSlugTaken, "page slug is taken",
				map[string]string{"slug": page.Slug})
		}
		return fmt.Errorf("insert page: %w", err)
	}
	page.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("page id: %w", err)
	}
	return nil
}

// UpdatePage persists page changes and bumps updated_at.
func (s *Store) UpdatePage(ctx context.Context, page *wiki.Page) error {
	page.UpdatedAt = time.Now().UTC()
	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE wiki_pages SET slug = ?, title = ?, summary = ?, content = ?, category_id = ?,
		 tags = ?, published = ?, staff_only = ?, featured = ?, updated_by = ?, updated_at = ?
		 WHERE id = ?`,
		page.Slug, page.Title, page.Summary, page.Content, toNullInt64(page.CategoryID),
		joinTags(page.Tags), page.Published, page.StaffOnly, page.Featured,
		page.UpdatedBy, toMillis(page.UpdatedAt), page.ID)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	if affected == 0 {
		return errors.New(errors.CodeWikiPageNotFound, "page not found")
	}
	return nil
}

// DeletePage removes a page and its revisions.
func (s *Store) DeletePage(ctx context.Context, id int64) error {
	_, err := s.sqlDB.ExecContext(ctx, `DELETE FROM wiki_pages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// PageBySlug looks up a page.
func (s *Store) PageBySlug(ctx context.Context, slug string) (wiki.Page, error) {
	row := s.sqlDB.QueryRowContext(ctx, selectPage+` WHERE slug = ?`, slug)
	page, err := scanPage(row)
	if err == sql.ErrNoRows {
		return wiki.Page{}, errors.WithMetadata(errors.CodeWikiPageNotFound, "page not found",
			map[string]string{"slug": slug})
	}
	return page, err
}

// Pages lists every page, newest updates first.
func (s *Store) Pages(ctx context.Context) ([]wiki.Page, error) {
	return s.queryPages(ctx, selectPage+` ORDER BY updated_at DESC`)
}

// PagesInCategory lists a category's pages by title.
func (s *Store) PagesInCategory(ctx context.Context, categoryID int64) ([]wiki.Page, error) {
	return s.queryPages(ctx, selectPage+` WHERE category_id = ? ORDER BY title`, categoryID)
}

// IncrementViews bumps a page's view counter.
func (s *Store) IncrementViews(ctx context.Context, id int64) error {
	_, err := s.sqlDB.ExecContext(ctx, `UPDATE wiki_pages SET views = views + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// AddRevision stores a page snapshot.
func (s *Store) AddRevision(ctx context.Context, revision *wiki.Revision) error {
	if revision.CreatedAt.IsZero() {
		revision.CreatedAt = time.Now().UTC()
	}
	result, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO wiki_revisions (page_id, title, content, summary, edited_by, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		revision.PageID, revision.Title, revision.Content, revision.Summary,
		revision.EditedBy, revision.Note, toMillis(revision.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert revision: %w", err)
	}
	revision.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("revision id: %w", err)
	}
	return nil
}

// Revisions lists a page's revisions, newest first.
func (s *Store) Revisions(ctx context.Context, pageID int64) ([]wiki.Revision, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, page_id, title, content, summary, edited_by, note, created_at
		 FROM wiki_revisions WHERE page_id = ? ORDER BY id DESC`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	var out []wiki.Revision
	for rows.Next() {
		revision, err := scanRevision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, revision)
	}
	return out, rows.Err()
}

// RevisionByID looks up one revision.
func (s *Store) RevisionByID(ctx context.Context, id int64) (wiki.Revision, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, page_id, title, content, summary, edited_by, note, created_at
		 FROM wiki_revisions WHERE id = ?`, id)
	revision, err := scanRevision(row)
	if err == sql.ErrNoRows {
		return wiki.Revision{}, errors.New(errors.CodeWikiRevisionNotFound, "revision not found")
	}
	return revision, err
}

const selectPage = `SELECT id, slug, title, summary, content, category_id, tags, published,
 staff_only, featured, views, created_by, updated_by, created_at, updated_at FROM wiki_pages`

func (s *Store) queryPages(ctx context.Context, query string, args ...any) ([]wiki.Page, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var out []wiki.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, page)
	}
	return out, rows.Err()
}

func scanCategory(row rowScanner) (wiki.Category, error) {
	var category wiki.Category
	var parentID sql.NullInt64
	var createdAt int64
	err := row.Scan(&category.ID, &category.Name, &category.Slug, &category.Description,
		&parentID, &category.DisplayOrder, &createdAt)
	if err != nil {
		return wiki.Category{}, err
	}
	category.ParentID = fromNullInt64(parentID)
	category.CreatedAt = fromMillis(createdAt)
	return category, nil
}

func scanPage(row rowScanner) (wiki.Page, error) {
	var page wiki.Page
	var categoryID sql.NullInt64
	var tags string
	var createdAt, updatedAt int64
	err := row.Scan(&page.ID, &page.Slug, &page.Title, &page.Summary, &page.Content,
		&categoryID, &tags, &page.Published, &page.StaffOnly, &page.Featured, &page.Views,
		&page.CreatedBy, &page.UpdatedBy, &createdAt, &updatedAt)
	if err != nil {
		return wiki.Page{}, err
	}
	page.CategoryID = fromNullInt64(categoryID)
	page.Tags = splitTags(tags)
	page.CreatedAt = fromMillis(createdAt)
	page.UpdatedAt = fromMillis(updatedAt)
	return page, nil
}

func scanRevision(row rowScanner) (wiki.Revision, error) {
	var revision wiki.Revision
	var createdAt int64
	err := row.Scan(&revision.ID, &revision.PageID, &revision.Title, &revision.Content,
		&revision.Summary, &revision.EditedBy, &revision.Note, &createdAt)
	if err != nil {
		return wiki.Revision{}, err
	}
	revision.CreatedAt = fromMillis(createdAt)
	return revision, nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
