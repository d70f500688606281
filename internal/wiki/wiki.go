// Package wiki implements the game wiki: categorized Markdown pages
// with revision history, visibility rules and full-text search.
package wiki

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// Category groups pages. Categories may nest one level via ParentID.
type Category struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	ParentID     *int64    `json:"parent_id,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// Page is a wiki article.
type Page struct {
	ID         int64     `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary,omitempty"`
	Content    string    `json:"content"`
	CategoryID *int64    `json:"category_id,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	Published  bool      `json:"published"`
	StaffOnly  bool      `json:"staff_only"`
	Featured   bool      `json:"featured"`
	Views      int64     `json:"views"`
	CreatedBy  string    `json:"created_by"`
	UpdatedBy  string    `json:"updated_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Revision is a historical snapshot of a page, taken before each edit.
type Revision struct {
	ID        int64     `json:"id"`
	PageID    int64     `json:"page_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary,omitempty"`
	EditedBy  string    `json:"edited_by"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Viewer identifies who is reading the wiki for visibility checks.
type Viewer struct {
	Name  string
	Staff bool
}

// Anonymous is the viewer for readers who are not logged in.
var Anonymous = Viewer{}

// ViewableBy reports whether the viewer may read the page. Staff see
// everything; authors see their own drafts; everyone else sees only
// published, non-staff pages.
func (p Page) ViewableBy(viewer Viewer) bool {
	if viewer.Staff {
		return true
	}
	if p.StaffOnly {
		return false
	}
	if !p.Published {
		return viewer.Name != "" && viewer.Name == p.CreatedBy
	}
	return true
}

// EditableBy reports whether the viewer may change the page. Only
// staff and the page's creator can edit.
func (p Page) EditableBy(viewer Viewer) bool {
	if viewer.Staff {
		return true
	}
	return viewer.Name != "" && viewer.Name == p.CreatedBy
}

// Store is the persistence layer the wiki service runs on.
type Store interface {
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id int64) error
	CategoryBySlug(ctx context.Context, slug string) (Category, error)
	Categories(ctx context.Context) ([]Category, error)

	CreatePage(ctx context.Context, page *Page) error
	UpdatePage(ctx context.Context, page *Page) error
	DeletePage(ctx context.Context, id int64) error
	PageBySlug(ctx context.Context, slug string) (Page, error)
	Pages(ctx context.Context) ([]Page, error)
	PagesInCategory(ctx context.Context, categoryID int64) ([]Page, error)
	IncrementViews(ctx context.Context, id int64) error

	AddRevision(ctx context.Context, revision *Revision) error
	Revisions(ctx context.Context, pageID int64) ([]Revision, error)
	RevisionByID(ctx context.Context, id int64) (Revision, error)
}

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9]+`)
	slugCollapse = regexp.MustCompile(`-{2,}`)
)

// Slugify turns a title into a URL slug: lowercase, alphanumeric runs
// joined by single hyphens.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

var markupStripper = strings.NewReplacer(
	"#", "", "*", "", "`", "", ">", "", "_", "",
	"[", "", "]", "", "(", " ", ")", " ",
)

// summaryLength caps auto-derived summaries.
const summaryLength = 200

// Summarize derives a plain-text summary from Markdown content when
// the author did not supply one.
func Summarize(content string) string {
	text := markupStripper.Replace(content)
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= summaryLength {
		return text
	}
	cut := text[:summaryLength]
	if idx := strings.LastIndex(cut, " "); idx > summaryLength/2 {
		cut = cut[:idx]
	}
	return cut + "..."
}
