package web

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soma-satoro/PyReach/internal/account"
	"github.com/soma-satoro/PyReach/internal/platform/errors"
	"github.com/soma-satoro/PyReach/internal/wiki"
	"github.com/soma-satoro/PyReach/internal/wiki/markdown"
	"github.com/soma-satoro/PyReach/internal/wiki/search"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// base carries the fields every template needs.
type base struct {
	GameName string
	Viewer   wiki.Viewer
	Error    string
}

func (s *Server) base(c *gin.Context) base {
	return base{GameName: s.name, Viewer: viewerOf(c)}
}

// renderError maps a domain error onto a status page.
func (s *Server) renderError(c *gin.Context, err error) {
	status := errors.CodeOf(err).HTTPStatus()
	page := s.base(c)
	page.Error = errorMessage(err)
	c.HTML(status, "error.html", gin.H{"Base": page, "Status": status})
}

func (s *Server) handleIndex(c *gin.Context) {
	viewer := viewerOf(c)
	featured, err := s.wiki.Featured(c.Request.Context(), viewer)
	if err != nil {
		s.renderError(c, err)
		return
	}
	categories, err := s.wiki.Categories(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Base":       s.base(c),
		"Featured":   featured,
		"Categories": categories,
	})
}

func (s *Server) handleLoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Base": s.base(c), "Next": c.Query("next")})
}

func (s *Server) handleLogin(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	password := c.PostForm("password")

	acct, err := s.store.AccountByName(c.Request.Context(), name)
	if err == nil {
		err = acct.CheckPassword(password)
	}
	if err != nil {
		page := s.base(c)
		page.Error = "Unknown account or wrong password."
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Base": page, "Next": c.PostForm("next")})
		return
	}

	token, err := s.auth.Issue(acct, timeNow())
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, safeNext(c.PostForm("next")))
}

func (s *Server) handleRegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Base": s.base(c)})
}

func (s *Server) handleRegister(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	acct, err := account.New(name, email, password)
	if err == nil {
		err = s.store.CreateAccount(c.Request.Context(), acct)
	}
	if err != nil {
		page := s.base(c)
		page.Error = errorMessage(err)
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"Base": page})
		return
	}

	token, err := s.auth.Issue(acct, timeNow())
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleLogout(c *gin.Context) {
	s.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handlePages(c *gin.Context) {
	pages, err := s.wiki.Pages(c.Request.Context(), viewerOf(c))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "pages.html", gin.H{"Base": s.base(c), "Pages": pages})
}

func (s *Server) handlePage(c *gin.Context) {
	page, err := s.wiki.Page(c.Request.Context(), viewerOf(c), c.Param("slug"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "page.html", gin.H{
		"Base":     s.base(c),
		"Page":     page,
		"Editable": page.EditableBy(viewerOf(c)),
	})
}

func (s *Server) handleCategory(c *gin.Context) {
	category, pages, err := s.wiki.Category(c.Request.Context(), viewerOf(c), c.Param("slug"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "category.html", gin.H{
		"Base":     s.base(c),
		"Category": category,
		"Pages":    pages,
	})
}

func (s *Server) handleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	var hits []search.Hit
	if query != "" {
		var err error
		hits, err = s.wiki.Search(c.Request.Context(), viewerOf(c), query, 25)
		if err != nil {
			s.renderError(c, err)
			return
		}
	}
	c.HTML(http.StatusOK, "search.html", gin.H{"Base": s.base(c), "Query": query, "Hits": hits})
}

func (s *Server) handleNewForm(c *gin.Context) {
	categories, err := s.wiki.Categories(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Base":       s.base(c),
		"Categories": categories,
		"Action":     "/wiki/new",
	})
}

func (s *Server) handleCreate(c *gin.Context) {
	page, err := s.wiki.CreatePage(c.Request.Context(), viewerOf(c), draftFromForm(c))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/wiki/page/"+page.Slug)
}

func (s *Server) handleEditForm(c *gin.Context) {
	page, err := s.wiki.PageForEdit(c.Request.Context(), viewerOf(c), c.Param("slug"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	categories, err := s.wiki.Categories(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Base":       s.base(c),
		"Page":       page,
		"Categories": categories,
		"Action":     "/wiki/page/" + page.Slug + "/edit",
	})
}

func (s *Server) handleUpdate(c *gin.Context) {
	page, err := s.wiki.UpdatePage(c.Request.Context(), viewerOf(c), c.Param("slug"),
		draftFromForm(c), strings.TrimSpace(c.PostForm("note")))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/wiki/page/"+page.Slug)
}

func (s *Server) handleDelete(c *gin.Context) {
	if err := s.wiki.DeletePage(c.Request.Context(), viewerOf(c), c.Param("slug")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/wiki")
}

func (s *Server) handleRevisions(c *gin.Context) {
	slug := c.Param("slug")
	revisions, err := s.wiki.Revisions(c.Request.Context(), viewerOf(c), slug)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "revisions.html", gin.H{
		"Base":      s.base(c),
		"Slug":      slug,
		"Revisions": revisions,
	})
}

func (s *Server) handleRestore(c *gin.Context) {
	revisionID, err := strconv.ParseInt(c.PostForm("revision"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "bad revision id")
		return
	}
	page, err := s.wiki.Restore(c.Request.Context(), viewerOf(c), c.Param("slug"), revisionID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/wiki/page/"+page.Slug)
}

// handlePreview renders submitted Markdown to an HTML fragment for the
// editor's live preview.
func (s *Server) handlePreview(c *gin.Context) {
	rendered, err := markdown.Render(c.PostForm("content"))
	if err != nil {
		c.String(http.StatusBadRequest, "render failed")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(rendered))
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	order, _ := strconv.Atoi(c.PostForm("order"))
	_, err := s.wiki.CreateCategory(c.Request.Context(), viewerOf(c),
		c.PostForm("name"), c.PostForm("description"), c.PostForm("parent"), order)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	if err := s.wiki.DeleteCategory(c.Request.Context(), viewerOf(c), c.Param("slug")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func draftFromForm(c *gin.Context) wiki.Draft {
	return wiki.Draft{
		Title:        c.PostForm("title"),
		Summary:      c.PostForm("summary"),
		Content:      c.PostForm("content"),
		CategorySlug: c.PostForm("category"),
		Tags:         splitTags(c.PostForm("tags")),
		Published:    c.PostForm("published") == "on",
		StaffOnly:    c.PostForm("staff_only") == "on",
		Featured:     c.PostForm("featured") == "on",
	}
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

func errorMessage(err error) string {
	var domainErr *errors.Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}
