// Package web serves the wiki application and the browser game client:
// session auth over signed cookies, Markdown pages rendered server
// side, and a websocket bridge into the telnet game.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soma-satoro/PyReach/internal/server"
	"github.com/soma-satoro/PyReach/internal/storage/sqlite"
	"github.com/soma-satoro/PyReach/internal/wiki"
	"github.com/soma-satoro/PyReach/internal/wiki/markdown"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server is the web application.
type Server struct {
	name  string
	store *sqlite.Store
	wiki  *wiki.Service
	game  *server.Game
	auth  *Auth
	log   *logrus.Entry
}

// New wires the web application. game may be nil when serving the wiki
// without the browser client, as in tests.
func New(name string, store *sqlite.Store, wikiService *wiki.Service, game *server.Game, auth *Auth) *Server {
	return &Server{
		name:  name,
		store: store,
		wiki:  wikiService,
		game:  game,
		auth:  auth,
		log:   logrus.WithField("component", "web"),
	}
}

var templateFuncs = template.FuncMap{
	"markdown": markdown.Render,
	"date": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
	"join": func(tags []string) string {
		return strings.Join(tags, ", ")
	},
	"deref": func(p *int64) int64 {
		if p == nil {
			return 0
		}
		return *p
	},
}

// Router builds the gin engine with every route attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLog(), s.sessions())

	tmpl := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", s.handleIndex)

	router.GET("/login", s.handleLoginForm)
	router.POST("/login", s.handleLogin)
	router.GET("/register", s.handleRegisterForm)
	router.POST("/register", s.handleRegister)
	router.POST("/logout", s.handleLogout)

	router.GET("/wiki", s.handlePages)
	router.GET("/wiki/search", s.handleSearch)
	router.GET("/wiki/category/:slug", s.handleCategory)
	router.GET("/wiki/page/:slug", s.handlePage)
	router.GET("/wiki/page/:slug/revisions", s.handleRevisions)

	authed := router.Group("/", requireLogin)
	authed.GET("/wiki/new", s.handleNewForm)
	authed.POST("/wiki/new", s.handleCreate)
	authed.GET("/wiki/page/:slug/edit", s.handleEditForm)
	authed.POST("/wiki/page/:slug/edit", s.handleUpdate)
	authed.POST("/wiki/page/:slug/restore", s.handleRestore)
	authed.POST("/preview", s.handlePreview)
	authed.GET("/play", s.handlePlay)
	authed.GET("/ws", s.handleSocket)

	staff := router.Group("/", requireStaff)
	staff.POST("/wiki/page/:slug/delete", s.handleDelete)
	staff.POST("/wiki/categories", s.handleCreateCategory)
	staff.POST("/wiki/category/:slug/delete", s.handleDeleteCategory)

	return router
}

// Serve runs the HTTP server until the context is canceled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- httpServer.ListenAndServe() }()
	s.log.WithField("addr", addr).Info("http listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

// requestLog is a small logrus access log, quieter than gin's default.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start).Round(time.Millisecond).String(),
		}).Debug("request")
	}
}
