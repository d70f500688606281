package web

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/soma-satoro/PyReach/internal/account"
	"github.com/soma-satoro/PyReach/internal/wiki"
)

const (
	sessionCookie = "pyreach_session"
	sessionTTL    = 7 * 24 * time.Hour
)

// viewerKey is the gin context key holding the authenticated viewer.
const viewerKey = "viewer"

// Auth issues and verifies the signed session cookies the web app uses.
type Auth struct {
	secret []byte
}

// NewAuth builds an Auth from the configured secret. An empty secret is
// replaced with a random one, which invalidates sessions on restart.
func NewAuth(secret string) *Auth {
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			panic(fmt.Sprintf("session secret: %v", err))
		}
		secret = hex.EncodeToString(buf)
		log.Warn("no session secret configured; web sessions will not survive a restart")
	}
	return &Auth{secret: []byte(secret)}
}

type sessionClaims struct {
	Name  string `json:"name"`
	Staff bool   `json:"staff"`
	jwt.RegisteredClaims
}

// Issue signs a session token for the account.
func (a *Auth) Issue(acct *account.Account, now time.Time) (string, error) {
	claims := sessionClaims{
		Name:  acct.Name,
		Staff: acct.Staff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(acct.ID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Verify parses a session token back into a viewer.
func (a *Auth) Verify(token string) (wiki.Viewer, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return wiki.Anonymous, err
	}
	if !parsed.Valid {
		return wiki.Anonymous, jwt.ErrTokenUnverifiable
	}
	return wiki.Viewer{Name: claims.Name, Staff: claims.Staff}, nil
}

// sessions is middleware that resolves the session cookie into a viewer
// for every request. Requests without a valid cookie proceed anonymous.
func (s *Server) sessions() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := wiki.Anonymous
		if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
			if parsed, err := s.auth.Verify(token); err == nil {
				viewer = parsed
			}
		}
		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// requireLogin redirects anonymous visitors to the login form.
func requireLogin(c *gin.Context) {
	if viewerOf(c).Name == "" {
		c.Redirect(http.StatusSeeOther, "/login?next="+c.Request.URL.Path)
		c.Abort()
	}
}

// requireStaff rejects non-staff visitors.
func requireStaff(c *gin.Context) {
	viewer := viewerOf(c)
	if viewer.Name == "" {
		c.Redirect(http.StatusSeeOther, "/login?next="+c.Request.URL.Path)
		c.Abort()
		return
	}
	if !viewer.Staff {
		c.String(http.StatusForbidden, "staff only")
		c.Abort()
	}
}

func viewerOf(c *gin.Context) wiki.Viewer {
	if value, ok := c.Get(viewerKey); ok {
		if viewer, ok := value.(wiki.Viewer); ok {
			return viewer
		}
	}
	return wiki.Anonymous
}

func (s *Server) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}
