package web

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		parsed, err := url.Parse(origin)
		return err == nil && parsed.Host == r.Host
	},
}

// socketWriter adapts a websocket connection to the io.Writer the game
// session writes lines to. Each Write becomes one text frame.
type socketWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *socketWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// handlePlay serves the browser game client page.
func (s *Server) handlePlay(c *gin.Context) {
	if s.game == nil {
		c.String(http.StatusServiceUnavailable, "game server not running")
		return
	}
	c.HTML(http.StatusOK, "play.html", gin.H{"Base": s.base(c)})
}

// handleSocket upgrades to a websocket and runs a full game session
// over it, exactly as telnet would.
func (s *Server) handleSocket(c *gin.Context) {
	if s.game == nil {
		c.String(http.StatusServiceUnavailable, "game server not running")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	remote := c.ClientIP()
	session := s.game.NewSession(&socketWriter{conn: conn}, remote)
	defer session.Close()
	session.Greet()

	ctx := c.Request.Context()
	for {
		kind, message, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		session.HandleLine(ctx, string(message))
		if session.Closed() {
			return
		}
	}
}
