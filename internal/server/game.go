// Package server implements the game itself: login sessions, the
// player command set and the telnet listener. The web layer drives the
// same sessions over websockets.
package server

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/soma-satoro/PyReach/internal/character"
	"github.com/soma-satoro/PyReach/internal/storage/sqlite"
)

// Game holds shared state for every connected session.
type Game struct {
	name  string
	store *sqlite.Store
	log   *logrus.Entry

	// now and seed are injection points for deterministic tests.
	now  func() time.Time
	seed func() int64

	mu       sync.Mutex
	sessions map[*Session]struct{}
}

// NewGame wires a game around the store.
func NewGame(name string, store *sqlite.Store) *Game {
	return &Game{
		name:     name,
		store:    store,
		log:      logrus.WithField("component", "game"),
		now:      func() time.Time { return time.Now().UTC() },
		seed:     func() int64 { return time.Now().UnixNano() },
		sessions: make(map[*Session]struct{}),
	}
}

func (g *Game) register(session *Session) {
	g.mu.Lock()
	g.sessions[session] = struct{}{}
	g.mu.Unlock()
}

func (g *Game) unregister(session *Session) {
	g.mu.Lock()
	delete(g.sessions, session)
	g.mu.Unlock()
}

// Broadcast writes a line to every session with a character in play,
// except the sender.
func (g *Game) Broadcast(from *Session, line string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for session := range g.sessions {
		if session == from || session.character == nil {
			continue
		}
		session.writeLine(line)
	}
}

// Who lists characters currently in play, sorted.
func (g *Game) Who() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	var names []string
	for session := range g.sessions {
		if session.character != nil {
			names = append(names, session.character.Name())
		}
	}
	sort.Strings(names)
	return names
}

// SessionFor returns the session currently playing the named
// character, or nil when they are offline.
func (g *Game) SessionFor(name string) *Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	for session := range g.sessions {
		if session.character != nil && strings.EqualFold(session.character.Name(), name) {
			return session
		}
	}
	return nil
}

// save persists a character after a mutating command.
func (g *Game) save(ctx context.Context, c *character.Character) {
	if err := g.store.SaveCharacter(ctx, c); err != nil {
		g.log.WithError(err).WithField("character", c.Name()).Error("character not saved")
	}
}
