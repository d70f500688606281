package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/soma-satoro/PyReach/internal/account"
	"github.com/soma-satoro/PyReach/internal/character"
	"github.com/soma-satoro/PyReach/internal/core/dice"
	"github.com/soma-satoro/PyReach/internal/game/xp"
	"github.com/soma-satoro/PyReach/internal/platform/errors"
)

// state tracks where a session is in the login flow.
type state int

const (
	stateLogin state = iota
	stateChargen
	statePlaying
	stateClosed
)

// Session is one connected player, over telnet or a websocket.
type Session struct {
	game   *Game
	remote string

	writeMu sync.Mutex
	out     io.Writer

	state     state
	account   *account.Account
	character *character.Character

	// extended tracks an in-progress extended action, one per session.
	extended     *dice.ExtendedAction
	extendedPool string
}

// NewSession attaches a fresh session to the game. Output lines are
// written to out; the transport feeds input through HandleLine.
func (g *Game) NewSession(out io.Writer, remote string) *Session {
	session := &Session{game: g, out: out, remote: remote}
	g.register(session)
	return session
}

// Close detaches the session. Safe to call more than once.
func (s *Session) Close() {
	if s.state == stateClosed {
		return
	}
	s.state = stateClosed
	s.game.unregister(s)
}

// Closed reports whether the session has ended.
func (s *Session) Closed() bool {
	return s.state == stateClosed
}

// Greet writes the connection banner.
func (s *Session) Greet() {
	s.writeLine(fmt.Sprintf("Welcome to %s.", s.game.name))
	s.writeLine("  connect <name> <password>  log in to an existing account")
	s.writeLine("  register <name> <password> create a new account")
}

func (s *Session) writeLine(line string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	fmt.Fprintf(s.out, "%s\r\n", line)
}

func (s *Session) writeError(err error) {
	var domainError *errors.Error
	if stderrors.As(err, &domainError) {
		s.writeLine("Error: " + domainError.Message)
		return
	}
	s.writeLine("Error: " + err.Error())
}

// HandleLine processes one line of player input.
func (s *Session) HandleLine(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	switch s.state {
	case stateLogin:
		s.handleLogin(ctx, line)
	case stateChargen:
		s.handleChargen(ctx, line)
	case statePlaying:
		s.handleCommand(ctx, line)
	}
}

func (s *Session) handleLogin(ctx context.Context, line string) {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	switch command {
	case "connect":
		if len(fields) < 3 {
			s.writeLine("Usage: connect <name> <password>")
			return
		}
		acct, err := s.game.store.AccountByName(ctx, fields[1])
		if err != nil {
			s.writeError(err)
			return
		}
		if err := acct.CheckPassword(strings.Join(fields[2:], " ")); err != nil {
			s.writeError(err)
			return
		}
		s.account = acct
		s.enterChargen(ctx)
	case "register":
		if len(fields) < 3 {
			s.writeLine("Usage: register <name> <password>")
			return
		}
		acct, err := account.New(fields[1], "", strings.Join(fields[2:], " "))
		if err != nil {
			s.writeError(err)
			return
		}
		if err := s.game.store.CreateAccount(ctx, acct); err != nil {
			s.writeError(err)
			return
		}
		s.account = acct
		s.writeLine(fmt.Sprintf("Account %s created.", acct.Name))
		s.enterChargen(ctx)
	case "quit":
		s.writeLine("Goodbye.")
		s.Close()
	default:
		s.writeLine("Log in first: connect <name> <password>")
	}
}

func (s *Session) enterChargen(ctx context.Context) {
	s.state = stateChargen
	list, err := s.game.store.CharactersForAccount(ctx, s.account.ID)
	if err != nil {
		s.writeError(err)
		return
	}
	if len(list) == 0 {
		s.writeLine("You have no characters yet.")
	} else {
		s.writeLine("Your characters:")
		for _, c := range list {
			s.writeLine("  " + c.Name())
		}
	}
	s.writeLine("  play <name>                  enter play")
	s.writeLine("  new <name> [template]        create a character (mortal, vampire, werewolf, mage, changeling)")
}

func (s *Session) handleChargen(ctx context.Context, line string) {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	switch command {
	case "play":
		if len(fields) < 2 {
			s.writeLine("Usage: play <name>")
			return
		}
		c, err := s.game.store.CharacterByName(ctx, strings.Join(fields[1:], " "))
		if err != nil {
			s.writeError(err)
			return
		}
		if c.AccountID != s.account.ID && !s.account.Staff {
			s.writeLine("That character belongs to another account.")
			return
		}
		s.character = c
		s.state = statePlaying
		s.writeLine(fmt.Sprintf("You are now playing %s. Type help for commands.", c.Name()))
		s.game.Broadcast(s, fmt.Sprintf("%s has connected.", c.Name()))
	case "new":
		if len(fields) < 2 {
			s.writeLine("Usage: new <name> [template]")
			return
		}
		template := xp.Mortal
		name := strings.Join(fields[1:], " ")
		if len(fields) >= 3 {
			if parsed, ok := parseTemplate(fields[len(fields)-1]); ok {
				template = parsed
				name = strings.Join(fields[1:len(fields)-1], " ")
			}
		}
		c := character.New(s.account.ID, name, template)
		if err := s.game.store.CreateCharacter(ctx, c); err != nil {
			s.writeError(err)
			return
		}
		s.writeLine(fmt.Sprintf("Character %s (%s) created.", c.Name(), template))
	case "quit":
		s.writeLine("Goodbye.")
		s.Close()
	default:
		s.writeLine("Pick a character first: play <name> or new <name>.")
	}
}

func parseTemplate(s string) (xp.Template, bool) {
	switch strings.ToLower(s) {
	case "mortal":
		return xp.Mortal, true
	case "vampire":
		return xp.Vampire, true
	case "werewolf":
		return xp.Werewolf, true
	case "mage":
		return xp.Mage, true
	case "changeling":
		return xp.Changeling, true
	default:
		return "", false
	}
}
