package server

import (
	"bufio"
	"context"
	"errors"
	"net"

	"github.com/sirupsen/logrus"
)

// Telnet serves the game over plain TCP lines.
type Telnet struct {
	game *Game
	log  *logrus.Entry
}

// NewTelnet wires a telnet front end around the game.
func NewTelnet(game *Game) *Telnet {
	return &Telnet{game: game, log: logrus.WithField("component", "telnet")}
}

// Serve accepts connections on addr until the context is canceled.
func (t *Telnet) Serve(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	t.log.WithField("addr", listener.Addr().String()).Info("telnet listening")

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go t.handle(ctx, conn)
	}
}

func (t *Telnet) handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	t.log.WithField("remote", remote).Info("connection opened")

	session := t.game.NewSession(conn, remote)
	defer session.Close()
	session.Greet()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 16*1024)
	for scanner.Scan() {
		session.HandleLine(ctx, scanner.Text())
		if session.Closed() {
			break
		}
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		t.log.WithError(err).WithField("remote", remote).Warn("connection read failed")
	}
	t.log.WithField("remote", remote).Info("connection closed")
}
