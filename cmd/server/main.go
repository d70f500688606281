package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	servercmd "github.com/soma-satoro/PyReach/internal/cmd/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := servercmd.Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Fatal("server exited")
	}
}
