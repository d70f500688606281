package main

import (
	"context"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	seedcmd "github.com/soma-satoro/PyReach/internal/cmd/seed"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("parse flags")
	}

	if err := seedcmd.Run(context.Background(), cfg); err != nil {
		log.WithError(err).Fatal("seed failed")
	}
}
