package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := NewRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}
