package main

import (
	"flag"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/terminal"
	"github.com/sheikhrachel/go-gol-term/utils"
)

func main() {
	config, err := utils.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	stdoutFd := int(os.Stdout.Fd())
	config = fitToTerminal(config, stdoutFd)

	board, seed, err := initializeGame(config)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	displayGameInfo(config, board, seed, terminal.IsTerminal(stdoutFd))

	run := runTerminal
	if config.Screen {
		run = runScreen
	}
	if err := run(config, board, seed); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}
