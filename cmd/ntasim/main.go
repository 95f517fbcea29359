// Command ntasim is the interactive CLI of spec.md §6.3: load a scenario,
// inspect its state, and step through its transitions one at a time or
// at random, navigating the resulting history forward and back.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	repl := NewREPL(os.Stdout, os.Stderr, logger)

	if len(os.Args) > 1 {
		repl.dispatch([]string{"load", os.Args[1]})
		if repl.sim == nil {
			fmt.Fprintln(os.Stderr, "ntasim: failed to load scenario, exiting")
			os.Exit(1)
		}
	}

	os.Exit(repl.Run(os.Stdin))
}
