package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kmreiser/veil/internal/game"
	"github.com/kmreiser/veil/internal/log"
)

func main() {
	decksFile := flag.String("decks", "decks.yaml", "path to decks YAML file")
	template0 := flag.String("template0", "balanced", "deck template for seat 0")
	template1 := flag.String("template1", "", "deck template for seat 1 (defaults to -template0)")
	player0 := flag.String("player0", "Alice", "display name for seat 0")
	player1 := flag.String("player1", "Bob", "display name for seat 1")
	turns := flag.Int("turns", 0, "run exactly this many turns instead of playing to completion")
	maxTurns := flag.Int("max-turns", game.DefaultMaxTurns, "turn cap when playing to completion")
	seed := flag.Int64("seed", 0, "deck shuffle seed (0 shuffles from the clock)")
	flag.Parse()

	if *template1 == "" {
		*template1 = *template0
	}

	g, err := game.NewGameFromTemplates(*decksFile, *template0, *template1, game.GameConfig{
		Player0: *player0,
		Player1: *player1,
		Logger:  log.NewTextLogger(os.Stdout),
		Seed:    *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *turns > 0 {
		for i := 0; i < *turns && !g.Over(); i++ {
			g.Step()
		}
		return
	}
	g.PlayUntilOver(*maxTurns)
}
