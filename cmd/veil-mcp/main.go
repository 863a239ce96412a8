package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	veilmcp "github.com/kmreiser/veil/internal/mcp"
)

func main() {
	decks := flag.String("decks", "decks.yaml", "path to decks YAML file")
	flag.Parse()

	veilmcp.SetDecksFile(*decks)

	s := server.NewMCPServer("veil", "1.0.0")
	veilmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
