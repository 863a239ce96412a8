// Package mcp exposes the simulator over the Model Context Protocol so an
// assistant can start games, advance turns, and read the transcript.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// activeSession is the singleton simulation (one per stdio process).
var activeSession *SimSession

// decksFile is the path to the decks YAML file, set by main.
var decksFile string

// SetDecksFile sets the path to the decks YAML file.
func SetDecksFile(path string) {
	decksFile = path
}

// RegisterTools adds all simulation tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(stepTurnTool(), handleStepTurn)
	s.AddTool(playUntilOverTool(), handlePlayUntilOver)
	s.AddTool(getStateTool(), handleGetState)
	s.AddTool(getTranscriptTool(), handleGetTranscript)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new automated Veil simulation between two scripted players. "+
			"Replaces any previous simulation. Returns the opening state."),
		mcp.WithString("template0", mcp.Description("Deck template name for seat 0 (from decks.yaml; default 'balanced')")),
		mcp.WithString("template1", mcp.Description("Deck template name for seat 1 (defaults to template0)")),
		mcp.WithString("player0", mcp.Description("Display name for seat 0 (default 'Alice')")),
		mcp.WithString("player1", mcp.Description("Display name for seat 1 (default 'Bob')")),
		mcp.WithNumber("seed", mcp.Description("Deck shuffle seed; 0 shuffles from the clock")),
		mcp.WithNumber("max_turns", mcp.Description("Turn cap for play_until_over (default 30)")),
	)
}

func stepTurnTool() mcp.Tool {
	return mcp.NewTool("step_turn",
		mcp.WithDescription("Advance the simulation by exactly one turn and return the transcript lines it produced."),
	)
}

func playUntilOverTool() mcp.Tool {
	return mcp.NewTool("play_until_over",
		mcp.WithDescription("Run the simulation until a winner emerges or the turn cap is reached."),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current board state without advancing the simulation. Read-only."),
	)
}

func getTranscriptTool() mcp.Tool {
	return mcp.NewTool("get_transcript",
		mcp.WithDescription("Get the full transcript of the simulation so far. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	template0 := request.GetString("template0", "balanced")
	template1 := request.GetString("template1", template0)
	player0 := request.GetString("player0", "")
	player1 := request.GetString("player1", "")
	seed := request.GetInt("seed", 0)
	maxTurns := request.GetInt("max_turns", 0)

	sess, err := NewSimSession(decksFile, template0, template1, player0, player1, int64(seed), maxTurns)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	activeSession = sess
	return mcp.NewToolResultText(respondJSON(sess.State())), nil
}

func handleStepTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(activeSession.StepTurn())), nil
}

func handlePlayUntilOver(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(activeSession.PlayUntilOver())), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(activeSession.State())), nil
}

func handleGetTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(activeSession.Transcript())), nil
}
