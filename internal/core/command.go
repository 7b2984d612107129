package core

import (
	"errors"
	"strings"
)

// CommandKind is a semantic player command, abstracted from how it was typed.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandDraw             // draw, d - turn cards from stock to waste
	CommandMove             // move, m <src> <dst> - move a card between piles
	CommandUndo             // undo, u - revert the last draw or move
	CommandHelp             // help, h - show the rules and commands
	CommandNew              // new, n - deal a fresh game
	CommandQuit             // quit, q - leave the game
)

// String returns a human-readable name for the command.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "None"
	case CommandDraw:
		return "Draw"
	case CommandMove:
		return "Move"
	case CommandUndo:
		return "Undo"
	case CommandHelp:
		return "Help"
	case CommandNew:
		return "New"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is a parsed line of player input.
// Src and Dst are raw pile tokens; games resolve them.
type Command struct {
	Kind CommandKind
	Src  string
	Dst  string
}

// Command parse errors.
var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMoveUsage      = errors.New("usage: move <source> <destination>")
)

// ParseCommand turns a typed line into a Command. Matching is
// case-insensitive and extra whitespace is ignored.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "d", "draw":
		return Command{Kind: CommandDraw}, nil
	case "u", "undo":
		return Command{Kind: CommandUndo}, nil
	case "h", "help":
		return Command{Kind: CommandHelp}, nil
	case "n", "new":
		return Command{Kind: CommandNew}, nil
	case "q", "quit":
		return Command{Kind: CommandQuit}, nil
	case "m", "move":
		if len(args) != 2 {
			return Command{}, ErrMoveUsage
		}
		return Command{Kind: CommandMove, Src: args[0], Dst: args[1]}, nil
	}
	return Command{}, ErrUnknownCommand
}
