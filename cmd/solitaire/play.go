package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-solitaire/internal/config"
	"github.com/vovakirdan/tui-solitaire/internal/core"
	"github.com/vovakirdan/tui-solitaire/internal/games/klondike"
	"github.com/vovakirdan/tui-solitaire/internal/platform/tui"
	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

var (
	flagConfig   string
	flagDrawMode int
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game of Klondike",
	Long: `Deal a game of Klondike and play it by typing commands.

Commands:
  draw, d             - Turn cards from Stock to Waste
  move, m <src> <dst> - Move a card (piles: S, W, F1-F4, T1-T7)
  undo, u             - Take back the last action
  new, n              - Deal a new game
  help, h             - Toggle the help screen
  quit, q             - Leave the game

Keys:
  Up/Down             - Recall previous commands
  Ctrl+S              - Save the board to ~/.solitaire/screenshots
  Esc/Ctrl+C          - Quit

Without a variant the draw mode comes from --draw-mode, then from
draw_count in the config file (~/.solitaire/configs/solitaire.yaml).

Examples:
  solitaire play
  solitaire play klondike3
  solitaire play --draw-mode 3
  solitaire play --seed 42
  solitaire play --config ./my-solitaire.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom solitaire config YAML")
	playCmd.Flags().IntVar(&flagDrawMode, "draw-mode", 0, "Cards per draw: 1 or 3 (default from config)")
}

func runPlay(_ *cobra.Command, args []string) {
	klondike.SetConfigPath(flagConfig)

	gameID, err := resolveVariant(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'solitaire list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger, closer := newFileLogger()
	defer closer.Close()

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	logger.Info("starting game", "game", gameID, "seed", cfg.Seed)
	if err := tui.Run(game, store, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// resolveVariant picks the variant from the argument, the --draw-mode
// flag or the configured draw count, in that order.
// A config that fails to load is an error even when a variant is given.
func resolveVariant(args []string) (string, error) {
	cfg, err := config.LoadSolitaire(flagConfig)
	if err != nil {
		return "", err
	}

	if len(args) == 1 {
		if flagDrawMode != 0 {
			return "", fmt.Errorf("give either a variant or --draw-mode, not both")
		}
		return args[0], nil
	}
	if flagDrawMode != 0 {
		mode, modeErr := config.ParseDrawMode(flagDrawMode)
		if modeErr != nil {
			return "", modeErr
		}
		config.ApplyDrawMode(&cfg, mode)
	}
	return klondike.VariantID(cfg.DrawCount), nil
}
