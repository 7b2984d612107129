// solitaire is a terminal Klondike game with a typed command prompt.
//
// Usage:
//
//	solitaire list              - List available variants
//	solitaire play [variant]    - Play a variant (default from config)
//	solitaire menu              - Start menu to pick a variant interactively
//	solitaire serve             - Start SSH server for remote play
//	solitaire scores [variant]  - Show high scores and win statistics
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible deal
//	--db <path>          - Set database path (default: ~/.solitaire/scores.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
//	--mono               - Use a monochrome theme
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-solitaire/internal/platform/tui"

	// Import games to register them
	_ "github.com/vovakirdan/tui-solitaire/internal/games/klondike"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagMono     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Klondike solitaire in your terminal",
	Long: `Solitaire is a terminal Klondike game driven by typed commands.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and win statistics

Examples:
  solitaire play
  solitaire play klondike3
  solitaire play --draw-mode 3 --seed 42
  solitaire menu
  solitaire serve --ssh :2222
  solitaire scores klondike`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagMono {
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.solitaire/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use a monochrome theme for menus and prompt")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newFileLogger returns a logger writing to ~/.solitaire/solitaire.log.
// The terminal belongs to the TUI while a game runs, so nothing is
// written to stderr. The returned closer must be called on exit.
func newFileLogger() (*log.Logger, io.Closer) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using warn\n", err)
		level = log.WarnLevel
	}

	var out io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		dir := filepath.Join(home, ".solitaire")
		if mkErr := os.MkdirAll(dir, 0o755); mkErr == nil {
			f, openErr := os.OpenFile(filepath.Join(dir, "solitaire.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if openErr == nil {
				out, closer = f, f
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "solitaire",
		Level:           level,
	})
	return logger, closer
}
