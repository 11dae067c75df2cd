package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/internal/history"
	"github.com/marcus/dropdown/internal/tui"
	"github.com/marcus/dropdown/pkg/dropdown"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "dropdown",
	Short: "Terminal dropdown widget demo",
	Long: `dropdown - An interactive demo of a disclosure widget for the terminal.

A trigger button toggles a floating menu panel with keyboard navigation,
type-to-select, outside-click dismissal and configurable placement.
Selections are recorded and can be inspected with the history command.`,
	RunE: runDemo,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	addDemoFlags(rootCmd)
}

func addDemoFlags(cmd *cobra.Command) {
	cmd.Flags().String("placement", "", "Panel placement (e.g. bottom-start, top-end)")
	cmd.Flags().Int("distance", 0, "Offset between trigger and panel, in cells")
	cmd.Flags().Int("skidding", 0, "Offset along the trigger, in cells")
	cmd.Flags().Bool("hoist", false, "Position against the viewport instead of the clipping parent")
	cmd.Flags().Bool("close-on-select", true, "Close the panel when an item is selected")
	cmd.Flags().Bool("debug", false, "Write debug logs to .dropdown/debug.log")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for config and history storage
func getBaseDir() string {
	return baseDir
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return fmt.Errorf("the demo needs an interactive terminal")
	}

	dir := getBaseDir()

	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(dir, cfg.Debug)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer closeLog()

	store, err := history.Open(dir)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	model := tui.New(tui.Options{
		Title:  "dropdown " + version,
		Widget: cfg.Options(),
		Store:  store,
		Logger: logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// applyFlags overlays explicitly set flags onto the stored config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("placement") {
		p, _ := cmd.Flags().GetString("placement")
		if !dropdown.ValidPlacement(dropdown.Placement(p)) {
			return fmt.Errorf("unknown placement %q (valid: %s)", p, placementList())
		}
		cfg.Placement = p
	}
	if cmd.Flags().Changed("distance") {
		cfg.Distance, _ = cmd.Flags().GetInt("distance")
	}
	if cmd.Flags().Changed("skidding") {
		cfg.Skidding, _ = cmd.Flags().GetInt("skidding")
	}
	if cmd.Flags().Changed("hoist") {
		cfg.Hoist, _ = cmd.Flags().GetBool("hoist")
	}
	if cmd.Flags().Changed("close-on-select") {
		v, _ := cmd.Flags().GetBool("close-on-select")
		cfg.CloseOnSelect = &v
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
	}
	return nil
}

func placementList() string {
	var names []string
	for _, p := range dropdown.Placements() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// newLogger returns a logger for the TUI session. Without --debug it
// discards everything; with it, records go to a log file since stdout
// belongs to the terminal UI.
func newLogger(dir string, debug bool) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		})), func() {}, nil
	}

	logPath := filepath.Join(dir, ".dropdown", "debug.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, func() { f.Close() }, nil
}
