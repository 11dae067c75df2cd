package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/internal/history"
)

// runCommand executes the root command with args against a temp base dir
// and returns the captured output.
func runCommand(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	oldBase := baseDir
	baseDir = dir
	defer func() { baseDir = oldBase }()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")

	out, err := runCommand(t, t.TempDir(), "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "1.2.3") {
		t.Errorf("output = %q, want version string", out)
	}
}

func TestHistoryCommand(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		out, err := runCommand(t, t.TempDir(), "history")
		if err != nil {
			t.Fatalf("history failed: %v", err)
		}
		if !strings.Contains(out, "No selections") {
			t.Errorf("output = %q, want empty-history message", out)
		}
	})

	t.Run("lists recorded selections", func(t *testing.T) {
		dir := t.TempDir()

		store, err := history.Open(dir)
		if err != nil {
			t.Fatalf("history.Open failed: %v", err)
		}
		if err := store.Record("Copy", "copy", "bottom-start"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		store.Close()

		out, err := runCommand(t, dir, "history")
		if err != nil {
			t.Fatalf("history failed: %v", err)
		}
		if !strings.Contains(out, "Copy") || !strings.Contains(out, "bottom-start") {
			t.Errorf("output = %q, want the recorded selection", out)
		}
	})

	t.Run("clear removes selections", func(t *testing.T) {
		dir := t.TempDir()

		store, err := history.Open(dir)
		if err != nil {
			t.Fatalf("history.Open failed: %v", err)
		}
		if err := store.Record("Cut", "cut", ""); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		store.Close()

		if _, err := runCommand(t, dir, "history", "clear"); err != nil {
			t.Fatalf("history clear failed: %v", err)
		}

		out, err := runCommand(t, dir, "history")
		if err != nil {
			t.Fatalf("history failed: %v", err)
		}
		if !strings.Contains(out, "No selections") {
			t.Errorf("output = %q, want empty history after clear", out)
		}
	})
}

func TestApplyFlags(t *testing.T) {
	newFlagCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "test"}
		addDemoFlags(cmd)
		return cmd
	}

	t.Run("rejects unknown placement", func(t *testing.T) {
		cmd := newFlagCmd()
		cmd.Flags().Set("placement", "sideways")

		err := applyFlags(cmd, &config.Config{})
		if err == nil {
			t.Fatal("applyFlags should reject an unknown placement")
		}
		if !strings.Contains(err.Error(), "bottom-start") {
			t.Errorf("error = %v, want it to list valid placements", err)
		}
	})

	t.Run("changed flags overlay the config", func(t *testing.T) {
		cfg := &config.Config{Placement: "top"}
		cmd := newFlagCmd()
		cmd.Flags().Set("placement", "left-end")
		cmd.Flags().Set("distance", "2")

		if err := applyFlags(cmd, cfg); err != nil {
			t.Fatalf("applyFlags failed: %v", err)
		}
		if cfg.Placement != "left-end" {
			t.Errorf("Placement = %q, want left-end", cfg.Placement)
		}
		if cfg.Distance != 2 {
			t.Errorf("Distance = %d, want 2", cfg.Distance)
		}
	})

	t.Run("untouched flags leave the config alone", func(t *testing.T) {
		cfg := &config.Config{Placement: "top", Distance: 5}

		if err := applyFlags(newFlagCmd(), cfg); err != nil {
			t.Fatalf("applyFlags failed: %v", err)
		}
		if cfg.Placement != "top" || cfg.Distance != 5 {
			t.Errorf("config mutated without changed flags: %+v", cfg)
		}
	})
}

func TestDemoRequiresTerminal(t *testing.T) {
	if os.Getenv("CI") == "" && isTerminal() {
		t.Skip("stdout is a terminal; cannot exercise the non-tty guard")
	}

	_, err := runCommand(t, t.TempDir())
	if err == nil {
		t.Fatal("running the demo without a terminal should fail")
	}
	if !strings.Contains(err.Error(), "terminal") {
		t.Errorf("error = %v, want a terminal requirement message", err)
	}
}
