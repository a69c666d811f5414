package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/minkowski/internal/scene"
	"github.com/papapumpkin/minkowski/internal/tui"
	"github.com/papapumpkin/minkowski/internal/watch"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive diagram viewer",
	Long: `Launches the interactive Minkowski diagram viewer. Frames and events
can be added without leaving the viewer, layers can be toggled, and edits to
the scene file from other processes show up live.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sc, err := scene.Load(cfg.ScenePath)
	if err != nil {
		return err
	}

	m, err := tui.NewModel(cfg.ScenePath, sc, newRenderer(cfg))
	if err != nil {
		return fmt.Errorf("building scene %s: %w", cfg.ScenePath, err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Bridge scene-file changes into the program. The watcher is optional:
	// the viewer still works if the scene directory does not exist yet.
	if w, watchErr := watch.New(cfg.ScenePath); watchErr == nil {
		defer w.Close()
		go func() {
			for range w.Changes() {
				p.Send(tui.MsgSceneChanged{})
			}
		}()
	} else {
		fmt.Fprintf(os.Stderr, "warning: watcher unavailable: %v\n", watchErr)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
