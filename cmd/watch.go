package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/minkowski/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the diagram whenever the scene file changes",
	Long: `Watches the scene file and redraws the Minkowski diagram on every
change, so the scene can be edited in one terminal and viewed in another.
Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	render := func() {
		_, reg, err := loadSession(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		r := newRenderer(cfg)
		// Clear the screen between renders.
		fmt.Fprint(os.Stdout, "\033[2J\033[H")
		fmt.Fprint(os.Stdout, r.Render(reg))
		fmt.Fprint(os.Stdout, r.Legend(reg))
	}

	w, err := watch.New(cfg.ScenePath)
	if err != nil {
		return fmt.Errorf("watching %s: %w", cfg.ScenePath, err)
	}
	defer w.Close()

	render()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	for {
		select {
		case <-w.Changes():
			render()
		case <-sig:
			return nil
		}
	}
}
