package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/minkowski/internal/scene"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage spacetime events in the scene",
}

func init() {
	addCmd := &cobra.Command{
		Use:   "add <t> <x>",
		Short: "Add a spacetime event",
		Long: `Adds the event observed at coordinates (t, x) in the given frame.
The event is anchored in the rest frame under a fresh base label (A, B, ...)
and a transformed copy is stored in every registered frame under the base
label plus that frame's index.`,
		Args: cobra.ExactArgs(2),
		RunE: runEventAdd,
	}
	addCmd.Flags().String("frame", "", "frame the coordinates are observed in (default: rest frame)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all events across all frames",
		Args:  cobra.NoArgs,
		RunE:  runEventList,
	}

	eventCmd.AddCommand(addCmd)
	eventCmd.AddCommand(listCmd)
	rootCmd.AddCommand(eventCmd)
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	t, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("t: not a number: %q", args[0])
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("x: not a number: %q", args[1])
	}
	frame, _ := cmd.Flags().GetString("frame")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sc, reg, err := loadSession(cfg)
	if err != nil {
		return err
	}

	idx, err := reg.Lookup(frame)
	if err != nil {
		return err
	}
	if err := reg.AddEvent(idx, t, x); err != nil {
		return err
	}

	sc.Events = append(sc.Events, scene.EventEntry{T: t, X: x, Frame: frame})
	if err := scene.Save(cfg.ScenePath, sc); err != nil {
		return err
	}

	observer, _ := reg.Frame(idx)
	fmt.Fprintf(os.Stderr, "added event (%g, %g) observed in %s\n", t, x, observer.Name)
	return nil
}

func runEventList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, reg, err := loadSession(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tLABEL\tT\tX\tINTERVAL\tCAUSALITY")
	for _, f := range reg.Frames() {
		labels := make([]string, 0, len(f.Events))
		for label := range f.Events {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			ev := f.Events[label]
			fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\t%.4f\t%s\n",
				f.Name, ev.Name, ev.T, ev.X, ev.Interval, ev.Causality())
		}
	}
	return w.Flush()
}
