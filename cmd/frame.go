package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/minkowski/internal/scene"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Manage inertial frames in the scene",
}

func init() {
	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Register a moving inertial frame",
		Long: `Registers a new inertial frame moving at the given velocity relative
to the rest frame (natural units, |v| < 1). The frame's color and index are
derived from its position in the registry. Omitting the name derives one from
the index (S1, S2, ...).`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFrameAdd,
	}
	addCmd.Flags().Float64("velocity", 0, "frame velocity in units of c, in (-1, 1) (required)")
	_ = addCmd.MarkFlagRequired("velocity")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered frames",
		Args:  cobra.NoArgs,
		RunE:  runFrameList,
	}

	frameCmd.AddCommand(addCmd)
	frameCmd.AddCommand(listCmd)
	rootCmd.AddCommand(frameCmd)
}

func runFrameAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, _ := cmd.Flags().GetFloat64("velocity")
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	sc, reg, err := loadSession(cfg)
	if err != nil {
		return err
	}
	idx, err := reg.Register(name, v)
	if err != nil {
		return err
	}
	registered, err := reg.Frame(idx)
	if err != nil {
		return err
	}

	sc.Frames = append(sc.Frames, scene.FrameEntry{Name: registered.Name, Velocity: v})
	if err := scene.Save(cfg.ScenePath, sc); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "registered frame %s (index %d, v=%+.3f)\n", registered.Name, idx, v)
	return nil
}

func runFrameList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, reg, err := loadSession(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tVELOCITY\tCOLOR\tEVENTS")
	for _, f := range reg.Frames() {
		fmt.Fprintf(w, "%d\t%s\t%+.3f\t%s\t%d\n", f.Index, f.Name, f.V, f.Color, len(f.Events))
	}
	return w.Flush()
}
