package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the scene's Minkowski diagram",
	Long: `Renders the scene as a Minkowski diagram in rest-frame coordinates:
rest axes, the light cone, each moving frame's skewed axes, labeled event
points, and the invariant hyperbola through each event.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Int("width", 0, "diagram width in columns (default from config)")
	renderCmd.Flags().Int("height", 0, "diagram height in rows (default from config)")
	renderCmd.Flags().Float64("t-range", 0, "half-range of the t axis (default from config)")
	renderCmd.Flags().Float64("x-range", 0, "half-range of the x axis (default from config)")
	renderCmd.Flags().Bool("no-hyperbolas", false, "hide invariant hyperbolas")
	renderCmd.Flags().Bool("no-worldlines", false, "hide moving-frame axes")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if w, _ := cmd.Flags().GetInt("width"); w > 0 {
		cfg.Width = w
	}
	if h, _ := cmd.Flags().GetInt("height"); h > 0 {
		cfg.Height = h
	}
	if tr, _ := cmd.Flags().GetFloat64("t-range"); tr > 0 {
		cfg.TRange = tr
	}
	if xr, _ := cmd.Flags().GetFloat64("x-range"); xr > 0 {
		cfg.XRange = xr
	}
	if off, _ := cmd.Flags().GetBool("no-hyperbolas"); off {
		cfg.ShowHyperbolas = false
	}
	if off, _ := cmd.Flags().GetBool("no-worldlines"); off {
		cfg.ShowWorldlines = false
	}

	_, reg, err := loadSession(cfg)
	if err != nil {
		return err
	}

	r := newRenderer(cfg)
	fmt.Fprint(os.Stdout, r.Render(reg))
	fmt.Fprint(os.Stdout, r.Legend(reg))
	return nil
}
