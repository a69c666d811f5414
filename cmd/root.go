package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "minkowski",
	Short: "Minkowski diagrams for 1+1D special relativity",
	Long: `Minkowski computes and propagates spacetime events across inertial
reference frames under 1+1-dimensional special relativity (c = 1), and draws
the resulting Minkowski diagram in the terminal. Frames and events live in a
TOML scene file; every event is anchored in the rest frame and re-projected
into all registered frames.`,
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .minkowski.yaml)")
	rootCmd.PersistentFlags().String("scene", "", "scene file (default .minkowski/scene.toml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI colors")

	_ = viper.BindPFlag("scene_path", rootCmd.PersistentFlags().Lookup("scene"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".minkowski")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MINKOWSKI")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault renders the scene when a scene file exists in the cwd.
// Otherwise it falls back to showing help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(cfg.ScenePath); os.IsNotExist(statErr) {
		return cmd.Help()
	}
	// Delegate to the render subcommand.
	return runRender(renderCmd, nil)
}
