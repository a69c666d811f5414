package cmd

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/papapumpkin/minkowski/internal/config"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	t.Parallel()
	want := map[string]bool{
		"frame":  false,
		"event":  false,
		"render": false,
		"watch":  false,
		"tui":    false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestNewRenderer_FollowsConfig(t *testing.T) {
	t.Parallel()
	cfg := config.Config{
		Width:          120,
		Height:         40,
		TRange:         8,
		XRange:         10,
		NoColor:        true,
		ShowHyperbolas: true,
		ShowWorldlines: false,
		ShowLightCone:  true,
	}
	r := newRenderer(cfg)
	if r.Width != 120 || r.Height != 40 {
		t.Errorf("renderer size = %dx%d, want 120x40", r.Width, r.Height)
	}
	if r.TRange != 8 || r.XRange != 10 {
		t.Errorf("renderer ranges = (%g, %g), want (8, 10)", r.TRange, r.XRange)
	}
	if r.UseColor {
		t.Error("NoColor should disable renderer color")
	}
	if !r.ShowHyperbolas || r.ShowWorldlines || !r.ShowLightCone {
		t.Error("layer toggles do not follow config")
	}
}

func TestLoadSession_EmptySceneYieldsRestFrame(t *testing.T) {
	viper.Reset()
	cfg := config.Config{ScenePath: t.TempDir() + "/scene.toml"}
	sc, reg, err := loadSession(cfg)
	if err != nil {
		t.Fatalf("loadSession: %v", err)
	}
	if len(sc.Frames) != 0 {
		t.Errorf("empty scene has %d frames, want 0", len(sc.Frames))
	}
	if reg.Len() != 1 {
		t.Errorf("registry has %d frames, want just the rest frame", reg.Len())
	}
}
