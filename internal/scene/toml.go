package scene

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultPath is the conventional location for the scene file.
const DefaultPath = ".minkowski/scene.toml"

// Load reads a scene from the given path. If the file does not exist, it
// returns an empty scene and no error, allowing callers to proceed with a
// fresh session.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Scene{Meta: Header{Version: 1}}, nil
		}
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	var sc Scene
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &sc, nil
}

// Save writes the scene to the given path, creating parent directories as
// needed.
func Save(path string, sc *Scene) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(sc)
	if err != nil {
		return fmt.Errorf("marshaling scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scene: %w", err)
	}
	return nil
}
