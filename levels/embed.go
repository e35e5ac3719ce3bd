package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/megaman/tiled"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is named on the command line.
const DefaultLevel = "stage.json"

// LoadMap decodes a Tiled level. A path that exists on disk wins over the
// embedded copy of the same name.
func LoadMap(name string) (*tiled.Map, error) {
	if name == "" {
		name = DefaultLevel
	}
	if _, err := os.Stat(name); err == nil {
		m, err := tiled.Load(name)
		if err != nil {
			return nil, fmt.Errorf("levels: load %s: %w", name, err)
		}
		return m, nil
	}
	clean := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	m, err := tiled.LoadFS(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: load embedded %s: %w", clean, err)
	}
	return m, nil
}

// List returns the embedded level names.
func List() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
