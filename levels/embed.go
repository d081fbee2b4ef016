package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.lvl
var LevelsFS embed.FS

// Default lists the embedded levels in play order.
var Default = []string{"one.lvl", "two.lvl", "three.lvl", "four.lvl"}

// Load returns the raw contents of a level. A file under ./levels on disk
// shadows the embedded copy so levels can be edited without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return data, nil
}

// LoadGrid reads and decodes a level by name.
func LoadGrid(name string) (Grid, error) {
	data, err := Load(name)
	if err != nil {
		return nil, err
	}
	grid, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("levels: decode %s: %w", name, err)
	}
	return grid, nil
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".lvl"
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
