package assets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed textures/*.png shaders/*.kage
var assetsFS embed.FS

// FS returns the embedded asset tree. Paths are assets-relative, e.g.
// "textures/block.png".
func FS() fs.FS {
	return assetsFS
}

// LoadFile loads an asset by assets-relative path. A file of the same name
// under ./assets on disk takes precedence over the embedded copy.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(clean)
}

// Overlay is an fs.FS that resolves through LoadFile.
type Overlay struct{}

func (Overlay) Open(name string) (fs.File, error) {
	clean := cleanAssetPath(name)
	if f, err := os.Open(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return f, nil
	}
	return assetsFS.Open(clean)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
