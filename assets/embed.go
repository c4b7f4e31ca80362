package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

var (
	cacheMu sync.Mutex
	cache   = make(map[string]*ebiten.Image)
)

// FS exposes the embedded assets, rooted at the assets directory.
func FS() fs.FS {
	return assetsFS
}

// LoadImage loads an image by assets-relative path, preferring a copy on disk
// under assets/ so art can be iterated on without rebuilding. Results are
// cached by cleaned path.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)

	cacheMu.Lock()
	img, ok := cache[clean]
	cacheMu.Unlock()
	if ok {
		return img, nil
	}

	decoded, err := DecodeImage(clean)
	if err != nil {
		return nil, err
	}
	img = ebiten.NewImageFromImage(decoded)

	cacheMu.Lock()
	cache[clean] = img
	cacheMu.Unlock()
	return img, nil
}

// DecodeImage decodes an asset without creating a GPU image.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", path, err)
	}
	return img, nil
}

// LoadFile loads an asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	if b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %q: %w", path, err)
	}
	return b, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	for {
		switch {
		case strings.HasPrefix(s, "./"):
			s = strings.TrimPrefix(s, "./")
		case strings.HasPrefix(s, "../"):
			s = strings.TrimPrefix(s, "../")
		default:
			return strings.TrimPrefix(s, "assets/")
		}
	}
}
