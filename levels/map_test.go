package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMapEmbeddedSandbox(t *testing.T) {
	m, err := LoadMap("sandbox.json")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if m.Width != 40 || m.Height != 30 || m.TileWidth != 32 || m.TileHeight != 32 {
		t.Fatalf("unexpected geometry %dx%d of %dx%d", m.Width, m.Height, m.TileWidth, m.TileHeight)
	}
	if len(m.Layers) != 4 {
		t.Fatalf("expected 4 layers, got %d", len(m.Layers))
	}
	if !m.Layers[2].IsCollision() {
		t.Fatalf("walls layer should be a collision layer")
	}
	if m.Layers[0].IsCollision() {
		t.Fatalf("ground layer should not be a collision layer")
	}
	if m.Layers[3].Visible {
		t.Fatalf("hidden layer should be invisible")
	}
	if m.Layers[1].Opacity != 0.8 {
		t.Fatalf("decor opacity = %v", m.Layers[1].Opacity)
	}
}

func TestLoadMapFromDisk(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tiny.json")
	if err := os.WriteFile(p, []byte(tinyMapJSON), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err := LoadMap(p)
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if got := m.TileCount(); got != 3 {
		t.Fatalf("TileCount=%d, want 3", got)
	}
}

func TestLoadMapMissing(t *testing.T) {
	if _, err := LoadMap("does-not-exist.json"); err == nil {
		t.Fatalf("expected error for missing map")
	}
}

func TestParseMapValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{name: "ok", mutate: func(s string) string { return s }},
		{name: "zero width", mutate: func(s string) string { return strings.Replace(s, `"width": 2`, `"width": 0`, 1) }, wantErr: "size"},
		{name: "zero tile size", mutate: func(s string) string { return strings.Replace(s, `"tilewidth": 16,`, `"tilewidth": 0,`, 1) }, wantErr: "tile size"},
		{name: "short layer", mutate: func(s string) string { return strings.Replace(s, `[1, 0, 2, 3]`, `[1, 0, 2]`, 1) }, wantErr: "want 4"},
		{name: "no tilesets", mutate: func(s string) string { return strings.Replace(s, tinyTilesetJSON, "", 1) }, wantErr: "no tilesets"},
		{name: "isometric", mutate: func(s string) string { return strings.Replace(s, "orthogonal", "isometric", 1) }, wantErr: "orientation"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMap([]byte(tc.mutate(tinyMapJSON)))
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !errors.Is(err, ErrInvalidMap) {
				t.Fatalf("expected ErrInvalidMap, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseMapTypeMismatch(t *testing.T) {
	bad := strings.Replace(tinyMapJSON, `"height": 2`, `"height": "two"`, 1)
	if _, err := ParseMap([]byte(bad)); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestBoolProperty(t *testing.T) {
	l := Layer{Properties: []Property{
		{Name: "collision", Type: "bool", Value: true},
		{Name: "legacy", Type: "string", Value: "TRUE"},
		{Name: "count", Type: "int", Value: 3.0},
	}}
	if !l.BoolProperty("collision") || !l.BoolProperty("legacy") {
		t.Fatalf("expected true properties")
	}
	if l.BoolProperty("count") || l.BoolProperty("missing") {
		t.Fatalf("expected false for non-bool or missing property")
	}
}

const tinyTilesetJSON = `{"columns": 2, "firstgid": 1, "image": "tiles.png", "imagewidth": 32, "imageheight": 32, "margin": 0, "name": "tiles", "spacing": 0, "tilecount": 4, "tilewidth": 16, "tileheight": 16}`

const tinyMapJSON = `{
  "width": 2,
  "height": 2,
  "tilewidth": 16,
  "tileheight": 16,
  "orientation": "orthogonal",
  "layers": [
    {"data": [1, 0, 2, 3], "width": 2, "height": 2, "name": "ground", "opacity": 1, "visible": true}
  ],
  "tilesets": [` + tinyTilesetJSON + `]
}`
