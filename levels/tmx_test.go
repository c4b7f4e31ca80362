package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTMXEmbeddedSample(t *testing.T) {
	tmx, err := LoadTMX("sample.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	if len(tmx.Tilesets) != 2 {
		t.Fatalf("expected 2 tilesets, got %d", len(tmx.Tilesets))
	}

	sheet := tmx.Tilesets[0]
	if sheet.IsCollection() || sheet.Atlas.Len() != 32 {
		t.Fatalf("sheet tileset: collection=%v frames=%d", sheet.IsCollection(), sheet.Atlas.Len())
	}
	if sheet.Image != "../assets/map-spritesheet.png" {
		t.Fatalf("sheet image path = %q", sheet.Image)
	}

	props := tmx.Tilesets[1]
	if !props.IsCollection() {
		t.Fatalf("props tileset should be an image collection")
	}
	if props.TileImages[1] != "../assets/enemy.png" {
		t.Fatalf("collection tile 1 = %q", props.TileImages[1])
	}

	if got := len(tmx.Cells(0)); got != 12*8 {
		t.Fatalf("floor cells = %d, want %d", got, 12*8)
	}
	if tmx.IsCollisionLayer(0) || !tmx.IsCollisionLayer(1) {
		t.Fatalf("only the props layer is a collision layer")
	}
}

func TestTMXCellsFlipCentreAndTileset(t *testing.T) {
	tmx, err := LoadTMX("sample.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	cells := tmx.Cells(1)
	if len(cells) != 3 {
		t.Fatalf("props cells = %d, want 3", len(cells))
	}

	first := cells[0]
	if first.Col != 0 || first.Row != 7 {
		t.Fatalf("first cell at (%d,%d), want (0,7)", first.Col, first.Row)
	}
	if first.LocalID != 4 || first.Tileset != tmx.Tilesets[0] {
		t.Fatalf("first cell local id %d", first.LocalID)
	}
	if !first.Flips.H || first.Flips.V {
		t.Fatalf("first cell flips %+v", first.Flips)
	}
	// Origin (-176,-112) plus layer offset (+4, -8).
	if first.X != -172 || first.Y != 7*32-120 {
		t.Fatalf("first cell world (%v,%v)", first.X, first.Y)
	}

	second := cells[1]
	if second.Tileset != tmx.Tilesets[1] || second.LocalID != 0 {
		t.Fatalf("second cell should use the collection tileset, got local %d", second.LocalID)
	}

	minX, minY, maxX, maxY := tmx.Bounds()
	if minX != -192 || maxX != 192 || minY != -128 || maxY != 128 {
		t.Fatalf("bounds (%v,%v)-(%v,%v)", minX, minY, maxX, maxY)
	}
}

func TestLoadTMXRejectsInvalidMaps(t *testing.T) {
	data, err := LevelsFS.ReadFile("sample.tmx")
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	tests := []struct {
		name     string
		old, new string
	}{
		{
			name: "isometric",
			old:  `orientation="orthogonal" renderorder`,
			new:  `orientation="isometric" renderorder`,
		},
		{
			name: "zero tile size",
			old:  `tilewidth="32" tileheight="32" infinite`,
			new:  `tilewidth="0" tileheight="32" infinite`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := strings.Replace(string(data), tc.old, tc.new, 1)
			if src == string(data) {
				t.Fatalf("sample.tmx has no %q", tc.old)
			}
			p := filepath.Join(t.TempDir(), "bad.tmx")
			if err := os.WriteFile(p, []byte(src), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := LoadTMX(p); err == nil || !errors.Is(err, ErrInvalidMap) {
				t.Fatalf("expected ErrInvalidMap, got %v", err)
			}
		})
	}
}

func TestLoadTMXMissing(t *testing.T) {
	if _, err := LoadTMX("missing.tmx"); err == nil {
		t.Fatalf("expected error")
	}
}
