package levels

import (
	"image"
	"testing"
)

func TestNewAtlasGeometry(t *testing.T) {
	cases := []struct {
		name   string
		ts     Tileset
		frames int
		probe  int
		want   image.Rectangle
	}{
		{
			name:   "plain grid",
			ts:     Tileset{Name: "plain", Columns: 8, TileCount: 32, TileWidth: 32, TileHeight: 32, ImageWidth: 256, ImageHeight: 128},
			frames: 32,
			probe:  9,
			want:   image.Rect(32, 32, 64, 64),
		},
		{
			name:   "margin and spacing",
			ts:     Tileset{Name: "spaced", Columns: 3, TileCount: 6, TileWidth: 16, TileHeight: 16, Margin: 2, Spacing: 1},
			frames: 6,
			probe:  4,
			want:   image.Rect(2+17, 2+17, 2+17+16, 2+17+16),
		},
		{
			name:   "rows from image height",
			ts:     Tileset{Name: "derived", Columns: 4, TileWidth: 10, TileHeight: 10, ImageWidth: 40, ImageHeight: 30},
			frames: 12,
			probe:  11,
			want:   image.Rect(30, 20, 40, 30),
		},
		{
			name:   "columns from image width",
			ts:     Tileset{Name: "cols", TileCount: 4, TileWidth: 8, TileHeight: 8, ImageWidth: 16, ImageHeight: 16},
			frames: 4,
			probe:  3,
			want:   image.Rect(8, 8, 16, 16),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := NewAtlas(tc.ts)
			if err != nil {
				t.Fatalf("NewAtlas: %v", err)
			}
			if a.Len() != tc.frames {
				t.Fatalf("frames=%d, want %d", a.Len(), tc.frames)
			}
			got, ok := a.Index(tc.probe)
			if !ok || got != tc.want {
				t.Fatalf("frame %d = %v (ok=%v), want %v", tc.probe, got, ok, tc.want)
			}
		})
	}
}

func TestNewAtlasRejectsEmptyGeometry(t *testing.T) {
	if _, err := NewAtlas(Tileset{Name: "bad", TileWidth: 0, TileHeight: 16}); err == nil {
		t.Fatalf("expected error for zero tile width")
	}
	if _, err := NewAtlas(Tileset{Name: "bad", TileWidth: 16, TileHeight: 16}); err == nil {
		t.Fatalf("expected error without columns or image size")
	}
}

func TestAtlasFrameWrapsWithinTileset(t *testing.T) {
	a := AtlasFromGrid(32, 32, 8, 4, 0, 0)
	if _, ok := a.Frame(0); ok {
		t.Fatalf("tile id 0 must be empty")
	}
	first, _ := a.Frame(1)
	if first != image.Rect(0, 0, 32, 32) {
		t.Fatalf("id 1 = %v", first)
	}
	last, _ := a.Frame(32)
	if last != image.Rect(224, 96, 256, 128) {
		t.Fatalf("id 32 = %v", last)
	}
	wrapped, _ := a.Frame(33)
	if wrapped != first {
		t.Fatalf("id 33 should wrap to frame 0, got %v", wrapped)
	}
}
