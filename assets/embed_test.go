package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "pixel.png", want: "pixel.png"},
		{in: "assets/pixel.png", want: "pixel.png"},
		{in: "../assets/map-spritesheet.png", want: "map-spritesheet.png"},
		{in: "./enemy.png", want: "enemy.png"},
		{in: "/home/me/game/assets/bullet.png", want: "bullet.png"},
		{in: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := cleanAssetPath(tc.in); got != tc.want {
				t.Fatalf("cleanAssetPath(%q)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodeEmbeddedSheets(t *testing.T) {
	cases := []struct {
		path string
		w, h int
	}{
		{path: "map-spritesheet.png", w: 256, h: 128},
		{path: "wojtek-spritesheet-v3.png", w: 864, h: 192},
		{path: "enemy.png", w: 50, h: 50},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			img, err := DecodeImage(tc.path)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tc.w || b.Dy() != tc.h {
				t.Fatalf("size=%dx%d, want %dx%d", b.Dx(), b.Dy(), tc.w, tc.h)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("nope.png"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
}
