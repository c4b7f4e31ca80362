package main

import (
	"image"
	"testing"

	"github.com/milk9111/topdown/prefabs"
)

func TestClipFrames(t *testing.T) {
	tests := []struct {
		name string
		def  prefabs.AnimationDefSpec
		want []image.Rectangle
	}{
		{
			name: "first row",
			def:  prefabs.AnimationDefSpec{FrameCount: 2, FrameW: 96, FrameH: 96},
			want: []image.Rectangle{image.Rect(0, 0, 96, 96), image.Rect(96, 0, 192, 96)},
		},
		{
			name: "second row with offset",
			def:  prefabs.AnimationDefSpec{Row: 1, ColStart: 1, FrameCount: 2, FrameW: 10, FrameH: 20},
			want: []image.Rectangle{image.Rect(10, 20, 20, 40), image.Rect(20, 20, 30, 40)},
		},
		{
			name: "no size",
			def:  prefabs.AnimationDefSpec{FrameCount: 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := clipFrames(tc.def)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d frames want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("frame %d = %v want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestBuildClipsSortedAndTimed(t *testing.T) {
	names, clips := buildClips(prefabs.AnimationSpec{Defs: map[string]prefabs.AnimationDefSpec{
		"running": {FrameCount: 9, FrameW: 96, FrameH: 96, FPS: 10, Loop: true},
		"idle":    {FrameCount: 9, FrameW: 96, FrameH: 96, FPS: 0},
	}})
	if len(names) != 2 || names[0] != "idle" || names[1] != "running" {
		t.Fatalf("names = %v", names)
	}
	if clips["running"].ticksPerFrame != 6 || !clips["running"].loop {
		t.Fatalf("running clip = %+v", clips["running"])
	}
	if clips["idle"].ticksPerFrame != 1 {
		t.Fatalf("idle ticks = %d", clips["idle"].ticksPerFrame)
	}
}
