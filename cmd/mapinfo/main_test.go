package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/milk9111/topdown/levels"
)

func TestDescribeMap(t *testing.T) {
	m, err := levels.LoadMap("sandbox.json")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	var buf bytes.Buffer
	if err := describeMap(&buf, "sandbox.json", m); err != nil {
		t.Fatalf("describeMap: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"sandbox.json: 40x30", "map-spritesheet", "ground", "walls", "collision", "hidden"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDescribeTMX(t *testing.T) {
	tmx, err := levels.LoadTMX("sample.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	var buf bytes.Buffer
	if err := describeTMX(&buf, tmx); err != nil {
		t.Fatalf("describeTMX: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"12x8 tiles of 32x32", "(collection)", "floor", "props"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLayerFlags(t *testing.T) {
	tests := []struct {
		visible, collision bool
		want               string
	}{
		{true, false, "-"},
		{false, false, "hidden"},
		{true, true, "collision"},
		{false, true, "hidden,collision"},
	}
	for _, tc := range tests {
		if got := layerFlags(tc.visible, tc.collision); got != tc.want {
			t.Fatalf("layerFlags(%v, %v) = %q want %q", tc.visible, tc.collision, got, tc.want)
		}
	}
}
