// Command mapinfo prints a summary of a level: layers, tilesets, atlas sizes
// and the number of tiles and merged colliders the game would spawn.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/milk9111/topdown/levels"
)

func main() {
	tmxName := flag.String("tmx", "", "TMX map to describe instead of a JSON map")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: mapinfo [-tmx map.tmx] [map.json]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var err error
	switch {
	case *tmxName != "":
		var t *levels.TMX
		if t, err = levels.LoadTMX(*tmxName); err == nil {
			err = describeTMX(os.Stdout, t)
		}
	default:
		name := "sandbox.json"
		if flag.NArg() > 0 {
			name = flag.Arg(0)
		}
		var m *levels.Map
		if m, err = levels.LoadMap(name); err == nil {
			err = describeMap(os.Stdout, name, m)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func describeMap(out io.Writer, name string, m *levels.Map) error {
	w, h := m.PixelSize()
	fmt.Fprintf(out, "%s: %dx%d tiles of %dx%d (%.0fx%.0f px), %d tiles\n", name, m.Width, m.Height, m.TileWidth, m.TileHeight, w, h, m.TileCount())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TILESET\tIMAGE\tFRAMES")
	for _, ts := range m.Tilesets {
		atlas, err := levels.NewAtlas(ts)
		if err != nil {
			fmt.Fprintf(tw, "%s\t%s\t%v\n", ts.Name, ts.Image, err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", ts.Name, ts.Image, atlas.Len())
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "LAYER\tTYPE\tTILES\tCOLLIDERS\tFLAGS")
	for _, layer := range m.Layers {
		tiles, colliders := 0, 0
		if layer.IsTileLayer() {
			solid := make([]bool, len(layer.Data))
			for i, raw := range layer.Data {
				if id, _ := levels.DecodeGID(raw); id != 0 {
					tiles++
					solid[i] = true
				}
			}
			if layer.IsCollision() {
				colliders = len(levels.MergeSolidCells(solid, m.Width, m.Height))
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", layer.Name, layer.Type, tiles, colliders, layerFlags(layer.Visible, layer.IsCollision()))
	}
	return tw.Flush()
}

func describeTMX(out io.Writer, t *levels.TMX) error {
	m := t.Map
	ox, oy := t.Origin()
	fmt.Fprintf(out, "%s: %dx%d tiles of %dx%d, origin (%.1f, %.1f)\n", t.Path, m.Width, m.Height, m.TileWidth, m.TileHeight, ox, oy)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TILESET\tIMAGE\tFRAMES")
	for _, ts := range t.Tilesets {
		if ts.IsCollection() {
			fmt.Fprintf(tw, "%s\t(collection)\t%d\n", ts.Tileset.Name, len(ts.TileImages))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", ts.Tileset.Name, ts.Image, ts.Atlas.Len())
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "LAYER\tTILES\tFLAGS")
	for i, layer := range m.Layers {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", layer.Name, len(t.Cells(i)), layerFlags(layer.Visible, t.IsCollisionLayer(i)))
	}
	return tw.Flush()
}

func layerFlags(visible, collision bool) string {
	var flags []string
	if !visible {
		flags = append(flags, "hidden")
	}
	if collision {
		flags = append(flags, "collision")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}
