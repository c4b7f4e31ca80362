package levels

import "testing"

func TestTileGridPosition(t *testing.T) {
	cases := []struct {
		i, w, h  int
		col, row int
	}{
		{i: 0, w: 4, h: 3, col: 0, row: 2},
		{i: 3, w: 4, h: 3, col: 3, row: 2},
		{i: 4, w: 4, h: 3, col: 0, row: 1},
		{i: 11, w: 4, h: 3, col: 3, row: 0},
	}
	for _, tc := range cases {
		col, row := TileGridPosition(tc.i, tc.w, tc.h)
		if col != tc.col || row != tc.row {
			t.Fatalf("TileGridPosition(%d,%d,%d)=(%d,%d), want (%d,%d)", tc.i, tc.w, tc.h, col, row, tc.col, tc.row)
		}
	}
}

func TestTileWorldPositionAppliesOffsets(t *testing.T) {
	x, y := TileWorldPosition(2, 1, 32, 16, 5, 4)
	if x != 69 || y != 12 {
		t.Fatalf("got (%v,%v), want (69,12)", x, y)
	}
}

func TestDecodeGID(t *testing.T) {
	id, flips := DecodeGID(7 | flipHorizontalFlag | flipDiagonalFlag)
	if id != 7 {
		t.Fatalf("id=%d, want 7", id)
	}
	if !flips.H || flips.V || !flips.D {
		t.Fatalf("unexpected flips %+v", flips)
	}
	if id, _ := DecodeGID(0); id != 0 {
		t.Fatalf("empty tile decoded to %d", id)
	}
}
