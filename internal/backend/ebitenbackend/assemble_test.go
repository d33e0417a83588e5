//go:build ebiten

package ebitenbackend

import (
	"testing"

	"ringview/internal/gfx"
)

func TestAssembleQuads(t *testing.T) {
	in := []screenVertex{
		{x: 0, y: 0, r: 1}, {x: 10, y: 0, r: 1}, {x: 10, y: 10, r: 1}, {x: 0, y: 10, r: 1},
		{x: 20, y: 0}, {x: 30, y: 0}, {x: 30, y: 10}, {x: 20, y: 10},
		{x: 99, y: 99}, // incomplete
	}
	vs, is := assemble(gfx.Quads, in, nil, nil)
	if len(vs) != 8 || len(is) != 12 {
		t.Fatalf("vertices=%d indices=%d, want 8 and 12", len(vs), len(is))
	}
	want := []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	for i := range want {
		if is[i] != want[i] {
			t.Fatalf("indices=%v, want %v", is, want)
		}
	}
	if vs[0].ColorR != 1 || vs[0].ColorA != 1 || vs[4].ColorR != 0 {
		t.Fatalf("colors not carried: %v %v", vs[0], vs[4])
	}
}

func TestAssembleLines(t *testing.T) {
	in := []screenVertex{{x: 0, y: 5}, {x: 10, y: 5}, {x: 3, y: 3}, {x: 3, y: 3}}
	vs, is := assemble(gfx.Lines, in, nil, nil)
	// The degenerate second segment is skipped.
	if len(vs) != 4 || len(is) != 6 {
		t.Fatalf("vertices=%d indices=%d, want 4 and 6", len(vs), len(is))
	}
	if vs[0].DstY != 5.5 || vs[3].DstY != 4.5 || vs[1].DstX != 10 {
		t.Fatalf("line quad=%v", vs)
	}
}

func TestContextAntialias(t *testing.T) {
	if !newContext(true).opts.AntiAlias {
		t.Fatalf("newContext(true) draws without anti-aliasing")
	}
	if newContext(false).opts.AntiAlias {
		t.Fatalf("newContext(false) draws with anti-aliasing")
	}
}
