package app

import (
	"errors"
	"testing"

	"ringview/internal/drawable"
	"ringview/internal/gfx"
	"ringview/internal/gfx/gfxtest"
)

func TestRunDrawsSceneInOrder(t *testing.T) {
	w := gfxtest.NewWindow(2)
	a, err := New(w, DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.Frames() != 2 {
		t.Fatalf("frames=%d, want 2", a.Frames())
	}

	want := []struct {
		program string
		mode    gfx.Primitive
		count   int
	}{
		{drawable.GrayShader.Name, gfx.Lines, 20},
		{drawable.ColoredShader.Name, gfx.Quads, 256},
		{drawable.ColoredShader.Name, gfx.Lines, 32},
	}
	calls := w.Ctx.Calls
	if len(calls) != 2*len(want) {
		t.Fatalf("draw calls=%d, want %d", len(calls), 2*len(want))
	}
	for i, call := range calls {
		wc := want[i%len(want)]
		if call.Program != wc.program || call.Mode != wc.mode || call.Count != wc.count {
			t.Fatalf("call %d = %s %v %d, want %s %v %d", i, call.Program, call.Mode, call.Count, wc.program, wc.mode, wc.count)
		}
		if call.Transform != calls[0].Transform {
			t.Fatalf("call %d transform differs", i)
		}
	}
}

func TestNewReleasesOnFailure(t *testing.T) {
	w := gfxtest.NewWindow(1)
	boom := errors.New("link failed")
	w.Ctx.FailPrograms = map[string]error{drawable.ColoredShader.Name: boom}

	if _, err := New(w, DefaultOptions()); !errors.Is(err, boom) {
		t.Fatalf("New err=%v, want %v", err, boom)
	}
	// The grid was created before the ring failed and must be released.
	if w.Ctx.Live() != 0 {
		t.Fatalf("%d programs still live", w.Ctx.Live())
	}
	if w.Ctx.BuffersDeleted != 2 {
		t.Fatalf("buffers deleted=%d, want 2", w.Ctx.BuffersDeleted)
	}
}

func TestNewRejectsUnevenBands(t *testing.T) {
	opts := DefaultOptions()
	opts.Ring.SegmentCount = 30
	opts.Ring.SegmentsPerBand = 4
	if _, err := New(gfxtest.NewWindow(0), opts); err == nil {
		t.Fatalf("New with 30/4 bands: want error")
	}
}

func TestClose(t *testing.T) {
	w := gfxtest.NewWindow(0)
	a, err := New(w, DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Close()
	if !w.Closed {
		t.Fatalf("window not closed")
	}
	if w.Ctx.ProgramsDeleted != 3 || w.Ctx.BuffersDeleted != 3 {
		t.Fatalf("released %d programs, %d buffers, want 3 and 3", w.Ctx.ProgramsDeleted, w.Ctx.BuffersDeleted)
	}
	if err := a.Frame(); err != nil {
		t.Fatalf("Frame after Close: %v", err)
	}
	if len(w.Ctx.Calls) != 0 {
		t.Fatalf("draw calls after close: %d", len(w.Ctx.Calls))
	}
}
