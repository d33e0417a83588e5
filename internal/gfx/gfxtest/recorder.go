// internal/gfx/gfxtest/recorder.go

// Package gfxtest provides an in-memory rendering context and window for tests.
package gfxtest

import (
	"ringview/internal/gfx"

	"github.com/go-gl/mathgl/mgl32"
)

// Fixed binding locations handed out by the recorder.
const (
	PositionLoc  int32 = 0
	ColorLoc     int32 = 1
	TransformLoc int32 = 0
)

// DrawCall is one recorded DrawArrays with the vertex data it consumed.
type DrawCall struct {
	Program   string
	Mode      gfx.Primitive
	First     int
	Count     int
	Transform mgl32.Mat4
	Positions [][2]float32
	Colors    [][3]float32 // nil when the program has no color attribute
}

type program struct {
	src      gfx.ShaderSource
	matrices map[int32]mgl32.Mat4
}

// Recorder is a gfx.Context that keeps everything on the CPU and records draw calls.
type Recorder struct {
	*gfx.VertexState

	// FailPrograms makes CreateProgram fail for the named programs.
	FailPrograms map[string]error

	Calls           []DrawCall
	Uploads         int
	ProgramsCreated int
	ProgramsDeleted int
	BuffersDeleted  int

	programs map[gfx.Program]*program
	nextProg gfx.Program
	current  gfx.Program
}

func NewRecorder() *Recorder {
	return &Recorder{
		VertexState: gfx.NewVertexState(),
		programs:    make(map[gfx.Program]*program),
	}
}

func (r *Recorder) UploadBuffer(b gfx.Buffer, data []float32) {
	r.Uploads++
	r.VertexState.UploadBuffer(b, data)
}

func (r *Recorder) DeleteBuffer(b gfx.Buffer) {
	r.BuffersDeleted++
	r.VertexState.DeleteBuffer(b)
}

func (r *Recorder) CreateProgram(src gfx.ShaderSource) (gfx.Program, error) {
	if err, ok := r.FailPrograms[src.Name]; ok {
		return 0, err
	}
	r.nextProg++
	r.programs[r.nextProg] = &program{src: src, matrices: make(map[int32]mgl32.Mat4)}
	r.ProgramsCreated++
	return r.nextProg, nil
}

func (r *Recorder) DeleteProgram(p gfx.Program) {
	if _, ok := r.programs[p]; ok {
		r.ProgramsDeleted++
		delete(r.programs, p)
	}
}

// AttribLocation resolves an attribute only if the vertex source declares it.
func (r *Recorder) AttribLocation(p gfx.Program, name string) int32 {
	prog, ok := r.programs[p]
	if !ok || !prog.src.Declares(name) {
		return -1
	}
	switch name {
	case gfx.AttribPosition:
		return PositionLoc
	case gfx.AttribColor:
		return ColorLoc
	}
	return -1
}

func (r *Recorder) UniformLocation(p gfx.Program, name string) int32 {
	prog, ok := r.programs[p]
	if !ok || name != gfx.UniformTransform || !prog.src.Declares(name) {
		return -1
	}
	return TransformLoc
}

func (r *Recorder) UseProgram(p gfx.Program) {
	r.current = p
}

func (r *Recorder) UniformMatrix4(p gfx.Program, loc int32, m mgl32.Mat4) {
	if prog, ok := r.programs[p]; ok {
		prog.matrices[loc] = m
	}
}

func (r *Recorder) DrawArrays(mode gfx.Primitive, first, count int) {
	call := DrawCall{Mode: mode, First: first, Count: count}
	prog, ok := r.programs[r.current]
	if ok {
		call.Program = prog.src.Name
		call.Transform = prog.matrices[TransformLoc]
	}
	colored := ok && r.AttribLocation(r.current, gfx.AttribColor) >= 0 && r.Enabled(ColorLoc)

	var scratch []float32
	for i := first; i < first+count; i++ {
		pos, err := r.Fetch(PositionLoc, i, scratch)
		if err != nil {
			break
		}
		call.Positions = append(call.Positions, [2]float32{pos[0], pos[1]})
		if colored {
			c, err := r.Fetch(ColorLoc, i, scratch)
			if err != nil {
				break
			}
			call.Colors = append(call.Colors, [3]float32{c[0], c[1], c[2]})
		}
	}
	r.Calls = append(r.Calls, call)
}

// Live reports the number of programs created and not yet deleted.
func (r *Recorder) Live() int {
	return len(r.programs)
}

// Window is a gfx.Window that runs a fixed number of frames.
type Window struct {
	Ctx           *Recorder
	Width, Height int
	Frames        int
	Ran           int
	Closed        bool
}

func NewWindow(frames int) *Window {
	return &Window{Ctx: NewRecorder(), Width: 640, Height: 640, Frames: frames}
}

func (w *Window) Context() gfx.Context { return w.Ctx }

func (w *Window) Size() (int, int) { return w.Width, w.Height }

func (w *Window) Run(frame func() error) error {
	for w.Ran < w.Frames {
		w.Ran++
		if err := frame(); err != nil {
			return err
		}
	}
	return nil
}

func (w *Window) Close() { w.Closed = true }
