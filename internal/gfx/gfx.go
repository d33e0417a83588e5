// internal/gfx/gfx.go
package gfx

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive is the way consecutive vertices are assembled into shapes.
type Primitive int

const (
	Lines Primitive = iota // every 2 vertices form an independent segment
	Quads                  // every 4 vertices form a filled quad
)

func (p Primitive) String() string {
	switch p {
	case Lines:
		return "lines"
	case Quads:
		return "quads"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// VerticesPer returns how many vertices make one primitive.
func (p Primitive) VerticesPer() int {
	if p == Quads {
		return 4
	}
	return 2
}

// Buffer and Program are backend handles. Zero is never a valid handle.
type (
	Buffer  uint32
	Program uint32
)

// FloatSize is the byte size of one vertex component.
const FloatSize = 4

// Binding names shared by every program. They match raylib's default
// attribute names so its batch buffers feed them.
const (
	AttribPosition   = "vertexPosition"
	AttribColor      = "vertexColor"
	UniformTransform = "transform"
)

var (
	ErrBackendInit = errors.New("backend initialization failed")
	ErrWindow      = errors.New("window creation failed")
	ErrNoBuffer    = errors.New("unknown buffer")
)

// ShaderSource is the text of one shading program.
// Vertex and Fragment are GLSL; Kage is the fragment stage for backends
// that run the vertex stage on the CPU.
type ShaderSource struct {
	Name     string
	Vertex   string
	Fragment string
	Kage     []byte
}

// ShaderError reports a program that failed to compile or link.
type ShaderError struct {
	Program string
	Stage   string // vertex, fragment or link
	Log     string
}

func (e *ShaderError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("shader %q: %s stage failed", e.Program, e.Stage)
	}
	return fmt.Sprintf("shader %q: %s stage failed: %s", e.Program, e.Stage, e.Log)
}

// Context is the rendering context a backend exposes to drawables.
// All methods must be called from the thread that owns the window.
type Context interface {
	CreateBuffer() (Buffer, error)
	UploadBuffer(b Buffer, data []float32)
	DeleteBuffer(b Buffer)

	CreateProgram(src ShaderSource) (Program, error)
	DeleteProgram(p Program)
	// AttribLocation and UniformLocation return -1 when the name is unknown.
	AttribLocation(p Program, name string) int32
	UniformLocation(p Program, name string) int32

	// VertexAttrib points attribute loc at buffer b. size is in floats,
	// stride and offset are in bytes.
	VertexAttrib(b Buffer, loc int32, size, stride, offset int)
	UseProgram(p Program)
	UniformMatrix4(p Program, loc int32, m mgl32.Mat4)
	DrawArrays(mode Primitive, first, count int)
}

// Window is an open window with a current rendering context.
type Window interface {
	Context() Context
	// Size reports the drawable area in pixels.
	Size() (width, height int)
	// Run polls events, calls frame and presents, once per frame, until the window is closed
	// or frame returns an error.
	Run(frame func() error) error
	Close()
}
