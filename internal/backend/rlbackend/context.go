//go:build !ebiten

// internal/backend/rlbackend/context.go
package rlbackend

import (
	"strings"

	"ringview/internal/gfx"
	"ringview/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

type program struct {
	name        string
	shader      rl.Shader
	positionLoc int32
	colorLoc    int32
}

// Context is a gfx.Context on top of rlgl. Vertex data stays on the CPU and is
// streamed through raylib's immediate-mode batch on every draw, using the
// program's own shader.
type Context struct {
	*gfx.VertexState

	programs map[gfx.Program]*program
	nextProg gfx.Program
	current  gfx.Program

	pos, col []float32
}

func newContext() *Context {
	return &Context{
		VertexState: gfx.NewVertexState(),
		programs:    make(map[gfx.Program]*program),
		pos:         make([]float32, 0, 2),
		col:         make([]float32, 0, 3),
	}
}

func (c *Context) CreateProgram(src gfx.ShaderSource) (gfx.Program, error) {
	var shader rl.Shader
	warnings := trace.capture(func() {
		shader = rl.LoadShaderFromMemory(src.Vertex, src.Fragment)
	})
	if !rl.IsShaderValid(shader) || shader.ID == rl.GetShaderIdDefault() {
		return 0, &gfx.ShaderError{
			Program: src.Name,
			Stage:   failedStage(warnings),
			Log:     strings.Join(warnings, "; "),
		}
	}

	c.nextProg++
	c.programs[c.nextProg] = &program{
		name:        src.Name,
		shader:      shader,
		positionLoc: rl.GetShaderLocationAttrib(shader, gfx.AttribPosition),
		colorLoc:    rl.GetShaderLocationAttrib(shader, gfx.AttribColor),
	}
	logging.Logger().Debug("program loaded", "name", src.Name, "id", shader.ID)
	return c.nextProg, nil
}

func (c *Context) DeleteProgram(p gfx.Program) {
	prog, ok := c.programs[p]
	if !ok {
		return
	}
	rl.UnloadShader(prog.shader)
	delete(c.programs, p)
	if c.current == p {
		c.current = 0
	}
}

func (c *Context) AttribLocation(p gfx.Program, name string) int32 {
	prog, ok := c.programs[p]
	if !ok {
		return -1
	}
	return rl.GetShaderLocationAttrib(prog.shader, name)
}

func (c *Context) UniformLocation(p gfx.Program, name string) int32 {
	prog, ok := c.programs[p]
	if !ok {
		return -1
	}
	return rl.GetShaderLocation(prog.shader, name)
}

func (c *Context) UseProgram(p gfx.Program) {
	c.current = p
}

func (c *Context) UniformMatrix4(p gfx.Program, loc int32, m mgl32.Mat4) {
	prog, ok := c.programs[p]
	if !ok || loc < 0 {
		return
	}
	rl.SetShaderValueMatrix(prog.shader, loc, toMatrix(m))
}

// DrawArrays feeds count vertices starting at first through rlgl with the current program.
func (c *Context) DrawArrays(mode gfx.Primitive, first, count int) {
	prog, ok := c.programs[c.current]
	if !ok {
		logging.Logger().Warn("draw without a program", "mode", mode, "count", count)
		return
	}
	colored := prog.colorLoc >= 0 && c.Enabled(prog.colorLoc)

	rl.BeginShaderMode(prog.shader)
	rl.Begin(primitiveMode(mode))
	for i := first; i < first+count; i++ {
		pos, err := c.Fetch(prog.positionLoc, i, c.pos)
		if err != nil {
			logging.Logger().Error("vertex fetch", "program", prog.name, "err", err)
			break
		}
		if colored {
			col, err := c.Fetch(prog.colorLoc, i, c.col)
			if err != nil {
				logging.Logger().Error("vertex fetch", "program", prog.name, "err", err)
				break
			}
			rl.Color3f(col[0], col[1], col[2])
		} else {
			rl.Color4ub(255, 255, 255, 255)
		}
		rl.Vertex2f(pos[0], pos[1])
	}
	rl.End()
	rl.EndShaderMode()
}

func primitiveMode(mode gfx.Primitive) int32 {
	if mode == gfx.Quads {
		return rl.Quads
	}
	return rl.Lines
}

// toMatrix converts a column-major mgl32 matrix; raylib's Mn fields use the same indices.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
