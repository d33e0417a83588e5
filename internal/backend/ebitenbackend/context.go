//go:build ebiten

// internal/backend/ebitenbackend/context.go
package ebitenbackend

import (
	"math"

	"ringview/internal/camera"
	"ringview/internal/gfx"
	"ringview/internal/logging"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Locations handed out by the emulated vertex stage.
const (
	positionLoc  int32 = 0
	colorLoc     int32 = 1
	transformLoc int32 = 0
)

// lineWidth is the width in pixels of expanded line segments.
const lineWidth = 1.0

type program struct {
	src       gfx.ShaderSource
	shader    *ebiten.Shader
	transform mgl32.Mat4
}

// screenVertex is a vertex after the emulated vertex stage: pixel position plus color.
type screenVertex struct {
	x, y    float32
	r, g, b float32
}

// Context is a gfx.Context for ebiten. ebiten only runs fragment shaders, so
// the vertex stage is done here: positions go through the program's transform
// uniform, quads become triangle pairs and lines become thin quads.
type Context struct {
	*gfx.VertexState

	programs map[gfx.Program]*program
	nextProg gfx.Program
	current  gfx.Program

	screen   *ebiten.Image
	scratch  []screenVertex
	vertices []ebiten.Vertex
	indices  []uint16
	pos, col []float32
	opts     ebiten.DrawTrianglesShaderOptions
}

func newContext(antialias bool) *Context {
	return &Context{
		opts:        ebiten.DrawTrianglesShaderOptions{AntiAlias: antialias},
		VertexState: gfx.NewVertexState(),
		programs:    make(map[gfx.Program]*program),
		pos:         make([]float32, 0, 2),
		col:         make([]float32, 0, 3),
	}
}

func (c *Context) CreateProgram(src gfx.ShaderSource) (gfx.Program, error) {
	shader, err := ebiten.NewShader(src.Kage)
	if err != nil {
		return 0, &gfx.ShaderError{Program: src.Name, Stage: "fragment", Log: err.Error()}
	}
	c.nextProg++
	c.programs[c.nextProg] = &program{src: src, shader: shader, transform: mgl32.Ident4()}
	logging.Logger().Debug("program loaded", "name", src.Name)
	return c.nextProg, nil
}

func (c *Context) DeleteProgram(p gfx.Program) {
	prog, ok := c.programs[p]
	if !ok {
		return
	}
	prog.shader.Deallocate()
	delete(c.programs, p)
	if c.current == p {
		c.current = 0
	}
}

func (c *Context) AttribLocation(p gfx.Program, name string) int32 {
	prog, ok := c.programs[p]
	if !ok || !prog.src.Declares(name) {
		return -1
	}
	switch name {
	case gfx.AttribPosition:
		return positionLoc
	case gfx.AttribColor:
		return colorLoc
	}
	return -1
}

func (c *Context) UniformLocation(p gfx.Program, name string) int32 {
	prog, ok := c.programs[p]
	if !ok || name != gfx.UniformTransform || !prog.src.Declares(name) {
		return -1
	}
	return transformLoc
}

func (c *Context) UseProgram(p gfx.Program) {
	c.current = p
}

func (c *Context) UniformMatrix4(p gfx.Program, loc int32, m mgl32.Mat4) {
	if prog, ok := c.programs[p]; ok && loc == transformLoc {
		prog.transform = m
	}
}

func (c *Context) DrawArrays(mode gfx.Primitive, first, count int) {
	prog, ok := c.programs[c.current]
	if !ok || c.screen == nil {
		logging.Logger().Warn("draw outside a frame or without a program", "mode", mode, "count", count)
		return
	}
	b := c.screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	colored := prog.src.Declares(gfx.AttribColor) && c.Enabled(colorLoc)

	c.scratch = c.scratch[:0]
	for i := first; i < first+count; i++ {
		pos, err := c.Fetch(positionLoc, i, c.pos)
		if err != nil {
			logging.Logger().Error("vertex fetch", "program", prog.src.Name, "err", err)
			return
		}
		x, y := camera.ProjectWith(prog.transform, pos[0], pos[1])
		sv := screenVertex{
			x: (x + 1) / 2 * w,
			y: (1 - y) / 2 * h,
			r: 1, g: 1, b: 1,
		}
		if colored {
			col, err := c.Fetch(colorLoc, i, c.col)
			if err != nil {
				logging.Logger().Error("vertex fetch", "program", prog.src.Name, "err", err)
				return
			}
			sv.r, sv.g, sv.b = col[0], col[1], col[2]
		}
		c.scratch = append(c.scratch, sv)
	}

	c.vertices, c.indices = assemble(mode, c.scratch, c.vertices[:0], c.indices[:0])
	if len(c.indices) == 0 {
		return
	}
	c.screen.DrawTrianglesShader(c.vertices, c.indices, prog.shader, &c.opts)
}

// assemble turns screen-space primitives into triangles. Trailing vertices
// that do not complete a primitive are dropped.
func assemble(mode gfx.Primitive, in []screenVertex, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	n := mode.VerticesPer()
	for i := 0; i+n <= len(in); i += n {
		base := uint16(len(vs))
		switch mode {
		case gfx.Quads:
			for _, sv := range in[i : i+4] {
				vs = append(vs, vertex(sv, 0, 0))
			}
		case gfx.Lines:
			a, b := in[i], in[i+1]
			dx, dy := b.x-a.x, b.y-a.y
			l := float32(math.Hypot(float64(dx), float64(dy)))
			if l == 0 {
				continue
			}
			nx, ny := -dy/l*lineWidth/2, dx/l*lineWidth/2
			vs = append(vs,
				vertex(a, nx, ny),
				vertex(b, nx, ny),
				vertex(b, -nx, -ny),
				vertex(a, -nx, -ny),
			)
		}
		is = append(is, base, base+1, base+2, base, base+2, base+3)
	}
	return vs, is
}

func vertex(sv screenVertex, ox, oy float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   sv.x + ox,
		DstY:   sv.y + oy,
		ColorR: sv.r,
		ColorG: sv.g,
		ColorB: sv.b,
		ColorA: 1,
	}
}
