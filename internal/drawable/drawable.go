// internal/drawable/drawable.go
package drawable

import (
	"errors"
	"fmt"

	"ringview/internal/camera"
	"ringview/internal/gfx"
	"ringview/internal/logging"
)

var ErrAlreadyCreated = errors.New("drawable already created")

// Drawable is set up once with Create, drawn every frame with Draw
// and frees its backend resources with Release.
type Drawable interface {
	Name() string
	Count() int
	Create(ctx gfx.Context) error
	Draw()
	Release()
}

// mesh is the state every variant shares: one vertex buffer drawn with one program.
type mesh struct {
	name    string
	cam     camera.Camera
	mode    gfx.Primitive
	shader  gfx.ShaderSource
	stride  int // floats per vertex
	colored bool

	ctx     gfx.Context
	buffer  gfx.Buffer
	program gfx.Program
	data    []float32
	count   int

	positionLoc  int32
	colorLoc     int32
	transformLoc int32
}

func (m *mesh) Name() string { return m.name }

// Count is the number of vertices drawn per frame; zero before Create.
func (m *mesh) Count() int { return m.count }

func (m *mesh) create(ctx gfx.Context, data []float32) (err error) {
	if m.ctx != nil {
		return fmt.Errorf("%s: %w", m.name, ErrAlreadyCreated)
	}
	if len(data)%m.stride != 0 {
		return fmt.Errorf("%s: %d floats is not a whole number of %d-float vertices", m.name, len(data), m.stride)
	}

	buffer, err := ctx.CreateBuffer()
	if err != nil {
		return fmt.Errorf("%s: create buffer: %w", m.name, err)
	}
	defer func() {
		if err != nil {
			ctx.DeleteBuffer(buffer)
		}
	}()

	program, err := ctx.CreateProgram(m.shader)
	if err != nil {
		return fmt.Errorf("%s: %w", m.name, err)
	}
	defer func() {
		if err != nil {
			ctx.DeleteProgram(program)
		}
	}()

	m.positionLoc = ctx.AttribLocation(program, gfx.AttribPosition)
	if m.positionLoc < 0 {
		return fmt.Errorf("%s: attribute %q not found in %s program", m.name, gfx.AttribPosition, m.shader.Name)
	}
	m.colorLoc = -1
	if m.colored {
		m.colorLoc = ctx.AttribLocation(program, gfx.AttribColor)
		if m.colorLoc < 0 {
			return fmt.Errorf("%s: attribute %q not found in %s program", m.name, gfx.AttribColor, m.shader.Name)
		}
	}
	m.transformLoc = ctx.UniformLocation(program, gfx.UniformTransform)
	if m.transformLoc < 0 {
		return fmt.Errorf("%s: uniform %q not found in %s program", m.name, gfx.UniformTransform, m.shader.Name)
	}

	m.ctx = ctx
	m.buffer = buffer
	m.program = program
	m.data = data
	m.count = len(data) / m.stride
	logging.Logger().Debug("drawable created",
		"name", m.name, "program", m.shader.Name, "mode", m.mode, "vertices", m.count)
	return nil
}

// Draw uploads the vertex data again, binds the attributes and the transform
// and issues one draw call over every vertex.
func (m *mesh) Draw() {
	if m.ctx == nil {
		logging.Logger().Warn("draw before create", "name", m.name)
		return
	}
	ctx := m.ctx
	ctx.UploadBuffer(m.buffer, m.data)

	strideBytes := m.stride * gfx.FloatSize
	ctx.VertexAttrib(m.buffer, m.positionLoc, 2, strideBytes, 0)
	if m.colored {
		ctx.VertexAttrib(m.buffer, m.colorLoc, 3, strideBytes, 2*gfx.FloatSize)
	}

	ctx.UseProgram(m.program)
	ctx.UniformMatrix4(m.program, m.transformLoc, m.cam.Transform())
	ctx.DrawArrays(m.mode, 0, m.count)
}

func (m *mesh) Release() {
	if m.ctx == nil {
		return
	}
	m.ctx.DeleteProgram(m.program)
	m.ctx.DeleteBuffer(m.buffer)
	m.ctx = nil
	m.data = nil
	m.count = 0
}
