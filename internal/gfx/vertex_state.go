// internal/gfx/vertex_state.go
package gfx

import "fmt"

// AttribPointer describes where an attribute's values live inside a buffer.
type AttribPointer struct {
	Buffer Buffer
	Size   int // floats
	Stride int // bytes
	Offset int // bytes
}

// VertexState keeps uploaded vertex data and attribute pointers on the CPU side
// and fetches attribute values per vertex. Backends without a GL buffer object
// path embed it.
type VertexState struct {
	buffers map[Buffer][]float32
	attribs map[int32]AttribPointer
	nextBuf Buffer
}

func NewVertexState() *VertexState {
	return &VertexState{
		buffers: make(map[Buffer][]float32),
		attribs: make(map[int32]AttribPointer),
	}
}

func (s *VertexState) CreateBuffer() (Buffer, error) {
	s.nextBuf++
	s.buffers[s.nextBuf] = nil
	return s.nextBuf, nil
}

// UploadBuffer replaces the buffer contents. The data is copied.
func (s *VertexState) UploadBuffer(b Buffer, data []float32) {
	if _, ok := s.buffers[b]; !ok {
		return
	}
	s.buffers[b] = append(s.buffers[b][:0], data...)
}

func (s *VertexState) DeleteBuffer(b Buffer) {
	delete(s.buffers, b)
	for loc, p := range s.attribs {
		if p.Buffer == b {
			delete(s.attribs, loc)
		}
	}
}

func (s *VertexState) VertexAttrib(b Buffer, loc int32, size, stride, offset int) {
	if loc < 0 {
		return
	}
	s.attribs[loc] = AttribPointer{Buffer: b, Size: size, Stride: stride, Offset: offset}
}

// Enabled reports whether an attribute pointer is set for loc.
func (s *VertexState) Enabled(loc int32) bool {
	_, ok := s.attribs[loc]
	return ok
}

// Fetch reads the values of attribute loc for vertex i into dst and returns it.
// A zero stride means tightly packed values.
func (s *VertexState) Fetch(loc int32, i int, dst []float32) ([]float32, error) {
	p, ok := s.attribs[loc]
	if !ok {
		return nil, fmt.Errorf("attribute %d: no pointer set", loc)
	}
	data, ok := s.buffers[p.Buffer]
	if !ok {
		return nil, fmt.Errorf("attribute %d: %w %d", loc, ErrNoBuffer, p.Buffer)
	}
	stride := p.Stride
	if stride == 0 {
		stride = p.Size * FloatSize
	}
	start := (i*stride + p.Offset) / FloatSize
	end := start + p.Size
	if start < 0 || end > len(data) {
		return nil, fmt.Errorf("attribute %d: vertex %d reads [%d:%d] of %d floats", loc, i, start, end, len(data))
	}
	return append(dst[:0], data[start:end]...), nil
}
