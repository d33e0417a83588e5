// internal/gfx/shader_source.go
package gfx

import "strings"

// Declares reports whether the vertex stage declares an input attribute or a
// uniform with the given name. Backends that emulate the vertex stage use it
// in place of GL's active-attribute reflection.
func (s ShaderSource) Declares(name string) bool {
	for _, line := range strings.Split(s.Vertex, "\n") {
		fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
		if len(fields) != 3 {
			continue
		}
		if (fields[0] == "in" || fields[0] == "uniform") && fields[2] == name {
			return true
		}
	}
	return false
}
