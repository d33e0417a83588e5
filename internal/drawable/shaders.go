// internal/drawable/shaders.go
package drawable

import "ringview/internal/gfx"

// ColoredShader interpolates the per-vertex color across each primitive.
var ColoredShader = gfx.ShaderSource{
	Name: "colored",
	Vertex: `#version 330

in vec3 vertexPosition;
in vec4 vertexColor;

uniform mat4 transform;

out vec3 fragColor;

void main()
{
    fragColor = vertexColor.rgb;
    gl_Position = transform*vec4(vertexPosition.xy, 0.0, 1.0);
}
`,
	Fragment: `#version 330

in vec3 fragColor;

out vec4 finalColor;

void main()
{
    finalColor = vec4(fragColor, 1.0);
}
`,
	Kage: []byte(`//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return vec4(color.rgb, 1)
}
`),
}

// GrayShader ignores vertex color and paints a muted gray.
var GrayShader = gfx.ShaderSource{
	Name: "gray",
	Vertex: `#version 330

in vec3 vertexPosition;

uniform mat4 transform;

void main()
{
    gl_Position = transform*vec4(vertexPosition.xy, 0.0, 1.0);
}
`,
	Fragment: `#version 330

out vec4 finalColor;

void main()
{
    finalColor = vec4(0.4, 0.4, 0.4, 1.0);
}
`,
	Kage: []byte(`//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return vec4(0.4, 0.4, 0.4, 1)
}
`),
}
