// This file is part of 86Box.
//
// 86Box is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 86Box is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 86Box.  If not, see <https://www.gnu.org/licenses/>.

package sdlwindow

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
)

const vertexShader = `#version 150 core
in vec2 Position;
in vec2 UV;
out vec2 Frag_UV;
void main() {
	Frag_UV = UV;
	gl_Position = vec4(Position, 0.0, 1.0);
}
`

const fragmentShader = `#version 150 core
uniform sampler2D Texture;
in vec2 Frag_UV;
out vec4 Out_Color;
void main() {
	Out_Color = texture(Texture, Frag_UV);
}
`

// position and texture coordinates for a triangle strip covering the
// viewport. the first row of the frame is at the top of the window
var quadVertices = []float32{
	-1, 1, 0, 0,
	-1, -1, 0, 1,
	1, 1, 1, 0,
	1, -1, 1, 1,
}

type quad struct {
	program uint32
	vao     uint32
	vbo     uint32
	texture int32
}

func (q *quad) create() error {
	q.program = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()
		gl.ShaderSource(handle, 1, csource, nil)
	}
	glShaderSource(vertHandle, vertexShader)
	glShaderSource(fragHandle, fragmentShader)

	gl.CompileShader(vertHandle)
	if log := compileError(vertHandle); log != "" {
		return fmt.Errorf("vertex shader: %s", log)
	}
	gl.CompileShader(fragHandle)
	if log := compileError(fragHandle); log != "" {
		return fmt.Errorf("fragment shader: %s", log)
	}

	gl.AttachShader(q.program, vertHandle)
	gl.AttachShader(q.program, fragHandle)
	gl.LinkProgram(q.program)
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	q.texture = gl.GetUniformLocation(q.program, gl.Str("Texture"+"\x00"))
	position := uint32(gl.GetAttribLocation(q.program, gl.Str("Position"+"\x00")))
	uv := uint32(gl.GetAttribLocation(q.program, gl.Str("UV"+"\x00")))

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	const stride = 4 * 4
	gl.EnableVertexAttribArray(position)
	gl.VertexAttribPointerWithOffset(position, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(uv)
	gl.VertexAttribPointerWithOffset(uv, 2, gl.FLOAT, false, stride, 2*4)
	gl.BindVertexArray(0)

	return nil
}

func (q *quad) destroy() {
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
	if q.program != 0 {
		gl.DeleteProgram(q.program)
		q.program = 0
	}
}

func (q *quad) draw(texture uint32) {
	gl.UseProgram(q.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.Uniform1i(q.texture, 0)
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

func compileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00")
		}
		return "unknown error"
	}
	return ""
}

// fit returns the largest viewport with the aspect ratio of the frame that
// fits in the drawable area, centred.
func fit(drawW, drawH int32, frameW, frameH int) (x, y, w, h int32) {
	if frameW <= 0 || frameH <= 0 {
		return 0, 0, drawW, drawH
	}
	w = drawW
	h = int32(int64(drawW) * int64(frameH) / int64(frameW))
	if h > drawH {
		h = drawH
		w = int32(int64(drawH) * int64(frameW) / int64(frameH))
	}
	return (drawW - w) / 2, (drawH - h) / 2, w, h
}
