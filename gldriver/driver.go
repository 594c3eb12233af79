// Package gldriver implements shader.Driver on an OpenGL 4.1 core context.
package gldriver

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/glwrapper/examples/shader"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Driver forwards to the GL entry points of the context that is current on
// the calling thread.
type Driver struct{}

var _ shader.Driver = Driver{}

// Init loads the GL entry points through getProcAddress and returns a driver
// along with the context's GL_VERSION string. A context must be current.
func Init(getProcAddress func(name string) unsafe.Pointer) (Driver, string, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddress); err != nil {
		return Driver{}, "", errors.Wrap(err, "could not load OpenGL entry points")
	}

	return Driver{}, gl.GoStr(gl.GetString(gl.VERSION)), nil
}

func stageEnum(stage shader.Stage) uint32 {
	switch stage {
	case shader.Vertex:
		return gl.VERTEX_SHADER
	case shader.Fragment:
		return gl.FRAGMENT_SHADER
	}
	return 0
}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	kind := stageEnum(stage)
	if kind == 0 {
		return 0
	}
	return gl.CreateShader(kind)
}

func (Driver) ShaderSource(handle uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()

	gl.ShaderSource(handle, 1, csources, nil)
}

func (Driver) CompileShader(handle uint32) {
	gl.CompileShader(handle)
}

func (Driver) ShaderCompileStatus(handle uint32) bool {
	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (Driver) ShaderInfoLogLength(handle uint32) int32 {
	var length int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &length)
	return length
}

func (Driver) ShaderInfoLog(handle uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}

	var written int32
	gl.GetShaderInfoLog(handle, int32(len(buf)), &written, &buf[0])
	return written
}

func (Driver) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) AttachShader(program, handle uint32) {
	gl.AttachShader(program, handle)
}

func (Driver) DetachShader(program, handle uint32) {
	gl.DetachShader(program, handle)
}

func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Driver) ProgramLinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (Driver) ProgramInfoLogLength(program uint32) int32 {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	return length
}

func (Driver) ProgramInfoLog(program uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}

	var written int32
	gl.GetProgramInfoLog(program, int32(len(buf)), &written, &buf[0])
	return written
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Driver) AttribLocation(program uint32, name string) int32 {
	cname, free := gl.Strs(name + "\x00")
	defer free()

	return gl.GetAttribLocation(program, *cname)
}

func (Driver) UniformLocation(program uint32, name string) int32 {
	cname, free := gl.Strs(name + "\x00")
	defer free()

	return gl.GetUniformLocation(program, *cname)
}

func (Driver) UniformMatrix4(location int32, m *mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}
