package shader

import "github.com/go-gl/mathgl/mgl32"

// Driver is the part of the graphics API that shader units and programs are
// built on. Every method must be called from the thread that owns the current
// graphics context.
//
// Handles are driver-assigned object names; zero is never a valid handle.
type Driver interface {
	CreateShader(stage Stage) uint32
	// ShaderSource replaces the source attached to shader.
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	// ShaderInfoLogLength reports the log size in bytes, including the
	// terminating NUL, or zero if there is no log.
	ShaderInfoLogLength(shader uint32) int32
	// ShaderInfoLog copies at most len(buf) bytes of the log into buf and
	// returns the number of bytes written, excluding the terminating NUL.
	ShaderInfoLog(shader uint32, buf []byte) int32
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) bool
	ProgramInfoLogLength(program uint32) int32
	ProgramInfoLog(program uint32, buf []byte) int32
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// AttribLocation and UniformLocation return -1 when name is not an
	// active input or uniform of program.
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m *mgl32.Mat4)
}
