package shader

import (
	"github.com/cockroachdb/errors"
)

// Unit owns one compiled shader stage. A Unit only exists for source that
// compiled; Compile reports failures as a *CompileError instead.
type Unit struct {
	driver Driver
	handle uint32
	stage  Stage
}

// Compile creates a shader object for stage and compiles source into it.
func Compile(driver Driver, source string, stage Stage) (*Unit, error) {
	handle := driver.CreateShader(stage)
	if handle == 0 {
		return nil, errors.Newf("shader: could not create %s shader object", stage)
	}

	driver.ShaderSource(handle, source)
	driver.CompileShader(handle)

	if !driver.ShaderCompileStatus(handle) {
		log := readInfoLog(driver.ShaderInfoLogLength(handle), func(buf []byte) int32 {
			return driver.ShaderInfoLog(handle, buf)
		})
		driver.DeleteShader(handle)

		Logger().Debug("shader compile failed", "stage", stage, "handle", handle)
		return nil, errors.WithStack(&CompileError{Stage: stage, Log: log})
	}

	Logger().Debug("shader compiled", "stage", stage, "handle", handle)
	return &Unit{driver: driver, handle: handle, stage: stage}, nil
}

func CompileVertex(driver Driver, source string) (*Unit, error) {
	return Compile(driver, source, Vertex)
}

func CompileFragment(driver Driver, source string) (*Unit, error) {
	return Compile(driver, source, Fragment)
}

// Handle returns the driver name of the shader object, or zero once the unit
// has been released.
func (u *Unit) Handle() uint32 {
	return u.handle
}

func (u *Unit) Stage() Stage {
	return u.stage
}

func (u *Unit) Initialized() bool {
	return u != nil && u.handle != 0
}

// Destroy releases the shader object. Only the first call has any effect.
func (u *Unit) Destroy() {
	if !u.Initialized() {
		return
	}

	u.driver.DeleteShader(u.handle)
	u.handle = 0
}
