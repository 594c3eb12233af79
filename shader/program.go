package shader

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
)

// Location is the binding index of a vertex attribute or uniform.
type Location int32

// NotFound is the location reported for names that are not active in a
// program. Uploads to it are silently ignored by the driver.
const NotFound Location = -1

func (l Location) Valid() bool {
	return l >= 0
}

// Program owns a linked shader program.
type Program struct {
	driver Driver
	handle uint32
}

// Link builds a program from units. Link takes ownership of every unit: once
// it returns, whether or not linking succeeded, all of them have been
// detached and destroyed and must not be used again.
func Link(driver Driver, units ...*Unit) (*Program, error) {
	defer func() {
		for _, unit := range units {
			unit.Destroy()
		}
	}()

	if len(units) == 0 {
		return nil, errors.WithStack(ErrNoUnits)
	}
	for i, unit := range units {
		if !unit.Initialized() {
			return nil, errors.Wrapf(ErrUnitReleased, "unit %d", i)
		}
	}

	handle := driver.CreateProgram()
	if handle == 0 {
		return nil, errors.New("shader: could not create program object")
	}

	for _, unit := range units {
		driver.AttachShader(handle, unit.handle)
	}

	driver.LinkProgram(handle)
	linked := driver.ProgramLinkStatus(handle)

	for _, unit := range units {
		driver.DetachShader(handle, unit.handle)
	}

	if !linked {
		log := readInfoLog(driver.ProgramInfoLogLength(handle), func(buf []byte) int32 {
			return driver.ProgramInfoLog(handle, buf)
		})
		driver.DeleteProgram(handle)

		Logger().Debug("program link failed", "handle", handle, "units", len(units))
		return nil, errors.WithStack(&LinkError{Log: log})
	}

	Logger().Debug("program linked", "handle", handle, "units", len(units))
	return &Program{driver: driver, handle: handle}, nil
}

func (p *Program) Handle() uint32 {
	return p.handle
}

func (p *Program) Initialized() bool {
	return p != nil && p.handle != 0
}

// Activate makes p the program used by subsequent draw calls.
func (p *Program) Activate() {
	p.driver.UseProgram(p.handle)
}

func (p *Program) AttributeLocation(name string) Location {
	loc := Location(p.driver.AttribLocation(p.handle, name))
	if !loc.Valid() {
		Logger().Warn("attribute not active in program", "name", name, "program", p.handle)
		return NotFound
	}
	return loc
}

func (p *Program) UniformLocation(name string) Location {
	loc := Location(p.driver.UniformLocation(p.handle, name))
	if !loc.Valid() {
		Logger().Warn("uniform not active in program", "name", name, "program", p.handle)
		return NotFound
	}
	return loc
}

// SetUniformMatrix4 uploads m, column-major, to the uniform at loc. The
// program must be active. Invalid locations are skipped.
func (p *Program) SetUniformMatrix4(loc Location, m mgl32.Mat4) {
	if !loc.Valid() {
		return
	}
	p.driver.UniformMatrix4(int32(loc), &m)
}

// Destroy releases the program object. Only the first call has any effect.
func (p *Program) Destroy() {
	if !p.Initialized() {
		return
	}

	p.driver.DeleteProgram(p.handle)
	p.handle = 0
}
