package shader

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Sources containing this marker fail to compile in fakeDriver.
const syntaxErrorMarker = "#syntax-error"

type fakeShader struct {
	stage    Stage
	source   string
	compiled bool
	log      string
}

type fakeProgram struct {
	attached map[uint32]bool
	linked   bool
	log      string
	attribs  map[string]int32
	uniforms map[string]int32
}

// fakeDriver is an in-memory Driver that counts object creation and deletion.
type fakeDriver struct {
	next uint32

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	shadersCreated, shadersDeleted   int
	programsCreated, programsDeleted int
	badDeletes                       int

	// linkLog makes every link fail with this diagnostic when non-empty.
	linkLog string
	// compileLog overrides the diagnostic of failing compiles.
	compileLog string
	// failCreate makes CreateShader and CreateProgram return zero.
	failCreate bool

	current  uint32
	uploads  map[int32]mgl32.Mat4
	attribs  map[string]int32
	uniforms map[string]int32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  map[uint32]*fakeShader{},
		programs: map[uint32]*fakeProgram{},
		uploads:  map[int32]mgl32.Mat4{},
		attribs:  map[string]int32{"Position": 0, "Color": 1},
		uniforms: map[string]int32{"Projection": 0, "Model": 1},
	}
}

func (d *fakeDriver) live() int {
	return len(d.shaders) + len(d.programs)
}

func (d *fakeDriver) CreateShader(stage Stage) uint32 {
	if d.failCreate {
		return 0
	}
	d.next++
	d.shaders[d.next] = &fakeShader{stage: stage}
	d.shadersCreated++
	return d.next
}

func (d *fakeDriver) ShaderSource(shader uint32, source string) {
	d.shaders[shader].source = source
}

func (d *fakeDriver) CompileShader(shader uint32) {
	s := d.shaders[shader]
	if strings.Contains(s.source, syntaxErrorMarker) {
		s.log = "0:1(1): error: syntax error, unexpected IDENTIFIER"
		if d.compileLog != "" {
			s.log = d.compileLog
		}
		return
	}
	s.compiled = true
}

func (d *fakeDriver) ShaderCompileStatus(shader uint32) bool {
	return d.shaders[shader].compiled
}

func (d *fakeDriver) ShaderInfoLogLength(shader uint32) int32 {
	if d.shaders[shader].log == "" {
		return 0
	}
	return int32(len(d.shaders[shader].log) + 1)
}

func (d *fakeDriver) ShaderInfoLog(shader uint32, buf []byte) int32 {
	return copyLog(d.shaders[shader].log, buf)
}

func (d *fakeDriver) DeleteShader(shader uint32) {
	if _, ok := d.shaders[shader]; !ok {
		d.badDeletes++
		return
	}
	delete(d.shaders, shader)
	d.shadersDeleted++
}

func (d *fakeDriver) CreateProgram() uint32 {
	if d.failCreate {
		return 0
	}
	d.next++
	d.programs[d.next] = &fakeProgram{attached: map[uint32]bool{}}
	d.programsCreated++
	return d.next
}

func (d *fakeDriver) AttachShader(program, shader uint32) {
	d.programs[program].attached[shader] = true
}

func (d *fakeDriver) DetachShader(program, shader uint32) {
	delete(d.programs[program].attached, shader)
}

func (d *fakeDriver) LinkProgram(program uint32) {
	p := d.programs[program]
	if d.linkLog != "" {
		p.log = d.linkLog
		return
	}
	for shader := range p.attached {
		if !d.shaders[shader].compiled {
			p.log = "error: attached shader is not compiled"
			return
		}
	}
	p.linked = true
	p.attribs = d.attribs
	p.uniforms = d.uniforms
}

func (d *fakeDriver) ProgramLinkStatus(program uint32) bool {
	return d.programs[program].linked
}

func (d *fakeDriver) ProgramInfoLogLength(program uint32) int32 {
	if d.programs[program].log == "" {
		return 0
	}
	return int32(len(d.programs[program].log) + 1)
}

func (d *fakeDriver) ProgramInfoLog(program uint32, buf []byte) int32 {
	return copyLog(d.programs[program].log, buf)
}

func (d *fakeDriver) DeleteProgram(program uint32) {
	if _, ok := d.programs[program]; !ok {
		d.badDeletes++
		return
	}
	delete(d.programs, program)
	d.programsDeleted++
}

func (d *fakeDriver) UseProgram(program uint32) {
	d.current = program
}

func (d *fakeDriver) AttribLocation(program uint32, name string) int32 {
	if loc, ok := d.programs[program].attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) UniformLocation(program uint32, name string) int32 {
	if loc, ok := d.programs[program].uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) UniformMatrix4(location int32, m *mgl32.Mat4) {
	d.uploads[location] = *m
}

// copyLog behaves like glGet*InfoLog: it writes a NUL-terminated prefix of
// log that fits in buf and returns its length without the NUL.
func copyLog(log string, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], log)
	buf[n] = 0
	return int32(n)
}
