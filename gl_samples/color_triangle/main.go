package main

import (
	"embed"
	"log"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/glwrapper/examples/gl_samples/utils"
	"github.com/glwrapper/examples/shader"
	"github.com/glwrapper/examples/transform"
	"github.com/loov/hrtime"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed shaders
var fileSystem embed.FS

const (
	// Each vertex is a 2D position followed by an RGB color.
	positionSize = 2
	colorSize    = 3
	vertexStride = positionSize + colorSize

	triangleRadius = 0.8
)

/*
Draw a triangle with one red, one green and one blue corner, spinning a
quarter turn every 20 seconds. The square [-1,1]x[-1,1] stays visible and
undistorted whatever the window shape. Press Q or close the window to quit.
*/

func triangleVertices(radius float32) []float32 {
	colors := [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	vertices := make([]float32, 0, 3*vertexStride)
	for i, color := range colors {
		angle := float32(i) * 2 * math32.Pi / 3
		vertices = append(vertices, math32.Cos(angle)*radius, math32.Sin(angle)*radius)
		vertices = append(vertices, color[:]...)
	}
	return vertices
}

func buildProgram(driver shader.Driver) (*shader.Program, error) {
	vertSource, err := fileSystem.ReadFile("shaders/triangle.vert")
	if err != nil {
		return nil, err
	}

	fragSource, err := fileSystem.ReadFile("shaders/triangle.frag")
	if err != nil {
		return nil, err
	}

	vert, err := shader.CompileVertex(driver, string(vertSource))
	if err != nil {
		return nil, err
	}

	frag, err := shader.CompileFragment(driver, string(fragSource))
	if err != nil {
		vert.Destroy()
		return nil, err
	}

	return shader.Link(driver, vert, frag)
}

type locations struct {
	position, color   shader.Location
	projection, model shader.Location
}

func run() error {
	info := &utils.SampleInfo{}
	err := info.ProcessCommandLineArgs()
	if err != nil {
		return err
	}

	err = info.InitWindowSize(info.Config.Window.Width, info.Config.Window.Height)
	if err != nil {
		return err
	}

	err = info.InitWindow()
	if err != nil {
		return err
	}
	defer info.Destroy()

	err = info.InitGLContext()
	if err != nil {
		return err
	}
	log.Printf("OpenGL %s", info.GLVersion)

	program, err := buildProgram(info.Driver)
	if err != nil {
		return err
	}
	defer program.Destroy()

	program.Activate()

	names := info.Config.Names
	locs := locations{
		position:   program.AttributeLocation(names.Position),
		color:      program.AttributeLocation(names.Color),
		projection: program.UniformLocation(names.Projection),
		model:      program.UniformLocation(names.Model),
	}
	for name, loc := range map[string]shader.Location{
		names.Position:   locs.position,
		names.Color:      locs.color,
		names.Projection: locs.projection,
		names.Model:      locs.model,
	} {
		if !loc.Valid() {
			log.Printf("%q is not active in the triangle program and will be skipped", name)
		}
	}

	triangle := &utils.VertexObject{}
	err = triangle.InitVertexObject(triangleVertices(triangleRadius), vertexStride)
	if err != nil {
		return err
	}
	defer triangle.Destroy()

	triangle.BindAttribute(locs.position, positionSize, 0)
	triangle.BindAttribute(locs.color, colorSize, positionSize)

	if info.ResizeToDrawable() {
		program.SetUniformMatrix4(locs.projection, info.Projection)
	}

	mainLoop(info, program, triangle, locs)
	return nil
}

func mainLoop(info *utils.SampleInfo, program *shader.Program, triangle *utils.VertexObject, locs locations) {
	rendering, saved := true, false
	start := hrtime.Now()

appLoop:
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				break appLoop
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_q {
					break appLoop
				}
			case *sdl.WindowEvent:
				switch e.Event {
				case sdl.WINDOWEVENT_MINIMIZED:
					rendering = false
				case sdl.WINDOWEVENT_RESTORED:
					rendering = true
				case sdl.WINDOWEVENT_SIZE_CHANGED:
					rendering = info.ResizeToDrawable()
					if rendering {
						program.SetUniformMatrix4(locs.projection, info.Projection)
					}
				}
			}
		}

		if !rendering {
			sdl.Delay(10)
			continue
		}

		info.Clear()
		program.SetUniformMatrix4(locs.model, transform.RotationZ(transform.SpinAngle(hrtime.Since(start))))
		triangle.Draw(0, 3)

		if info.Options.SaveImages && !saved {
			saved = true
			if err := info.WritePNG("color_triangle"); err != nil {
				log.Println(err)
			}
		}

		info.Present()
	}
}

func main() {
	runtime.LockOSThread()

	err := run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
