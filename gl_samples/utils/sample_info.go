package utils

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/glwrapper/examples/gl_samples/config"
	"github.com/glwrapper/examples/gldriver"
	"github.com/glwrapper/examples/transform"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

type glAttribute struct {
	attr  sdl.GLattr
	value int
}

type SampleInfo struct {
	Config  *config.Config
	Options config.Options

	Window    *sdl.Window
	GLContext sdl.GLContext
	Driver    gldriver.Driver
	GLVersion string
	Hidden    bool

	Width, Height int32
	Bounds        transform.Bounds
	Projection    mgl32.Mat4
}

func (i *SampleInfo) InitWindowSize(defaultWidth, defaultHeight int) error {
	i.Width = int32(defaultWidth)
	i.Height = int32(defaultHeight)
	return nil
}

func (i *SampleInfo) InitWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "could not initialize SDL video")
	}

	attributes := []glAttribute{
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_MAJOR_VERSION, GLMajorVersion},
		{sdl.GL_CONTEXT_MINOR_VERSION, GLMinorVersion},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_RED_SIZE, ColorBits},
		{sdl.GL_GREEN_SIZE, ColorBits},
		{sdl.GL_BLUE_SIZE, ColorBits},
		{sdl.GL_DEPTH_SIZE, DepthBits},
	}
	if samples := i.config().Window.Samples; samples > 0 {
		attributes = append(attributes,
			glAttribute{sdl.GL_MULTISAMPLEBUFFERS, 1},
			glAttribute{sdl.GL_MULTISAMPLESAMPLES, samples},
		)
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return errors.Wrapf(err, "could not set GL attribute %d", a.attr)
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if i.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}

	window, err := sdl.CreateWindow(i.config().Window.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, i.Width, i.Height, flags)
	if err != nil {
		return errors.Wrap(err, "could not create window")
	}
	i.Window = window
	return nil
}

// InitGLContext creates the GL context for the window, makes it current and
// loads the GL entry points into Driver.
func (i *SampleInfo) InitGLContext() error {
	ctx, err := i.Window.GLCreateContext()
	if err != nil {
		return errors.Wrap(err, "could not create GL context")
	}
	i.GLContext = ctx

	if i.config().Window.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			log.Printf("vsync unavailable: %v", err)
		}
	}

	i.Driver, i.GLVersion, err = gldriver.Init(sdl.GLGetProcAddress)
	if err != nil {
		return err
	}

	c := i.config().ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	return nil
}

// Resize updates the viewport and projection for a width x height drawable.
// An empty surface keeps the previous projection and reports false.
func (i *SampleInfo) Resize(width, height int32) bool {
	bounds, err := transform.FitBounds(width, height)
	if err != nil {
		return false
	}

	i.Width, i.Height = width, height
	i.Bounds = bounds
	i.Projection = bounds.Projection()
	gl.Viewport(0, 0, width, height)
	return true
}

// ResizeToDrawable resizes to the window's drawable size, which differs from
// the window size on high-DPI displays.
func (i *SampleInfo) ResizeToDrawable() bool {
	w, h := i.Window.GLGetDrawableSize()
	return i.Resize(w, h)
}

func (i *SampleInfo) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (i *SampleInfo) Present() {
	i.Window.GLSwap()
}

// Destroy tears down the context, the window and SDL. It is safe to call more
// than once.
func (i *SampleInfo) Destroy() {
	if i.GLContext != nil {
		sdl.GLDeleteContext(i.GLContext)
		i.GLContext = nil
	}

	if i.Window != nil {
		if err := i.Window.Destroy(); err != nil {
			log.Println(err)
		}
		i.Window = nil
	}

	sdl.Quit()
}

func (i *SampleInfo) config() *config.Config {
	if i.Config == nil {
		i.Config = config.Default()
	}
	return i.Config
}
