// Package renderer draws the climbing scene as coloured wireframe lines.
package renderer

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cliffhanger/internal/logger"
	"github.com/Faultbox/cliffhanger/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	VSync  bool
}

// floatsPerVertex is position (x, y, z) + colour (r, g, b).
const floatsPerVertex = 6

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	shaderProgram uint32
	mvpLocation   int32

	// Streamed line geometry, re-uploaded every draw
	lineVAO      uint32
	lineVBO      uint32
	lineCapacity int // in floats
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.53, 0.72, 0.88, 1.0) // Sky blue
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.shaderProgram, err = r.createShaderProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.mvpLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("uMVP\x00"))

	r.createLineBuffer()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.shaderProgram != 0 {
		gl.DeleteProgram(r.shaderProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// AspectRatio returns the viewport width over height.
func (r *Renderer) AspectRatio() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// DrawLines draws interleaved [x, y, z, r, g, b] vertices as a line list.
func (r *Renderer) DrawLines(vertices []float32, mvp math.Mat4) {
	if len(vertices) < 2*floatsPerVertex {
		return
	}

	gl.UseProgram(r.shaderProgram)
	gl.UniformMatrix4fv(r.mvpLocation, 1, false, mvp.Ptr())

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	if len(vertices) > r.lineCapacity {
		// Grow geometrically to avoid reallocating every frame
		r.lineCapacity = max(len(vertices), 2*r.lineCapacity)
		gl.BufferData(gl.ARRAY_BUFFER, r.lineCapacity*4, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, unsafe.Pointer(&vertices[0]))

	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/floatsPerVertex))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// ReadPixels returns the back buffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// createShaderProgram creates the line shader program.
func (r *Renderer) createShaderProgram() (uint32, error) {
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec3 aPos;
		layout (location = 1) in vec3 aColor;

		uniform mat4 uMVP;

		out vec3 vertexColor;

		void main() {
			gl_Position = uMVP * vec4(aPos, 1.0);
			vertexColor = aColor;
		}
	` + "\x00"

	fragmentShaderSource := `
		#version 410 core

		in vec3 vertexColor;
		out vec4 FragColor;

		void main() {
			FragColor = vec4(vertexColor, 1.0);
		}
	` + "\x00"

	// Compile vertex shader
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	// Compile fragment shader
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Check link status
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %s", log)
	}

	logger.Debug("shader program created", zap.Uint32("program", program))
	return program, nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	// Check compile status
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}

// createLineBuffer sets up the streamed line VAO/VBO.
func (r *Renderer) createLineBuffer() {
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)

	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, floatsPerVertex*4, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, floatsPerVertex*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("line buffer created",
		zap.Uint32("vao", r.lineVAO),
		zap.Uint32("vbo", r.lineVBO),
	)
}
