// Package opengl draws gui frames with OpenGL 4.1 core and feeds it input
// from a GLFW window.
//
// Renderer implements gui.Renderer and font.AtlasUploader, so the same
// value can be handed to gui.New and font.WithUploader.
package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/imx/gui"
)

// Renderer draws gui.DrawLists.
type Renderer struct {
	program  uint32
	vao      uint32
	vbo, ebo uint32
	bitmap   uint32

	uProj, uTex, uUseTex, uRGBA int32

	width, height int

	// Textures sampled as full color; all others are coverage in R.
	rgba map[uint32]bool

	log *slog.Logger
}

const vertexShader = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

uniform mat4 uProj;

out vec2 vUV;
out vec4 vColor;

void main() {
    vUV = aUV;
    vColor = aColor;
    gl_Position = uProj * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Coverage textures (the bitmap font and font.Manager atlases) keep their
// alpha in R and are tinted by the vertex color.
const fragmentShader = `
#version 410 core
in vec2 vUV;
in vec4 vColor;

uniform sampler2D uTex;
uniform bool uUseTex;
uniform bool uRGBA;

out vec4 outColor;

void main() {
    if (!uUseTex) {
        outColor = vColor;
        return;
    }
    vec4 t = texture(uTex, vUV);
    outColor = uRGBA ? t * vColor : vec4(vColor.rgb, vColor.a * t.r);
}
` + "\x00"

// NewRenderer compiles the UI program and uploads the bitmap font. A GL
// context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		rgba:   make(map[uint32]bool),
		log:    gui.NewLogger("opengl"),
	}

	prog, err := linkProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}
	r.program = prog
	r.uProj = gl.GetUniformLocation(prog, gl.Str("uProj\x00"))
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	r.uUseTex = gl.GetUniformLocation(prog, gl.Str("uUseTex\x00"))
	r.uRGBA = gl.GetUniformLocation(prog, gl.Str("uRGBA\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	var v gui.Vertex
	stride := int32(unsafe.Sizeof(v))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.Pos))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(v.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.bitmap = uploadCoverage(rasterBitmapFont(), bitmapTexW, bitmapTexH, gl.NEAREST)
	r.log.Debug("renderer ready", "width", width, "height", height)
	return r, nil
}

// FontTextureID returns the built-in bitmap font texture.
func (r *Renderer) FontTextureID() uint32 {
	return r.bitmap
}

// UploadAtlas uploads a single-channel glyph atlas and returns its texture.
func (r *Renderer) UploadAtlas(pix []byte, w, h int) (uint32, error) {
	if w <= 0 || h <= 0 || len(pix) < w*h {
		return 0, fmt.Errorf("opengl: atlas %dx%d with %d bytes", w, h, len(pix))
	}
	tex := uploadCoverage(pix, w, h, gl.LINEAR)
	if tex == 0 {
		return 0, errors.New("opengl: glGenTextures returned 0")
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, fmt.Errorf("opengl: atlas upload: GL error 0x%x", code)
	}
	return tex, nil
}

// DeleteTexture frees a texture from UploadAtlas or one registered with
// RegisterRGBATexture.
func (r *Renderer) DeleteTexture(id uint32) {
	if id == 0 || id == r.bitmap {
		return
	}
	delete(r.rgba, id)
	gl.DeleteTextures(1, &id)
}

// RegisterRGBATexture makes draw commands using id sample all four
// channels instead of coverage.
func (r *Renderer) RegisterRGBATexture(id uint32) {
	r.rgba[id] = true
}

// UnregisterRGBATexture reverts RegisterRGBATexture.
func (r *Renderer) UnregisterRGBATexture(id uint32) {
	delete(r.rgba, id)
}

// Resize sets the framebuffer size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

func uploadCoverage(pix []byte, w, h int, filter int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// glState is the slice of GL state Render touches.
type glState struct {
	program            int32
	blendSrc, blendDst int32
	scissor            [4]int32
	blend, depth, cull bool
	scissorTest        bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissor[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func setCap(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setCap(gl.BLEND, s.blend)
	setCap(gl.DEPTH_TEST, s.depth)
	setCap(gl.CULL_FACE, s.cull)
	setCap(gl.SCISSOR_TEST, s.scissorTest)
	gl.Scissor(s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3])
}

// Render draws dl and restores the GL state it changed.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := saveState()
	defer saved.restore()
	defer gl.BindVertexArray(0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.uTex, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := scissorBox(cmd.ClipRect, r.height)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.uUseTex, 1)
			gl.Uniform1i(r.uRGBA, boolInt(r.rgba[cmd.TextureID]))
		} else {
			gl.Uniform1i(r.uUseTex, 0)
			gl.Uniform1i(r.uRGBA, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	return nil
}

// scissorBox converts a top-left clip rect into a bottom-left GL scissor
// box clamped to the framebuffer origin.
func scissorBox(clip [4]float32, fbHeight int) (x, y, w, h int32, ok bool) {
	x = int32(clip[0])
	y = int32(float32(fbHeight) - clip[3])
	w = int32(clip[2] - clip[0])
	h = int32(clip[3] - clip[1])
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	return x, y, w, h, w > 0 && h > 0
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// Delete frees every GL object the renderer created. Atlases uploaded for
// font.Manager are freed by the manager.
func (r *Renderer) Delete() {
	if r.bitmap != 0 {
		gl.DeleteTextures(1, &r.bitmap)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func compileShader(kind uint32, src string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetShaderInfoLog(sh, n, nil, &msg[0])
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile shader: %s", msg[:n])
	}
	return sh, nil
}

func linkProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vsSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fsSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetProgramInfoLog(prog, n, nil, &msg[0])
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", msg[:n])
	}
	return prog, nil
}

// orthoMatrix is a column-major orthographic projection.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
