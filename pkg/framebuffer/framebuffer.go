// Package framebuffer holds the packed-pixel buffer shared between frame
// producers and the matrix scan-out driver. Pixels are stored row-major,
// one 32-bit word per canvas pixel, packed 0x00RRGGBB.
package framebuffer

import (
	"fmt"
	"image"
	"image/color"
)

// Pack packs an 8-bit RGB sample into a framebuffer word.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// PackColor packs any color.Color into a framebuffer word, discarding
// alpha.
func PackColor(c color.Color) uint32 {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return Pack(rgba.R, rgba.G, rgba.B)
}

// Unpack splits a framebuffer word back into its RGB samples.
func Unpack(v uint32) (r, g, b uint8) {
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Framebuffer is a width x height canvas of packed pixels. It is plain
// mutable memory: the geometry's pixel-address map indexes into Pix, and
// coordination with a concurrently scanning reader is the caller's
// responsibility (in practice, writes land between refresh cycles).
type Framebuffer struct {
	width  int
	height int
	pix    []uint32
}

// New allocates a zeroed (black) framebuffer.
func New(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer: invalid dimensions %dx%d", width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}, nil
}

// Width is the canvas width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height is the canvas height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Pix is the backing store, row-major. Offsets produced by a matrix map
// index directly into it.
func (f *Framebuffer) Pix() []uint32 { return f.pix }

// Set writes a packed pixel at (x, y). Out-of-bounds writes are dropped.
func (f *Framebuffer) Set(x, y int, v uint32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[x+f.width*y] = v
}

// At reads the packed pixel at (x, y).
func (f *Framebuffer) At(x, y int) uint32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.pix[x+f.width*y]
}

// Clear blanks the canvas.
func (f *Framebuffer) Clear() {
	for i := range f.pix {
		f.pix[i] = 0
	}
}

// DrawImage fills the framebuffer from img, packing each pixel. The image
// is sampled from its bounds origin; areas outside the canvas are ignored.
func (f *Framebuffer) DrawImage(img image.Image) {
	b := img.Bounds()
	w := b.Dx()
	if w > f.width {
		w = f.width
	}
	h := b.Dy()
	if h > f.height {
		h = f.height
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b2, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			f.pix[x+f.width*y] = Pack(uint8(r>>8), uint8(g>>8), uint8(b2>>8))
		}
	}
}

// Image renders the framebuffer contents back into an RGBA image, mostly
// for previews and tests.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			r, g, b := Unpack(f.pix[x+f.width*y])
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
