// Package pattern generates the test images used to verify panel wiring:
// a numbered panel grid with corner markers, SMPTE-style color bars and
// per-panel identification frames.
package pattern

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var gridLine = color.RGBA{R: 40, G: 40, B: 40, A: 255}

// Corner marker colors, clockwise from top-left: red, green, yellow, blue.
var (
	markerTL = color.RGBA{R: 255, A: 255}
	markerTR = color.RGBA{G: 255, A: 255}
	markerBR = color.RGBA{R: 255, G: 255, A: 255}
	markerBL = color.RGBA{B: 255, A: 255}
)

// Grid draws a coordinate grid with one numbered cell per panel, so a
// glance at the display tells which physical panel shows which logical
// panel index (1-based, row-major).
func Grid(width, height, panelWidth, panelHeight int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	for x := 0; x < width; x += 8 {
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, gridLine)
		}
	}
	for y := 0; y < height; y += 8 {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, gridLine)
		}
	}

	panelsPerRow := width / panelWidth
	for py := 0; py*panelHeight < height; py++ {
		for px := 0; px*panelWidth < width; px++ {
			x0 := px * panelWidth
			y0 := py * panelHeight

			marker(img, x0, y0, markerTL)
			marker(img, x0+panelWidth-4, y0, markerTR)
			marker(img, x0+panelWidth-4, y0+panelHeight-4, markerBR)
			marker(img, x0, y0+panelHeight-4, markerBL)

			label(img, x0+panelWidth/2-3, y0+panelHeight/2+4,
				fmt.Sprintf("%d", py*panelsPerRow+px+1))
		}
	}
	return img
}

func marker(img *image.RGBA, x0, y0 int, c color.RGBA) {
	for y := y0; y < y0+4; y++ {
		for x := x0; x < x0+4; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func label(img *image.RGBA, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// Bars draws 75% SMPTE color bars: white, yellow, cyan, green, magenta,
// red, blue, left to right.
func Bars(width, height int) *image.RGBA {
	const level = 191 // 75%
	colors := []color.RGBA{
		{R: level, G: level, B: level, A: 255},
		{R: level, G: level, A: 255},
		{G: level, B: level, A: 255},
		{G: level, A: 255},
		{R: level, B: level, A: 255},
		{R: level, A: 255},
		{B: level, A: 255},
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		c := colors[x*len(colors)/width]
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Identification colors cycle through the six panel hues used by the
// reference wiring tests.
var idColors = []color.RGBA{
	{R: 255, G: 100, B: 100, A: 255},
	{R: 100, G: 255, B: 100, A: 255},
	{R: 100, G: 100, B: 255, A: 255},
	{R: 255, G: 255, B: 100, A: 255},
	{R: 255, G: 100, B: 255, A: 255},
	{R: 100, G: 255, B: 255, A: 255},
}

// Identify returns one frame per panel, each lighting a single panel in a
// distinct hue with its number. Stepping through the frames on hardware
// reveals the physical chain order.
func Identify(width, height, panelWidth, panelHeight int) []*image.RGBA {
	panelsPerRow := width / panelWidth
	panelRows := height / panelHeight

	frames := make([]*image.RGBA, 0, panelsPerRow*panelRows)
	for py := 0; py < panelRows; py++ {
		for px := 0; px < panelsPerRow; px++ {
			img := image.NewRGBA(image.Rect(0, 0, width, height))
			draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

			n := py*panelsPerRow + px
			rect := image.Rect(px*panelWidth, py*panelHeight, (px+1)*panelWidth, (py+1)*panelHeight)
			draw.Draw(img, rect, image.NewUniform(idColors[n%len(idColors)]), image.Point{}, draw.Src)
			label(img, rect.Min.X+panelWidth/2-3, rect.Min.Y+panelHeight/2+4, fmt.Sprintf("%d", n+1))
			frames = append(frames, img)
		}
	}
	return frames
}
