package pattern

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestGrid(t *testing.T) {
	img := Grid(192, 64, 64, 32)

	if got := img.Bounds().Dx(); got != 192 {
		t.Fatalf("width = %d, want 192", got)
	}

	// Corner markers of the first panel.
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("top-left marker = %v, want red", got)
	}
	if got := img.RGBAAt(63, 1); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("top-right marker = %v, want green", got)
	}
	if got := img.RGBAAt(0, 31); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("bottom-left marker = %v, want blue", got)
	}

	// Grid lines every 8 pixels outside marker areas.
	if got := img.RGBAAt(16, 10); got != gridLine {
		t.Errorf("grid line pixel = %v, want %v", got, gridLine)
	}
	if got := img.RGBAAt(13, 13); got != (color.RGBA{A: 255}) {
		t.Errorf("cell interior = %v, want black", got)
	}
}

func TestBars(t *testing.T) {
	img := Bars(70, 8)

	want := []color.RGBA{
		{R: 191, G: 191, B: 191, A: 255},
		{R: 191, G: 191, A: 255},
		{G: 191, B: 191, A: 255},
		{G: 191, A: 255},
		{R: 191, B: 191, A: 255},
		{R: 191, A: 255},
		{B: 191, A: 255},
	}
	for i, c := range want {
		x := i*10 + 5 // middle of each 10px bar
		if got := img.RGBAAt(x, 4); got != c {
			t.Errorf("bar %d at x=%d = %v, want %v", i, x, got, c)
		}
	}
}

func TestIdentify(t *testing.T) {
	frames := Identify(192, 64, 64, 32)
	if len(frames) != 6 {
		t.Fatalf("frames = %d, want 6", len(frames))
	}

	// Frame 0 lights only the first panel.
	if got := frames[0].RGBAAt(10, 10); got != idColors[0] {
		t.Errorf("frame 0 panel pixel = %v, want %v", got, idColors[0])
	}
	if got := frames[0].RGBAAt(100, 10); got != (color.RGBA{A: 255}) {
		t.Errorf("frame 0 outside pixel = %v, want black", got)
	}

	// Frame 4 lights panel 5, second row middle.
	if got := frames[4].RGBAAt(70, 40); got != idColors[4] {
		t.Errorf("frame 4 panel pixel = %v, want %v", got, idColors[4])
	}
}

func TestSVG(t *testing.T) {
	const doc = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">` +
		`<rect x="0" y="0" width="10" height="10" fill="#ff0000"/></svg>`
	path := filepath.Join(t.TempDir(), "box.svg")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := SVG(path, 64, 32)
	if err != nil {
		t.Fatalf("SVG() error = %v", err)
	}
	if got := img.RGBAAt(32, 16); got.R < 200 || got.G > 50 {
		t.Errorf("center pixel = %v, want red fill", got)
	}
}

func TestSVGMissingFile(t *testing.T) {
	if _, err := SVG(filepath.Join(t.TempDir(), "nope.svg"), 8, 8); err == nil {
		t.Error("SVG() with missing file did not return error")
	}
}
