// Package scanout executes the scan-out consumer protocol in software.
// It walks a geometry's schedule sequence round-robin, extracts the
// scheduled bit from each mapped pixel and accumulates dwell time, exactly
// as the hardware driver would hold planes active on a panel chain. It is
// a verification and preview tool, not a driver: no pins, no timing.
package scanout

import (
	"fmt"
	"image"
	"image/color"

	"github.com/psybercell/hub75geo/pkg/framebuffer"
	"github.com/psybercell/hub75geo/pkg/hub75"
)

// Channel samples are widened so the most significant channel bit lands on
// plane shift 10.
const channelShift = 3

// Simulator replays a geometry against packed pixel data.
type Simulator struct {
	geom *hub75.Geometry
}

// New returns a simulator for geom.
func New(geom *hub75.Geometry) *Simulator {
	return &Simulator{geom: geom}
}

// Weights accumulates, per framebuffer offset, the total time that offset's
// pixel word holds its plane bit active across one full cycle of the
// schedule sequence. pix must cover every offset the map addresses.
//
// Rotated orientations can map scan slots outside the canvas (the cw
// transform does so by design); such slots sample no framebuffer word and
// accumulate nothing, mirroring a driver that clocks out dark pixels for
// them.
func (s *Simulator) Weights(pix []uint32) ([]uint64, error) {
	if len(pix) < s.geom.Width()*s.geom.Height() {
		return nil, fmt.Errorf("scanout: pixel buffer holds %d words, want %d", len(pix), s.geom.Width()*s.geom.Height())
	}

	weights := make([]uint64, s.geom.Width()*s.geom.Height())
	for _, sched := range s.geom.Schedules() {
		for _, entry := range sched {
			for _, off := range s.geom.Map() {
				if off < 0 || off >= len(weights) {
					continue
				}
				if (pix[off]>>entry.Shift)&1 == 1 {
					weights[off] += uint64(entry.ActiveTime)
				}
			}
		}
	}
	return weights, nil
}

// channelWeight accumulates dwell for one widened 8-bit sample.
func (s *Simulator) channelWeight(v uint32) uint64 {
	var w uint64
	for _, sched := range s.geom.Schedules() {
		for _, entry := range sched {
			if (v>>entry.Shift)&1 == 1 {
				w += uint64(entry.ActiveTime)
			}
		}
	}
	return w
}

// Render reconstructs the image as it would appear on the physical panel
// chain: each scan slot is placed at the canvas position its panel wiring
// puts it, showing whichever logical pixel the map routed there.
// Per-channel dwell is normalized against a fully lit sample, so a plain
// normal-orientation geometry reproduces the input image.
func (s *Simulator) Render(fb *framebuffer.Framebuffer) *image.RGBA {
	geom := s.geom
	width := geom.Width()
	panelHeight := 2 << geom.AddrLines()
	halfPanel := 1 << geom.AddrLines()
	pix := fb.Pix()

	maxWeight := s.channelWeight(0x7FF)
	img := image.NewRGBA(image.Rect(0, 0, width, geom.Height()))

	m := geom.Map()
	for i := 0; i < halfPanel; i++ {
		for j := 0; j < geom.PixelsAcross(); j++ {
			panelNo := j / width
			panelIdx := j % width

			// Same wiring arithmetic as the map builder: this is where
			// scan slot (i, j) lands on the canvas.
			var x, y0, y1 int
			if geom.Serpentine() && panelNo%2 == 1 {
				x = width - panelIdx - 1
				y0 = (panelNo+1)*panelHeight - i - 1
				y1 = y0 - halfPanel
			} else {
				x = panelIdx
				y0 = panelNo*panelHeight + i
				y1 = y0 + halfPanel
			}

			slot := 2 * (i*geom.PixelsAcross() + j)
			s.setPixel(img, x, y0, sample(pix, m[slot]), maxWeight)
			s.setPixel(img, x, y1, sample(pix, m[slot+1]), maxWeight)
		}
	}
	return img
}

// sample reads a mapped framebuffer word, treating offsets the transform
// pushed off the canvas as dark.
func sample(pix []uint32, off int) uint32 {
	if off < 0 || off >= len(pix) {
		return 0
	}
	return pix[off]
}

func (s *Simulator) setPixel(img *image.RGBA, x, y int, word uint32, maxWeight uint64) {
	r, g, b := framebuffer.Unpack(word)
	img.SetRGBA(x, y, color.RGBA{
		R: s.renderChannel(r, maxWeight),
		G: s.renderChannel(g, maxWeight),
		B: s.renderChannel(b, maxWeight),
		A: 255,
	})
}

func (s *Simulator) renderChannel(v uint8, maxWeight uint64) uint8 {
	if maxWeight == 0 {
		return 0
	}
	w := s.channelWeight(uint32(v) << channelShift)
	return uint8(w * 255 / maxWeight)
}
