package hub75

import (
	"errors"
	"fmt"
)

// Errors reported during geometry construction. All of them are detected
// synchronously and are fatal for the configuration that produced them.
var (
	ErrPanelHeight    = errors.New("hub75: height does not evenly divide calculated panel height")
	ErrPlaneCount     = errors.New("hub75: plane count out of range")
	ErrTemporalPlanes = errors.New("hub75: temporal plane count out of range")
	ErrMapSize        = errors.New("hub75: map size does not match calculated pixel count")
)

// MatrixMap is an ordered sequence of framebuffer offsets. Its order is the
// scan sequence: entry k tells the scan-out driver which logical pixel to
// sample at physical scan slot k.
type MatrixMap []int

// MakeMatrixMap builds the pixel-address map for a chain of panels covering
// a width x height canvas.
//
// addrLines is the number of row-address lines; each panel is therefore
// 2*2^addrLines pixels tall and scans two rows per multiplex state, half a
// panel apart. Vertically stacked panels extend the scan line, so the map
// covers width*verticalStacks positions per row-select state. With
// serpentine wiring every odd stacked panel is mounted rotated, which
// mirrors its columns and counts its rows from the trailing edge.
//
// The emitted order is a hardware wiring contract: for a given
// configuration it must be reproduced bit-for-bit.
func MakeMatrixMap(width, height, addrLines int, serpentine bool, tr Transform) (MatrixMap, error) {
	panelHeight := 2 << addrLines
	if height%panelHeight != 0 {
		return nil, fmt.Errorf("%w: height %d, panel height %d", ErrPanelHeight, height, panelHeight)
	}

	halfPanelHeight := 1 << addrLines
	verticalStacks := height / panelHeight
	pixelsAcross := width * verticalStacks

	result := make(MatrixMap, 0, width*height)
	for i := 0; i < halfPanelHeight; i++ {
		for j := 0; j < pixelsAcross; j++ {
			panelNo := j / width
			panelIdx := j % width

			var x, y0, y1 int
			if serpentine && panelNo%2 == 1 {
				x = width - panelIdx - 1
				y0 = (panelNo+1)*panelHeight - i - 1
				y1 = y0 - halfPanelHeight
			} else {
				x = panelIdx
				y0 = panelNo*panelHeight + i
				y1 = y0 + halfPanelHeight
			}
			result = append(result, tr(width, height, x, y0))
			result = append(result, tr(width, height, x, y1))
		}
	}
	return result, nil
}
