package hub75

import "fmt"

// Config holds the static panel-chain configuration a Geometry is built
// from.
type Config struct {
	// Width and Height are the logical canvas dimensions in pixels.
	Width  int
	Height int

	// AddrLines is the number of row-address lines on the panels.
	AddrLines int

	// Lanes is the number of parallel data lanes; standard HUB75 panels
	// scan two rows at once, one per lane. Zero means 2.
	Lanes int

	// Planes is the total bit-plane count, 1 to 10.
	Planes int

	// TemporalPlanes enables temporal dithering when non-zero (2 or 4).
	TemporalPlanes int

	// Serpentine marks alternate vertically stacked panels as mounted
	// rotated.
	Serpentine bool

	// Transform remaps canvas coordinates before addressing. Nil means
	// Normal.
	Transform Transform
}

// Geometry is the immutable aggregate handed to the scan-out driver: the
// panel topology, the pixel-address map and the bit-plane schedules. None
// of its fields change after construction, so a single Geometry may be read
// concurrently without locking. Reconfiguring a live display means building
// a new Geometry and atomically swapping the reference the driver reads at
// a frame boundary, never mutating one in use.
type Geometry struct {
	pixelsAcross int
	addrLines    int
	lanes        int
	width        int
	height       int
	serpentine   bool
	matrixMap    MatrixMap
	schedules    ScheduleSequence
}

// NewGeometry assembles a Geometry from a prebuilt map and schedule
// sequence. serpentine must match the wiring the map encodes, since
// consumers use it to place scan slots on the canvas. The map length must
// equal (lanes << addrLines) * pixelsAcross; any other validation belongs
// to the builders that produced the parts.
func NewGeometry(pixelsAcross, addrLines, lanes, width, height int, serpentine bool, m MatrixMap, schedules ScheduleSequence) (*Geometry, error) {
	pixelsDown := lanes << addrLines
	if len(m) != pixelsDown*pixelsAcross {
		return nil, fmt.Errorf("%w: map %d, want %d*%d", ErrMapSize, len(m), pixelsDown, pixelsAcross)
	}
	return &Geometry{
		pixelsAcross: pixelsAcross,
		addrLines:    addrLines,
		lanes:        lanes,
		width:        width,
		height:       height,
		serpentine:   serpentine,
		matrixMap:    m,
		schedules:    schedules,
	}, nil
}

// BuildGeometry builds the map and schedules from cfg and assembles the
// Geometry. It fails fast on the first invalid parameter and never returns
// a partially constructed value.
func BuildGeometry(cfg Config) (*Geometry, error) {
	tr := cfg.Transform
	if tr == nil {
		tr = Normal
	}
	lanes := cfg.Lanes
	if lanes == 0 {
		lanes = 2
	}

	m, err := MakeMatrixMap(cfg.Width, cfg.Height, cfg.AddrLines, cfg.Serpentine, tr)
	if err != nil {
		return nil, err
	}

	panelHeight := 2 << cfg.AddrLines
	pixelsAcross := cfg.Width * (cfg.Height / panelHeight)

	schedules, err := TemporalDitherSchedule(cfg.Planes, pixelsAcross, cfg.TemporalPlanes)
	if err != nil {
		return nil, err
	}

	return NewGeometry(pixelsAcross, cfg.AddrLines, lanes, cfg.Width, cfg.Height, cfg.Serpentine, m, schedules)
}

// PixelsAcross is the number of scan positions per row-select state.
func (g *Geometry) PixelsAcross() int { return g.pixelsAcross }

// AddrLines is the row-address line count.
func (g *Geometry) AddrLines() int { return g.addrLines }

// Lanes is the parallel data lane count.
func (g *Geometry) Lanes() int { return g.lanes }

// Width is the logical canvas width in pixels.
func (g *Geometry) Width() int { return g.width }

// Height is the logical canvas height in pixels.
func (g *Geometry) Height() int { return g.height }

// Serpentine reports whether the map encodes serpentine panel wiring.
func (g *Geometry) Serpentine() bool { return g.serpentine }

// Map is the pixel-address map. Callers must treat it as read-only.
func (g *Geometry) Map() MatrixMap { return g.matrixMap }

// Schedules is the bit-plane schedule sequence, consumed round-robin one
// Schedule per displayed frame. Callers must treat it as read-only.
func (g *Geometry) Schedules() ScheduleSequence { return g.schedules }
