package hub75

import "fmt"

// ScheduleEntry describes one bit-plane of a scan frame: Shift selects
// which bit of the packed pixel value the plane displays, ActiveTime how
// long (in clock units) the plane stays lit.
type ScheduleEntry struct {
	Shift      uint32
	ActiveTime uint32
}

// Schedule is one full grayscale sub-frame, most significant plane first.
type Schedule []ScheduleEntry

// ScheduleSequence is consumed round-robin by the scan-out driver, one
// Schedule per displayed frame. Length 1 unless temporal dithering is on.
type ScheduleSequence []Schedule

// SimpleSchedule builds the plain binary-code-modulation schedule: planes
// entries with each plane lit for half the time of the one before it. The
// base dwell is padded up from 2^planes until it covers pixelsAcross
// clocks, so even the least significant plane outlasts one scan line.
func SimpleSchedule(planes, pixelsAcross int) (ScheduleSequence, error) {
	if planes < 1 || planes > 10 {
		return nil, fmt.Errorf("%w: %d", ErrPlaneCount, planes)
	}

	maxCount := uint32(1) << planes
	for maxCount < uint32(pixelsAcross) {
		maxCount <<= 1
	}

	result := make(Schedule, 0, planes)
	for i := 0; i < planes; i++ {
		result = append(result, ScheduleEntry{
			Shift:      uint32(10 - i),
			ActiveTime: maxCount >> i,
		})
	}
	return ScheduleSequence{result}, nil
}

// TemporalDitherSchedule builds a schedule sequence that shows the top
// planes every frame but spreads the lowest temporalPlanes planes across a
// cycle of temporalPlanes frames, one per frame. Fewer planes per frame
// means a shorter scan and a higher refresh rate; averaged over the cycle
// the low bits still carry their correct binary weight, which the eye
// integrates over a few tens of milliseconds.
//
// temporalPlanes must be 0 (plain BCM), 2 or 4, and strictly less than
// planes.
func TemporalDitherSchedule(planes, pixelsAcross, temporalPlanes int) (ScheduleSequence, error) {
	if planes < 1 || planes > 10 {
		return nil, fmt.Errorf("%w: %d", ErrPlaneCount, planes)
	}
	if temporalPlanes == 0 {
		return SimpleSchedule(planes, pixelsAcross)
	}
	if temporalPlanes >= planes {
		return nil, fmt.Errorf("%w: %d temporal of %d total", ErrTemporalPlanes, temporalPlanes, planes)
	}
	if temporalPlanes != 2 && temporalPlanes != 4 {
		return nil, fmt.Errorf("%w: %d", ErrTemporalPlanes, temporalPlanes)
	}

	realPlanes := planes - temporalPlanes
	maxCount := uint32(2) << realPlanes
	temporalCount := uint32(1)
	for maxCount < uint32(pixelsAcross) {
		maxCount <<= 1
		temporalCount <<= 1
	}

	base := make(Schedule, 0, realPlanes+1)
	for j := 0; j < realPlanes; j++ {
		base = append(base, ScheduleEntry{
			Shift:      uint32(10 - j),
			ActiveTime: maxCount >> j,
		})
	}

	result := make(ScheduleSequence, 0, temporalPlanes)
	for i := 0; i < temporalPlanes; i++ {
		sched := make(Schedule, len(base), len(base)+1)
		copy(sched, base)
		sched = append(sched, ScheduleEntry{
			Shift:      uint32(10 - (realPlanes + i)),
			ActiveTime: temporalCount << i,
		})
		result = append(result, sched)
	}
	return result, nil
}
