package hub75

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleSchedule(t *testing.T) {
	seq, err := SimpleSchedule(5, 192)
	require.NoError(t, err)
	require.Len(t, seq, 1)

	// 2^5 = 32 doubles to 256 before covering 192 scan clocks.
	want := Schedule{
		{Shift: 10, ActiveTime: 256},
		{Shift: 9, ActiveTime: 128},
		{Shift: 8, ActiveTime: 64},
		{Shift: 7, ActiveTime: 32},
		{Shift: 6, ActiveTime: 16},
	}
	assert.Equal(t, want, seq[0])
}

func TestSimpleScheduleDwellHalving(t *testing.T) {
	for _, planes := range []int{1, 4, 8, 10} {
		seq, err := SimpleSchedule(planes, 64)
		require.NoError(t, err)
		sched := seq[0]
		require.Len(t, sched, planes)

		for i := 0; i+1 < len(sched); i++ {
			assert.Equal(t, sched[i].ActiveTime/2, sched[i+1].ActiveTime,
				"plane %d dwell must be half of plane %d", i+1, i)
			assert.Equal(t, sched[i].Shift-1, sched[i+1].Shift)
		}
		assert.Equal(t, uint32(10), sched[0].Shift, "most significant plane first")
	}
}

func TestSimpleSchedulePlaneRange(t *testing.T) {
	for _, planes := range []int{0, 11, -1} {
		_, err := SimpleSchedule(planes, 64)
		assert.ErrorIs(t, err, ErrPlaneCount, "planes = %d", planes)
	}
}

func TestTemporalDitherScheduleDelegates(t *testing.T) {
	simple, err := SimpleSchedule(8, 128)
	require.NoError(t, err)
	dithered, err := TemporalDitherSchedule(8, 128, 0)
	require.NoError(t, err)
	assert.Equal(t, simple, dithered)
}

func TestTemporalDitherSchedule(t *testing.T) {
	const planes, pixelsAcross, temporal = 10, 192, 4
	seq, err := TemporalDitherSchedule(planes, pixelsAcross, temporal)
	require.NoError(t, err)
	require.Len(t, seq, temporal)

	realPlanes := planes - temporal

	// maxCount seeds at 2<<6 = 128 and doubles once to cover 192,
	// carrying temporalCount to 2.
	const maxCount, temporalCount = 256, 2

	for i, sched := range seq {
		require.Len(t, sched, realPlanes+1)

		// Static planes are shared verbatim across every frame.
		for j := 0; j < realPlanes; j++ {
			assert.Equal(t, ScheduleEntry{Shift: uint32(10 - j), ActiveTime: maxCount >> j}, sched[j])
		}

		last := sched[realPlanes]
		assert.Equal(t, uint32(10-(realPlanes+i)), last.Shift)
		assert.Equal(t, uint32(temporalCount<<i), last.ActiveTime)
	}

	// Every frame carries a distinct temporal plane; the cycle covers the
	// remaining shifts exactly once.
	shifts := make(map[uint32]bool, temporal)
	for _, sched := range seq {
		shifts[sched[realPlanes].Shift] = true
	}
	assert.Len(t, shifts, temporal)
}

func TestTemporalDitherScheduleTwoFrames(t *testing.T) {
	seq, err := TemporalDitherSchedule(6, 100, 2)
	require.NoError(t, err)
	require.Len(t, seq, 2)

	// Seed 2<<4 = 32 doubles twice to 128, temporalCount to 4.
	wantBase := Schedule{
		{Shift: 10, ActiveTime: 128},
		{Shift: 9, ActiveTime: 64},
		{Shift: 8, ActiveTime: 32},
		{Shift: 7, ActiveTime: 16},
	}
	assert.Equal(t, wantBase, seq[0][:4])
	assert.Equal(t, wantBase, seq[1][:4])
	assert.Equal(t, ScheduleEntry{Shift: 6, ActiveTime: 4}, seq[0][4])
	assert.Equal(t, ScheduleEntry{Shift: 5, ActiveTime: 8}, seq[1][4])
}

func TestTemporalDitherScheduleRange(t *testing.T) {
	for _, tt := range []struct {
		name     string
		planes   int
		temporal int
		wantErr  error
	}{
		{name: "planes too low", planes: 0, temporal: 0, wantErr: ErrPlaneCount},
		{name: "planes too high", planes: 11, temporal: 2, wantErr: ErrPlaneCount},
		{name: "odd temporal count", planes: 10, temporal: 3, wantErr: ErrTemporalPlanes},
		{name: "temporal equals planes", planes: 4, temporal: 4, wantErr: ErrTemporalPlanes},
		{name: "temporal exceeds planes", planes: 3, temporal: 4, wantErr: ErrTemporalPlanes},
		{name: "temporal six", planes: 10, temporal: 6, wantErr: ErrTemporalPlanes},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TemporalDitherSchedule(tt.planes, 64, tt.temporal)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
