package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeIntervals_SingleRun(t *testing.T) {
	slots := make([]bool, 48)
	// 02:00–05:00
	for i := 4; i < 10; i++ {
		slots[i] = true
	}

	intervals := EncodeIntervals(slots)
	require.Len(t, intervals, 1)
	require.Equal(t, Interval{Start: "02:00", End: "05:00", Type: IntervalOutage}, intervals[0])
}

func TestEncodeIntervals_RunClosesAtMidnight(t *testing.T) {
	slots := make([]bool, 48)
	for i := 45; i < 48; i++ {
		slots[i] = true
	}

	intervals := EncodeIntervals(slots)
	require.Len(t, intervals, 1)
	require.Equal(t, "22:30", intervals[0].Start)
	require.Equal(t, "24:00", intervals[0].End)
}

func TestEncodeIntervals_Idempotent(t *testing.T) {
	slots := make([]bool, 48)
	for _, i := range []int{0, 1, 7, 8, 9, 30, 47} {
		slots[i] = true
	}

	intervals := EncodeIntervals(slots)
	decoded := DecodeIntervals(intervals, 48)
	require.Equal(t, slots, decoded)
	require.Equal(t, intervals, EncodeIntervals(decoded))
}

func TestEncodeIntervals_NoOutages(t *testing.T) {
	intervals := EncodeIntervals(make([]bool, 48))
	require.Empty(t, intervals)
}

func TestEncodeIntervals_HalfHourGranularity(t *testing.T) {
	slots := make([]bool, 48)
	slots[1] = true // 00:30–01:00

	intervals := EncodeIntervals(slots)
	require.Len(t, intervals, 1)
	require.Equal(t, "00:30", intervals[0].Start)
	require.Equal(t, "01:00", intervals[0].End)
}
