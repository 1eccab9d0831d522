package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHourStatusLegacy(t *testing.T) {
	require.Equal(t, OutageFull, StatusOff.Legacy())
	require.Equal(t, OutageLeft, StatusOffFirst.Legacy())
	require.Equal(t, OutageRight, StatusOffSecond.Legacy())
	// Можливі відключення у застарілому форматі — не відключення.
	require.Equal(t, OutageNone, StatusMaybe.Legacy())
	require.Equal(t, OutageNone, StatusMaybeFirst.Legacy())
	require.Equal(t, OutageNone, StatusMaybeSecond.Legacy())
	require.Equal(t, OutageNone, StatusOn.Legacy())
}

func TestHourMapHalfHourSlots(t *testing.T) {
	hours := HourMap{
		"1": StatusOff,
		"2": StatusOffFirst,
		"3": StatusOffSecond,
		"4": StatusMaybe,
	}

	slots := hours.HalfHourSlots()
	require.Len(t, slots, 48)
	require.True(t, slots[0])
	require.True(t, slots[1])
	require.True(t, slots[2])
	require.False(t, slots[3])
	require.False(t, slots[4])
	require.True(t, slots[5])
	require.False(t, slots[6])
	require.False(t, slots[7])
	require.False(t, slots[8])
}

func TestNewPreset(t *testing.T) {
	p := NewPreset()
	require.Len(t, p.TimeZone, 24)
	require.Equal(t, []string{"00-01", "00:00", "01:00"}, p.TimeZone["1"])
	require.Equal(t, []string{"23-24", "23:00", "24:00"}, p.TimeZone["24"])
	require.Equal(t, "Світло є", p.TimeType[StatusOn])
	require.Len(t, p.TimeType, 7)
}
