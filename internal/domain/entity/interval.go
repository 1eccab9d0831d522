package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// IntervalOutage — тип інтервалу відключення у застарілому форматі.
const IntervalOutage = "Outage"

const minutesPerSlot = 30

// Interval — неперервний проміжок відключення у застарілому форматі.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Type  string `json:"type"`
}

// EncodeIntervals згортає півгодинні слоти у максимальні неперервні
// інтервали відключень. Відключення, що триває до кінця доби,
// закривається часом "24:00".
func EncodeIntervals(slots []bool) []Interval {
	intervals := []Interval{}
	start := -1

	// Індекс len(slots) — штучний "світло є" слот, який закриває
	// відкритий інтервал у кінці доби.
	for i := 0; i <= len(slots); i++ {
		outage := i < len(slots) && slots[i]
		if outage {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			intervals = append(intervals, Interval{
				Start: clockTime(start * minutesPerSlot),
				End:   clockTime(i * minutesPerSlot),
				Type:  IntervalOutage,
			})
			start = -1
		}
	}

	return intervals
}

// DecodeIntervals розгортає інтервали назад у slotCount півгодинних слотів.
func DecodeIntervals(intervals []Interval, slotCount int) []bool {
	slots := make([]bool, slotCount)
	for _, iv := range intervals {
		from := clockMinutes(iv.Start) / minutesPerSlot
		to := clockMinutes(iv.End) / minutesPerSlot
		for i := from; i < to && i < slotCount; i++ {
			if i >= 0 {
				slots[i] = true
			}
		}
	}
	return slots
}

func clockTime(minutes int) string {
	if minutes == 24*60 {
		return "24:00"
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func clockMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}
