package app

import (
	"strings"

	"gpv-bot/internal/domain/entity"
)

// LegacyDayFromGroups перетворює погодинні статуси черг у застарілий
// формат з інтервалами. Префікс "GPV" у назвах черг відкидається.
func LegacyDayFromGroups(groups map[string]entity.HourMap) entity.LegacyDay {
	day := entity.LegacyDay{Groups: make(map[string][]entity.Interval, len(groups))}
	for name, hours := range groups {
		queue := strings.TrimPrefix(name, entity.GroupPrefix)
		day.Groups[queue] = entity.EncodeIntervals(hours.HalfHourSlots())
	}
	return day
}
