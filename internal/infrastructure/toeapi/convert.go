package toeapi

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gpv-bot/internal/domain/entity"
)

// Значення півгодинної точки API: "0" — світло є, "1" — відключення,
// "10" — можливе відключення.

// ConvertTimes перетворює 48 півгодинних точок API у 24 погодинні
// статуси тієї самої семизначної лексики, що й розпізнавач зображень.
func ConvertTimes(times map[string]any) entity.HourMap {
	hours := make(entity.HourMap, entity.HoursPerDay)
	for h := 1; h <= entity.HoursPerDay; h++ {
		v1 := pointValue(times, fmt.Sprintf("%02d:00", h-1))
		v2 := pointValue(times, fmt.Sprintf("%02d:30", h-1))
		hours[strconv.Itoa(h)] = statusFor(v1, v2)
	}
	return hours
}

func statusFor(v1, v2 string) entity.HourStatus {
	switch {
	case v1 == "1" && v2 == "1":
		return entity.StatusOff
	case v1 == "0" && v2 == "0":
		return entity.StatusOn
	case v1 == "10" && v2 == "10":
		return entity.StatusMaybe
	case v1 == "10":
		return entity.StatusMaybeFirst
	case v2 == "10":
		return entity.StatusMaybeSecond
	case v1 == "1" && v2 == "0":
		return entity.StatusOffFirst
	case v1 == "0" && v2 == "1":
		return entity.StatusOffSecond
	default:
		return entity.StatusOn
	}
}

// pointValue зводить значення точки до рядка: API повертає їх то
// числами, то рядками. Відсутня точка — "0", світло є.
func pointValue(times map[string]any, key string) string {
	switch v := times[key].(type) {
	case string:
		return v
	case float64:
		return strconv.Itoa(int(v))
	case json.Number:
		return v.String()
	default:
		return "0"
	}
}
