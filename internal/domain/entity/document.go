package entity

import (
	"fmt"
	"strconv"
)

// Document — збережений JSON-документ з погодинним графіком.
// Ключі fact.data — unix timestamp початку доби у вигляді рядка.
type Document struct {
	RegionID    string `json:"regionId"`
	LastUpdated string `json:"lastUpdated"`
	Fact        Fact   `json:"fact"`
	Preset      Preset `json:"preset"`
}

// Fact — змінна частина документа: дані по датах та час оновлення.
type Fact struct {
	Data   map[string]map[string]HourMap `json:"data"`
	Update string                        `json:"update"`
	Today  int64                         `json:"today"`
}

// Preset — статична легенда часових слотів та кодів статусів.
type Preset struct {
	TimeZone map[string][]string   `json:"time_zone"`
	TimeType map[HourStatus]string `json:"time_type"`
}

// LegacyDocument — застарілий формат сховища: дати DD.MM.YYYY з
// інтервалами відключень по чергах.
type LegacyDocument struct {
	Date map[string]LegacyDay `json:"date"`
}

// LegacyDay — графік одного дня у застарілому форматі.
type LegacyDay struct {
	Groups map[string][]Interval `json:"groups"`
}

// EnsureInit гарантує, що мапи документа ініціалізовані.
// Пошкоджений чи порожній документ після цього придатний до злиття.
func (d *Document) EnsureInit() {
	if d.Fact.Data == nil {
		d.Fact.Data = make(map[string]map[string]HourMap)
	}
}

// EnsureInit гарантує, що мапа дат ініціалізована.
func (d *LegacyDocument) EnsureInit() {
	if d.Date == nil {
		d.Date = make(map[string]LegacyDay)
	}
}

// NewPreset будує легенду: година → [мітка, початок, кінець] та
// код статусу → людський опис.
func NewPreset() Preset {
	tz := make(map[string][]string, HoursPerDay)
	for i := 0; i < HoursPerDay; i++ {
		end := fmt.Sprintf("%02d:00", (i+1)%HoursPerDay)
		if i == HoursPerDay-1 {
			end = "24:00"
		}
		tz[strconv.Itoa(i+1)] = []string{
			fmt.Sprintf("%02d-%02d", i, i+1),
			fmt.Sprintf("%02d:00", i),
			end,
		}
	}

	return Preset{
		TimeZone: tz,
		TimeType: map[HourStatus]string{
			StatusOn:          "Світло є",
			StatusMaybe:       "Можливе відключення",
			StatusOff:         "Світла немає",
			StatusOffFirst:    "Світла не буде перші 30 хв.",
			StatusOffSecond:   "Світла не буде другі 30 хв",
			StatusMaybeFirst:  "Світла можливо не буде перші 30 хв.",
			StatusMaybeSecond: "Світла можливо не буде другі 30 хв",
		},
	}
}
