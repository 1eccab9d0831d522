package entity

import (
	"errors"
	"strconv"
)

// GroupPrefix — префікс назви черги у збереженому документі ("GPV1.1").
const GroupPrefix = "GPV"

// HoursPerDay — кількість часових клітинок у рядку таблиці.
const HoursPerDay = 24

// QueueCount — кількість черг відключень (останні рядки таблиці).
const QueueCount = 12

var (
	// ErrStructureNotFound сигналізує, що на зображенні не знайдено таблицю.
	ErrStructureNotFound = errors.New("schedule table structure not found")

	// ErrImageDecode сигналізує про нечитабельне вхідне зображення.
	ErrImageDecode = errors.New("failed to decode image")
)

// HourMap — відображення години ("1".."24") на погодинний статус.
type HourMap map[string]HourStatus

// HalfHourSlots розгортає погодинні статуси у 48 півгодинних слотів
// гарантованого відключення.
func (m HourMap) HalfHourSlots() []bool {
	slots := make([]bool, HoursPerDay*2)
	for h := 1; h <= HoursPerDay; h++ {
		s := m[strconv.Itoa(h)]
		slots[(h-1)*2] = s.FirstHalfOut()
		slots[(h-1)*2+1] = s.SecondHalfOut()
	}
	return slots
}

// DaySchedule — розпізнаний графік на один день у канонічній формі.
type DaySchedule struct {
	Date      string             // дата графіка, DD.MM.YYYY
	Timestamp int64              // unix початку доби у локальній зоні
	AsOf      string             // час актуальності з заголовка, DD.MM.YYYY HH:MM
	Groups    map[string]HourMap // "GPV1.1" → погодинні статуси
}

// RecognitionResult — підсумок розпізнавання зображення.
// Попередження не зупиняють обробку, їх вирішує викликач.
type RecognitionResult struct {
	Day       DaySchedule
	Warnings  []string // некритичні відхилення: кількість рядків, дата за замовчуванням
	Annotated []byte   // debug-зображення з розміткою клітинок, PNG
}
