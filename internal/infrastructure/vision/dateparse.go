package vision

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Формат дат у заголовку графіка.
const (
	DateLayout = "02.01.2006"
	asOfLayout = "02.01.2006 15:04"
)

// Ланцюжок форм дати графіка, від найточнішої до найрозмитішої.
// Кожна наступна пробується лише якщо попередня не знайшла збігу.
var scheduleDateRes = []*regexp.Regexp{
	regexp.MustCompile(`на\s+(\d{2}\.\d{2}\.\d{4})`),
	regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})р\.`),
	regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})`),
	regexp.MustCompile(`(\d{2}\.\d{2}\.\d{2})`),
	regexp.MustCompile(`(\d{2}\.\d{2})`),
	regexp.MustCompile(`(\d{2}\.\d{2}\.\d)`),
}

var (
	reShapeShortYear = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{2}$`)
	reShapeBare      = regexp.MustCompile(`^\d{2}\.\d{2}$`)
	reShapeTruncated = regexp.MustCompile(`^\d{2}\.\d{2}\.\d$`)

	reAsOf = regexp.MustCompile(`\(станом\s+на\s+(\d{2}\.\d{2}\.\d{4})\s+(\d{2})[:.](\d{2})\)`)
)

// ParseScheduleDate шукає дату графіка у тексті заголовка та нормалізує її
// до DD.MM.YYYY. Якщо дати немає, повертає поточну та false.
func ParseScheduleDate(text string, now time.Time) (string, bool) {
	for _, re := range scheduleDateRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return NormalizeDate(m[1], now), true
		}
	}
	return now.Format(DateLayout), false
}

// NormalizeDate доводить знайдену дату до повного формату DD.MM.YYYY.
func NormalizeDate(found string, now time.Time) string {
	switch {
	case reShapeShortYear.MatchString(found):
		// DD.MM.YY → DD.MM.20YY
		return fmt.Sprintf("%s.20%s", found[:5], found[6:])

	case reShapeBare.MatchString(found):
		return fmt.Sprintf("%s.%d", found, now.Year())

	case reShapeTruncated.MatchString(found):
		// Обрізаний рік DD.MM.Y: відновлюємо десятиліття з поточного року.
		prefix := strconv.Itoa(now.Year())
		candidate := fmt.Sprintf("%s.%s%c", found[:5], prefix[:3], found[len(found)-1])
		if _, err := time.Parse(DateLayout, candidate); err != nil {
			return fmt.Sprintf("%s.%d", found[:5], now.Year())
		}
		return candidate

	default:
		return found
	}
}

// ParseAsOf шукає фразу "(станом на DD.MM.YYYY HH:MM)". Пошук незалежний
// від дати графіка; без збігу повертається поточний час та false.
func ParseAsOf(text string, now time.Time) (string, bool) {
	if m := reAsOf.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s %s:%s", m[1], m[2], m[3]), true
	}
	return now.Format(asOfLayout), false
}

// DateToUnix конвертує DD.MM.YYYY у unix timestamp початку доби у зоні loc.
// Некоректна дата дає 0, рішення за викликачем.
func DateToUnix(date string, loc *time.Location) int64 {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return 0
	}
	return t.Unix()
}
