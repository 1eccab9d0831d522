package app

import (
	"strconv"
	"time"

	"gpv-bot/internal/domain/entity"
)

const dateLayout = "02.01.2006"

// Merger зливає свіжорозпізнаний день у збережений документ.
// Політики злиття різні для погодинного та застарілого форматів.
type Merger struct {
	region string
	loc    *time.Location
	now    func() time.Time
}

// NewMerger створює мерджер для регіону в заданій часовій зоні.
func NewMerger(region string, loc *time.Location) *Merger {
	return &Merger{
		region: region,
		loc:    loc,
		now:    time.Now,
	}
}

// midnight повертає початок поточної доби у зоні регіону.
func (m *Merger) midnight() time.Time {
	n := m.now().In(m.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, m.loc)
}

// MergeHourly вставляє день у погодинний документ та вичищає ключі,
// що передують поточній добі. Службові поля оновлюються на кожному злитті.
func (m *Merger) MergeHourly(doc *entity.Document, day entity.DaySchedule) {
	doc.EnsureInit()

	doc.Fact.Data[strconv.FormatInt(day.Timestamp, 10)] = day.Groups

	today := m.midnight()
	for key := range doc.Fact.Data {
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil || ts < today.Unix() {
			delete(doc.Fact.Data, key)
		}
	}

	if doc.RegionID == "" {
		doc.RegionID = m.region
	}
	doc.LastUpdated = m.now().UTC().Format("2006-01-02T15:04:05.000") + "Z"
	doc.Fact.Update = day.AsOf
	if doc.Fact.Update == "" {
		doc.Fact.Update = m.now().In(m.loc).Format("02.01.2006 15:04")
	}
	doc.Fact.Today = today.Unix()
	doc.Preset = entity.NewPreset()
}

// MergeLegacy зливає день у застарілий документ за датою DD.MM.YYYY.
// Графік на сьогодні чи минуле повністю заміщує документ. Графік на
// майбутнє заміщує лише тоді, коли всі збережені дати вже минули,
// інакше додається до наявних.
func (m *Merger) MergeLegacy(doc *entity.LegacyDocument, date string, day entity.LegacyDay) {
	doc.EnsureInit()

	today := m.midnight()
	parsed, err := time.ParseInLocation(dateLayout, date, m.loc)
	if err != nil {
		parsed = today
	}

	if !parsed.After(today) {
		doc.Date = map[string]entity.LegacyDay{date: day}
		return
	}

	valid, past := 0, 0
	for stored := range doc.Date {
		st, err := time.ParseInLocation(dateLayout, stored, m.loc)
		if err != nil {
			continue
		}
		valid++
		if st.Before(today) {
			past++
		}
	}

	if valid > 0 && valid == past {
		doc.Date = map[string]entity.LegacyDay{date: day}
		return
	}

	doc.Date[date] = day
}
