package entity

// HourStatus — погодинний статус черги відключень
type HourStatus string

const (
	StatusOn          HourStatus = "yes"     // світло є всю годину
	StatusOff         HourStatus = "no"      // відключення всю годину
	StatusOffFirst    HourStatus = "first"   // відключення перші 30 хв
	StatusOffSecond   HourStatus = "second"  // відключення другі 30 хв
	StatusMaybe       HourStatus = "maybe"   // можливе відключення всю годину
	StatusMaybeFirst  HourStatus = "mfirst"  // можливе відключення перші 30 хв
	StatusMaybeSecond HourStatus = "msecond" // можливе відключення другі 30 хв
)

// CellOutage — статус клітинки у застарілому форматі.
// Жовтий колір тут не вважається відключенням.
type CellOutage string

const (
	OutageNone  CellOutage = "none"
	OutageFull  CellOutage = "full"
	OutageLeft  CellOutage = "left"
	OutageRight CellOutage = "right"
)

// FirstHalfOut повідомляє, чи є гарантоване відключення у перші 30 хв години.
func (s HourStatus) FirstHalfOut() bool {
	return s == StatusOff || s == StatusOffFirst
}

// SecondHalfOut повідомляє, чи є гарантоване відключення у другі 30 хв години.
func (s HourStatus) SecondHalfOut() bool {
	return s == StatusOff || s == StatusOffSecond
}

// Legacy зводить погодинний статус до застарілого чотиризначного.
// Можливі відключення у застарілому форматі не відображаються.
func (s HourStatus) Legacy() CellOutage {
	switch s {
	case StatusOff:
		return OutageFull
	case StatusOffFirst:
		return OutageLeft
	case StatusOffSecond:
		return OutageRight
	default:
		return OutageNone
	}
}
