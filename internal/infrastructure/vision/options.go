package vision

// Thresholds — пороги класифікації кольорів клітинки.
// Значення підібрані під палітру графіків обленерго; стиснення JPEG/PNG
// зсуває канали, тому всі літерали перекриваються конфігурацією.
type Thresholds struct {
	RedChannelMin    int     // мінімум R для червоного
	RedOtherMax      int     // максимум G та B для червоного
	RedDominance     int     // наскільки R має переважати G та B
	YellowChannelMin int     // мінімум R та G для жовтого
	YellowBlueMax    int     // максимум B для жовтого
	YellowBalance    int     // максимальна різниця |R−G| для жовтого
	FillRatio        float64 // частка пікселів, щоб половина вважалась зафарбованою
	CellBorder       int     // зріз країв клітинки від ліній сітки
	HalfInset        int     // додатковий зріз країв половини
	MinCellSide      int     // менші клітинки класифікуються як "світло є"
}

// DefaultThresholds повертає робочі пороги.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RedChannelMin:    150,
		RedOtherMax:      100,
		RedDominance:     50,
		YellowChannelMin: 150,
		YellowBlueMax:    150,
		YellowBalance:    50,
		FillRatio:        0.30,
		CellBorder:       3,
		HalfInset:        2,
		MinCellSide:      10,
	}
}

// Options — параметри пошуку структури таблиці та OCR заголовка.
type Options struct {
	MinCellArea      int     // контури меншої площі відкидаються
	MaxCellAreaRatio float64 // частка площі зображення, більші контури відкидаються
	MorphScale       int     // дільник розміру зображення для ядер виділення ліній
	RowTolerance     int     // вертикальний допуск групування клітинок у рядки
	HeaderLift       int     // підняття межі заголовка, щоб OCR охопив більше тексту
	ThresholdBlock   int     // блок адаптивної бінаризації
	ThresholdC       float64

	Queues     []string // назви черг у порядку рядків таблиці
	Languages  []string // мови OCR заголовка
	Thresholds Thresholds
}

// DefaultOptions повертає параметри під поточний формат таблиці.
func DefaultOptions() Options {
	return Options{
		MinCellArea:      1000,
		MaxCellAreaRatio: 0.05,
		MorphScale:       10,
		RowTolerance:     15,
		HeaderLift:       35,
		ThresholdBlock:   9,
		ThresholdC:       2,
		Queues: []string{
			"1.1", "1.2", "2.1", "2.2", "3.1", "3.2",
			"4.1", "4.2", "5.1", "5.2", "6.1", "6.2",
		},
		Languages:  []string{"ukr", "eng"},
		Thresholds: DefaultThresholds(),
	}
}
