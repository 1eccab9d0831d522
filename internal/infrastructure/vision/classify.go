package vision

import (
	"image"

	"gpv-bot/internal/domain/entity"
)

// ClassifyCell визначає погодинний статус клітинки за кольором її половин.
// Ліва половина — перші 30 хв години, права — другі. Жовтий сигнал
// "можливого відключення" має пріоритет над червоним, червоний — над
// "світло є": нічия завжди тлумачиться у бік важчого стану.
func ClassifyCell(cell image.Image, t Thresholds) entity.HourStatus {
	b := cell.Bounds()
	if b.Dx() < t.MinCellSide || b.Dy() < t.MinCellSide {
		return entity.StatusOn
	}

	// Зрізаємо краї, щоб лінії сітки не потрапляли у підрахунок.
	crop := b.Inset(t.CellBorder)
	if crop.Dx() < 2 || crop.Dy() < 1 {
		return entity.StatusOn
	}

	mid := crop.Min.X + crop.Dx()/2
	left := image.Rect(crop.Min.X, crop.Min.Y, mid, crop.Max.Y)
	right := image.Rect(mid, crop.Min.Y, crop.Max.X, crop.Max.Y)

	leftYellow := t.sectionRatio(cell, left, t.isYellow) > t.FillRatio
	rightYellow := t.sectionRatio(cell, right, t.isYellow) > t.FillRatio
	leftRed := t.sectionRatio(cell, left, t.isRed) > t.FillRatio
	rightRed := t.sectionRatio(cell, right, t.isRed) > t.FillRatio

	switch {
	case leftYellow && rightYellow:
		return entity.StatusMaybe
	case leftYellow:
		return entity.StatusMaybeFirst
	case rightYellow:
		return entity.StatusMaybeSecond
	case leftRed && rightRed:
		return entity.StatusOff
	case leftRed:
		return entity.StatusOffFirst
	case rightRed:
		return entity.StatusOffSecond
	default:
		return entity.StatusOn
	}
}

// ClassifyCellLegacy зводить клітинку до застарілого чотиризначного статусу.
func ClassifyCellLegacy(cell image.Image, t Thresholds) entity.CellOutage {
	return ClassifyCell(cell, t).Legacy()
}

// sectionRatio рахує частку пікселів секції, що відповідають предикату.
func (t Thresholds) sectionRatio(img image.Image, section image.Rectangle, match func(r, g, b int) bool) float64 {
	if section.Dx() < 5 || section.Dy() < 5 {
		return 0
	}
	section = section.Inset(t.HalfInset)
	if section.Empty() {
		return 0
	}

	total := section.Dx() * section.Dy()
	matched := 0
	for y := section.Min.Y; y < section.Max.Y; y++ {
		for x := section.Min.X; x < section.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if match(int(cr>>8), int(cg>>8), int(cb>>8)) {
				matched++
			}
		}
	}

	return float64(matched) / float64(total)
}

// isRed: високий R, низькі G та B, R суттєво переважає обидва.
func (t Thresholds) isRed(r, g, b int) bool {
	return r > t.RedChannelMin && g < t.RedOtherMax && b < t.RedOtherMax &&
		r > g+t.RedDominance && r > b+t.RedDominance
}

// isYellow: високі R та G приблизно нарівні, низький B.
func (t Thresholds) isYellow(r, g, b int) bool {
	d := r - g
	if d < 0 {
		d = -d
	}
	return r > t.YellowChannelMin && g > t.YellowChannelMin && b < t.YellowBlueMax &&
		d < t.YellowBalance
}
