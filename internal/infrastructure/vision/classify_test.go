package vision

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"

	"gpv-bot/internal/domain/entity"
)

var (
	cellRed    = color.RGBA{R: 210, G: 40, B: 40, A: 255}
	cellYellow = color.RGBA{R: 230, G: 220, B: 60, A: 255}
	cellWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cellGreen  = color.RGBA{R: 90, G: 200, B: 90, A: 255}
)

// makeCell малює синтетичну клітинку 60x40 з заданими кольорами половин.
func makeCell(left, right color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 60, 40))
	draw.Draw(img, image.Rect(0, 0, 30, 40), &image.Uniform{left}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(30, 0, 60, 40), &image.Uniform{right}, image.Point{}, draw.Src)
	return img
}

func TestClassifyCell_FullStatuses(t *testing.T) {
	th := DefaultThresholds()

	require.Equal(t, entity.StatusOff, ClassifyCell(makeCell(cellRed, cellRed), th))
	require.Equal(t, entity.StatusMaybe, ClassifyCell(makeCell(cellYellow, cellYellow), th))
	require.Equal(t, entity.StatusOn, ClassifyCell(makeCell(cellWhite, cellWhite), th))
	require.Equal(t, entity.StatusOn, ClassifyCell(makeCell(cellGreen, cellGreen), th))
}

func TestClassifyCell_Halves(t *testing.T) {
	th := DefaultThresholds()

	require.Equal(t, entity.StatusOffFirst, ClassifyCell(makeCell(cellRed, cellWhite), th))
	require.Equal(t, entity.StatusOffSecond, ClassifyCell(makeCell(cellWhite, cellRed), th))
	require.Equal(t, entity.StatusMaybeFirst, ClassifyCell(makeCell(cellYellow, cellWhite), th))
	require.Equal(t, entity.StatusMaybeSecond, ClassifyCell(makeCell(cellWhite, cellYellow), th))
}

func TestClassifyCell_YellowOverridesRed(t *testing.T) {
	th := DefaultThresholds()

	// Жовтий сигнал завжди сильніший за червоний у сусідній половині.
	require.Equal(t, entity.StatusMaybeFirst, ClassifyCell(makeCell(cellYellow, cellRed), th))
	require.Equal(t, entity.StatusMaybeSecond, ClassifyCell(makeCell(cellRed, cellYellow), th))
}

func TestClassifyCell_BelowFillRatio(t *testing.T) {
	th := DefaultThresholds()

	// Червона лише верхня смужка — менше 30% половини.
	img := image.NewRGBA(image.Rect(0, 0, 60, 40))
	draw.Draw(img, img.Bounds(), &image.Uniform{cellWhite}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, 60, 8), &image.Uniform{cellRed}, image.Point{}, draw.Src)

	require.Equal(t, entity.StatusOn, ClassifyCell(img, th))
}

func TestClassifyCell_TooSmall(t *testing.T) {
	th := DefaultThresholds()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(img, img.Bounds(), &image.Uniform{cellRed}, image.Point{}, draw.Src)

	// Замалі клітинки не класифікуються, повертається "світло є".
	require.Equal(t, entity.StatusOn, ClassifyCell(img, th))
}

func TestClassifyCellLegacy(t *testing.T) {
	th := DefaultThresholds()

	require.Equal(t, entity.OutageFull, ClassifyCellLegacy(makeCell(cellRed, cellRed), th))
	require.Equal(t, entity.OutageLeft, ClassifyCellLegacy(makeCell(cellRed, cellWhite), th))
	require.Equal(t, entity.OutageRight, ClassifyCellLegacy(makeCell(cellWhite, cellRed), th))
	// Жовтий у застарілому форматі — не відключення.
	require.Equal(t, entity.OutageNone, ClassifyCellLegacy(makeCell(cellYellow, cellYellow), th))
}
