package entity

import (
	"image"
	"sort"
)

// BoundingBox — прямокутник однієї клітинки таблиці у піксельних координатах
type BoundingBox struct {
	X      int // координата X лівого верхнього кута
	Y      int // координата Y лівого верхнього кута
	Width  int // ширина у пікселях
	Height int // висота у пікселях
}

// Rect повертає прямокутник у термінах пакета image.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Area повертає площу прямокутника.
func (b BoundingBox) Area() int {
	return b.Width * b.Height
}

// ClusterRows групує клітинки у рядки таблиці: сортування зверху-вниз,
// клітинки у межах tolerance пікселів від якоря рядка належать одному рядку,
// всередині рядка — сортування зліва-направо.
func ClusterRows(boxes []BoundingBox, tolerance int) [][]BoundingBox {
	if len(boxes) == 0 {
		return nil
	}

	ordered := make([]BoundingBox, len(boxes))
	copy(ordered, boxes)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Y < ordered[j].Y })

	var rows [][]BoundingBox
	current := []BoundingBox{ordered[0]}
	anchorY := ordered[0].Y

	for _, b := range ordered[1:] {
		if absInt(b.Y-anchorY) <= tolerance {
			current = append(current, b)
			continue
		}
		rows = append(rows, sortRow(current))
		current = []BoundingBox{b}
		anchorY = b.Y
	}
	rows = append(rows, sortRow(current))

	return rows
}

func sortRow(row []BoundingBox) []BoundingBox {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	return row
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
