//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"time"

	"gocv.io/x/gocv"

	"gpv-bot/internal/domain/entity"
	"gpv-bot/internal/domain/port"
)

// Recognizer розпізнає таблицю графіка відключень через OpenCV.
type Recognizer struct {
	opts Options
	loc  *time.Location
	now  func() time.Time
}

// NewRecognizer створює розпізнавач з параметрами та часовою зоною регіону.
func NewRecognizer(opts Options, loc *time.Location) *Recognizer {
	return &Recognizer{
		opts: opts,
		loc:  loc,
		now:  time.Now,
	}
}

// Recognize виконує повний прохід: структура таблиці, дата заголовка,
// класифікація клітинок, debug-розмітка. Невідповідність кількості рядків
// чи клітинок не зупиняє обробку — накопичується у Warnings.
func (r *Recognizer) Recognize(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error) {
	_ = ctx

	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	rows, headerY, err := r.detectGrid(mat)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if len(rows) < entity.QueueCount+1 {
		warnings = append(warnings, fmt.Sprintf(
			"таблиця має %d рядків, очікувалось щонайменше %d", len(rows), entity.QueueCount+1))
	}

	headerText, err := r.headerText(mat, headerY)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("OCR заголовка не вдався: %v", err))
		headerText = ""
	}

	now := r.now().In(r.loc)
	date, found := ParseScheduleDate(headerText, now)
	if !found {
		warnings = append(warnings, "дата графіка не знайдена у заголовку, використано поточну")
	}
	asOf, _ := ParseAsOf(headerText, now)

	// Останні 12 рядків таблиці — черги у фіксованому порядку.
	dataRows := rows
	if len(dataRows) > entity.QueueCount {
		dataRows = dataRows[len(dataRows)-entity.QueueCount:]
	}

	debug := mat.Clone()
	defer debug.Close()
	gocv.Rectangle(&debug, image.Rect(0, 0, mat.Cols(), headerY), color.RGBA{R: 255, G: 165, A: 255}, 3)

	groups := make(map[string]entity.HourMap, len(r.opts.Queues))
	for i, row := range dataRows {
		if i >= len(r.opts.Queues) {
			break
		}
		queue := r.opts.Queues[i]

		// Беремо лише часові клітинки: мітка черги ліворуч відкидається.
		cells := row
		if len(cells) > entity.HoursPerDay {
			cells = cells[len(cells)-entity.HoursPerDay:]
		}
		if len(cells) != entity.HoursPerDay {
			warnings = append(warnings, fmt.Sprintf(
				"черга %s має %d часових клітинок замість %d", queue, len(cells), entity.HoursPerDay))
		}

		hours := make(entity.HourMap, len(cells))
		for col, box := range cells {
			status := r.classifyBox(mat, box)
			hours[strconv.Itoa(col+1)] = status
			annotateCell(&debug, box, status)
		}
		groups[entity.GroupPrefix+queue] = hours
	}

	annotated, encErr := encodePNG(debug)
	if encErr != nil {
		warnings = append(warnings, fmt.Sprintf("не вдалося закодувати debug-зображення: %v", encErr))
	}

	return &entity.RecognitionResult{
		Day: entity.DaySchedule{
			Date:      date,
			Timestamp: DateToUnix(date, r.loc),
			AsOf:      asOf,
			Groups:    groups,
		},
		Warnings:  warnings,
		Annotated: annotated,
	}, nil
}

// detectGrid знаходить клітинки таблиці та Y-межу заголовка.
func (r *Recognizer) detectGrid(img gocv.Mat) ([][]entity.BoundingBox, int, error) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	// Інверсна адаптивна бінаризація стійка до нерівномірного освітлення.
	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.AdaptiveThreshold(gray, &thresh, 255, gocv.AdaptiveThresholdGaussian,
		gocv.ThresholdBinaryInv, r.opts.ThresholdBlock, float32(r.opts.ThresholdC))

	// Довгі горизонтальні та вертикальні штрихи виділяються окремо
	// морфологічним відкриттям з ядрами у частку розміру зображення.
	hKernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(img.Cols()/r.opts.MorphScale, 1))
	defer hKernel.Close()
	vKernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(1, img.Rows()/r.opts.MorphScale))
	defer vKernel.Close()

	horizontal := gocv.NewMat()
	defer horizontal.Close()
	gocv.MorphologyEx(thresh, &horizontal, gocv.MorphOpen, hKernel)

	vertical := gocv.NewMat()
	defer vertical.Close()
	gocv.MorphologyEx(thresh, &vertical, gocv.MorphOpen, vKernel)

	blended := gocv.NewMat()
	defer blended.Close()
	gocv.AddWeighted(horizontal, 0.5, vertical, 0.5, 0, &blended)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(blended, &mask, 0, 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(mask, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	maxCellArea := float64(img.Cols()*img.Rows()) * r.opts.MaxCellAreaRatio
	var boxes []entity.BoundingBox
	for i := 0; i < contours.Size(); i++ {
		area := gocv.ContourArea(contours.At(i))
		if area <= float64(r.opts.MinCellArea) || area >= maxCellArea {
			continue
		}
		rect := gocv.BoundingRect(contours.At(i))
		boxes = append(boxes, entity.BoundingBox{
			X:      rect.Min.X,
			Y:      rect.Min.Y,
			Width:  rect.Dx(),
			Height: rect.Dy(),
		})
	}

	if len(boxes) == 0 {
		return nil, 0, entity.ErrStructureNotFound
	}

	rows := entity.ClusterRows(boxes, r.opts.RowTolerance)

	headerY := boxes[0].Y
	for _, b := range boxes {
		if b.Y < headerY {
			headerY = b.Y
		}
	}
	if len(rows) >= 2 {
		// Середина між двома верхніми рядами, піднята на HeaderLift,
		// щоб OCR охопив і рядок "станом на".
		headerY = (rows[0][0].Y + rows[1][0].Y) / 2
		headerY -= r.opts.HeaderLift
		if headerY < 0 {
			headerY = 0
		}
	}

	return rows, headerY, nil
}

// classifyBox вирізає клітинку з оригіналу та класифікує її колір.
func (r *Recognizer) classifyBox(mat gocv.Mat, box entity.BoundingBox) entity.HourStatus {
	rect := box.Rect().Intersect(image.Rect(0, 0, mat.Cols(), mat.Rows()))
	if rect.Empty() {
		return entity.StatusOn
	}

	region := mat.Region(rect)
	defer region.Close()
	cell := region.Clone()
	defer cell.Close()

	img, err := cell.ToImage()
	if err != nil {
		return entity.StatusOn
	}
	return ClassifyCell(img, r.opts.Thresholds)
}

// annotateCell обводить клітинку синім та малює хрестик для відключень.
func annotateCell(debug *gocv.Mat, box entity.BoundingBox, status entity.HourStatus) {
	rect := box.Rect()
	gocv.Rectangle(debug, rect, color.RGBA{B: 255, A: 255}, 2)

	if status == entity.StatusOn {
		return
	}

	black := color.RGBA{A: 255}
	gocv.Line(debug, image.Pt(rect.Min.X+5, rect.Min.Y+5), image.Pt(rect.Max.X-5, rect.Max.Y-5), black, 2)
	gocv.Line(debug, image.Pt(rect.Max.X-5, rect.Min.Y+5), image.Pt(rect.Min.X+5, rect.Max.Y-5), black, 2)
}

// encodePNG кодує mat у PNG та копіює байти з нативного буфера.
func encodePNG(mat gocv.Mat) ([]byte, error) {
	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data, nil
}

// decodeToMat перетворює байти зображення у gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), entity.ErrImageDecode
}

// Перевірка реалізації інтерфейсу
var _ port.ScheduleRecognizer = (*Recognizer)(nil)
