//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// headerText вирізає область над таблицею та розпізнає її текст.
// Порожній заголовок — не помилка: викликач підставить поточну дату.
func (r *Recognizer) headerText(img gocv.Mat, headerY int) (string, error) {
	if headerY <= 0 {
		return "", nil
	}

	header := img.Region(image.Rect(0, 0, img.Cols(), headerY))
	defer header.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(header, &gray, gocv.ColorBGRToGray)

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.GaussianBlur(gray, &blur, image.Pt(3, 3), 0, 0, gocv.BorderDefault)

	bin := gocv.NewMat()
	defer bin.Close()
	gocv.Threshold(blur, &bin, 0, 255, gocv.ThresholdBinaryInv+gocv.ThresholdOtsu)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, bin)
	if err != nil {
		return "", fmt.Errorf("encode header: %w", err)
	}
	defer buf.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.opts.Languages...); err != nil {
		return "", fmt.Errorf("set ocr languages: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("set ocr psm: %w", err)
	}
	if err := client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return "", fmt.Errorf("set ocr image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}

	return strings.ReplaceAll(text, "\n", " "), nil
}
