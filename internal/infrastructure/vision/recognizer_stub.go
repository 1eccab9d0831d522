//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"
	"time"

	"gpv-bot/internal/domain/entity"
	"gpv-bot/internal/domain/port"
)

// Recognizer — заглушка для збірки без OpenCV та Tesseract.
type Recognizer struct {
	opts Options
	loc  *time.Location
}

// NewRecognizer створює розпізнавач-заглушку (без тега gocv).
func NewRecognizer(opts Options, loc *time.Location) *Recognizer {
	return &Recognizer{opts: opts, loc: loc}
}

// Recognize повертає помилку, якщо збірка без тега gocv.
func (r *Recognizer) Recognize(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error) {
	_ = ctx
	_ = imageData
	return nil, errors.New("gocv build tag is not enabled")
}

var _ port.ScheduleRecognizer = (*Recognizer)(nil)
