package port

import (
	"context"

	"gpv-bot/internal/domain/entity"
)

// ScheduleRecognizer інтерфейс розпізнавача графіка відключень
type ScheduleRecognizer interface {
	// Recognize аналізує зображення таблиці та повертає графік на один день.
	// Структурні помилки повертаються як entity.ErrStructureNotFound,
	// деградація розпізнавання — як Warnings у результаті.
	Recognize(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error)
}
