package port

import (
	"context"

	"gpv-bot/internal/domain/entity"
)

// ScheduleStore інтерфейс сховища погодинного документа
type ScheduleStore interface {
	// Load читає збережений документ; пошкоджений або відсутній файл
	// повертається як порожній документ без помилки.
	Load(ctx context.Context) (*entity.Document, error)

	// Save записує документ на диск.
	Save(ctx context.Context, doc *entity.Document) error
}

// LegacyScheduleStore інтерфейс сховища застарілого формату з інтервалами
type LegacyScheduleStore interface {
	Load(ctx context.Context) (*entity.LegacyDocument, error)
	Save(ctx context.Context, doc *entity.LegacyDocument) error
}
