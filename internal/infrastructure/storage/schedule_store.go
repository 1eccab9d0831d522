package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"gpv-bot/internal/domain/entity"
	"gpv-bot/internal/domain/port"
)

// FileScheduleStore — сховище погодинного документа в одному JSON-файлі.
// Читання-зміна-запис не атомарні: одночасні процеси над одним файлом
// можуть загубити оновлення, передбачено один процес-писар.
type FileScheduleStore struct {
	path string
	log  zerolog.Logger
}

// NewFileScheduleStore створює сховище за шляхом до JSON-файла.
func NewFileScheduleStore(path string, log zerolog.Logger) *FileScheduleStore {
	return &FileScheduleStore{path: path, log: log}
}

// Load читає документ. Відсутній або пошкоджений файл — не помилка:
// нові дані поточного запуску важливіші за зіпсовану історію.
func (s *FileScheduleStore) Load(ctx context.Context) (*entity.Document, error) {
	_ = ctx

	doc := &entity.Document{}
	ok, err := readJSON(s.path, doc, s.log)
	if err != nil {
		return nil, err
	}
	if !ok {
		doc = &entity.Document{}
	}
	doc.EnsureInit()
	return doc, nil
}

// Save записує документ з відступами, створюючи теку за потреби.
func (s *FileScheduleStore) Save(ctx context.Context, doc *entity.Document) error {
	_ = ctx
	return writeJSON(s.path, doc)
}

// FileLegacyStore — сховище застарілого формату з інтервалами.
type FileLegacyStore struct {
	path string
	log  zerolog.Logger
}

// NewFileLegacyStore створює сховище застарілого формату.
func NewFileLegacyStore(path string, log zerolog.Logger) *FileLegacyStore {
	return &FileLegacyStore{path: path, log: log}
}

func (s *FileLegacyStore) Load(ctx context.Context) (*entity.LegacyDocument, error) {
	_ = ctx

	doc := &entity.LegacyDocument{}
	ok, err := readJSON(s.path, doc, s.log)
	if err != nil {
		return nil, err
	}
	if !ok {
		doc = &entity.LegacyDocument{}
	}
	doc.EnsureInit()
	return doc, nil
}

func (s *FileLegacyStore) Save(ctx context.Context, doc *entity.LegacyDocument) error {
	_ = ctx
	return writeJSON(s.path, doc)
}

// readJSON повертає ok=false для відсутнього чи пошкодженого файла,
// щоб викликач почав з порожнього документа.
func readJSON(path string, v any, log zerolog.Logger) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("існуючий документ пошкоджено, починаємо з порожнього")
		return false, nil
	}
	return true, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Перевірка реалізації інтерфейсів
var (
	_ port.ScheduleStore       = (*FileScheduleStore)(nil)
	_ port.LegacyScheduleStore = (*FileLegacyStore)(nil)
)
