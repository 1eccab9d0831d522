package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"gpv-bot/internal/domain/entity"
	"gpv-bot/internal/domain/port"
)

// PipelineService проганяє зображення графіка через розпізнавання,
// злиття зі сховищем та публікацію debug-результату.
type PipelineService struct {
	recognizer port.ScheduleRecognizer
	store      port.ScheduleStore
	legacy     port.LegacyScheduleStore
	notifier   port.Notifier
	merger     *Merger
	log        zerolog.Logger
	debugDir   string
	useLegacy  bool
}

// NewPipelineService збирає конвеєр обробки зображень.
func NewPipelineService(
	recognizer port.ScheduleRecognizer,
	store port.ScheduleStore,
	legacy port.LegacyScheduleStore,
	notifier port.Notifier,
	merger *Merger,
	log zerolog.Logger,
	debugDir string,
	useLegacy bool,
) *PipelineService {
	return &PipelineService{
		recognizer: recognizer,
		store:      store,
		legacy:     legacy,
		notifier:   notifier,
		merger:     merger,
		log:        log,
		debugDir:   debugDir,
		useLegacy:  useLegacy,
	}
}

// ProcessImage розпізнає зображення за шляхом та зливає результат у
// сховище обраного формату. Попередження розпізнавання логуються,
// але обробку не зупиняють.
func (s *PipelineService) ProcessImage(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	result, err := s.recognizer.Recognize(ctx, data)
	if err != nil {
		return fmt.Errorf("recognize %s: %w", filepath.Base(path), err)
	}

	for _, w := range result.Warnings {
		s.log.Warn().Str("image", filepath.Base(path)).Msg(w)
	}

	s.publishDebug(ctx, filepath.Base(path), result)

	if s.useLegacy {
		return s.mergeLegacy(ctx, result.Day)
	}
	return s.mergeHourly(ctx, result.Day)
}

// MergeBuckets зливає графіки з API у погодинний документ одним записом.
// Ключі buckets — unix timestamp початку доби у вигляді рядка.
func (s *PipelineService) MergeBuckets(ctx context.Context, buckets map[string]map[string]entity.HourMap) error {
	if len(buckets) == 0 {
		return nil
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	for ts, groups := range buckets {
		day := entity.DaySchedule{Groups: groups}
		if day.Timestamp, err = strconv.ParseInt(ts, 10, 64); err != nil {
			s.log.Warn().Str("key", ts).Msg("пропущено некоректний ключ дати")
			continue
		}
		s.merger.MergeHourly(doc, day)
	}

	return s.store.Save(ctx, doc)
}

func (s *PipelineService) mergeHourly(ctx context.Context, day entity.DaySchedule) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	s.merger.MergeHourly(doc, day)

	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	s.log.Info().Str("date", day.Date).Int("groups", len(day.Groups)).Msg("графік збережено")
	return nil
}

func (s *PipelineService) mergeLegacy(ctx context.Context, day entity.DaySchedule) error {
	doc, err := s.legacy.Load(ctx)
	if err != nil {
		return fmt.Errorf("load legacy document: %w", err)
	}

	s.merger.MergeLegacy(doc, day.Date, LegacyDayFromGroups(day.Groups))

	if err := s.legacy.Save(ctx, doc); err != nil {
		return fmt.Errorf("save legacy document: %w", err)
	}

	s.log.Info().Str("date", day.Date).Msg("графік збережено (застарілий формат)")
	return nil
}

// publishDebug зберігає анотоване зображення та надсилає його в Telegram.
// Збої тут не критичні для основного результату.
func (s *PipelineService) publishDebug(ctx context.Context, name string, result *entity.RecognitionResult) {
	if len(result.Annotated) == 0 {
		return
	}

	if s.debugDir != "" {
		if err := os.MkdirAll(s.debugDir, 0o755); err == nil {
			path := filepath.Join(s.debugDir, "debug_"+name)
			if err := os.WriteFile(path, result.Annotated, 0o644); err != nil {
				s.log.Warn().Err(err).Msg("не вдалося зберегти debug-зображення")
			}
		}
	}

	caption := fmt.Sprintf("🔄 <b>Тернопільобленерго</b> %s", result.Day.Date)
	if err := s.notifier.SendPhoto(ctx, result.Annotated, caption); err != nil {
		s.log.Warn().Err(err).Msg("не вдалося опублікувати debug-зображення")
	}
}
