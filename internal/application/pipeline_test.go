package app

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"gpv-bot/internal/domain/entity"
)

type fakeRecognizer struct {
	result *entity.RecognitionResult
	err    error
}

func (f *fakeRecognizer) Recognize(ctx context.Context, data []byte) (*entity.RecognitionResult, error) {
	return f.result, f.err
}

type fakeStore struct {
	doc *entity.Document
}

func (f *fakeStore) Load(ctx context.Context) (*entity.Document, error) {
	if f.doc == nil {
		f.doc = &entity.Document{}
	}
	return f.doc, nil
}

func (f *fakeStore) Save(ctx context.Context, doc *entity.Document) error {
	f.doc = doc
	return nil
}

type fakeLegacyStore struct {
	doc *entity.LegacyDocument
}

func (f *fakeLegacyStore) Load(ctx context.Context) (*entity.LegacyDocument, error) {
	if f.doc == nil {
		f.doc = &entity.LegacyDocument{}
	}
	return f.doc, nil
}

func (f *fakeLegacyStore) Save(ctx context.Context, doc *entity.LegacyDocument) error {
	f.doc = doc
	return nil
}

type fakeNotifier struct {
	photos   int
	captions []string
}

func (f *fakeNotifier) SendPhoto(ctx context.Context, photo []byte, caption string) error {
	f.photos++
	f.captions = append(f.captions, caption)
	return nil
}

func (f *fakeNotifier) SendError(ctx context.Context, text string) error {
	return nil
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.png")
	require.NoError(t, os.WriteFile(path, []byte("not really a png"), 0o644))
	return path
}

func TestProcessImageHourly(t *testing.T) {
	m := testMerger(t, time.Date(2025, 3, 5, 16, 0, 0, 0, time.UTC))
	day := dayAt(m, 0)

	store := &fakeStore{}
	notifier := &fakeNotifier{}
	debugDir := t.TempDir()

	svc := NewPipelineService(
		&fakeRecognizer{result: &entity.RecognitionResult{
			Day:       day,
			Warnings:  []string{"знайдено 13 рядків замість 12"},
			Annotated: []byte("png bytes"),
		}},
		store, &fakeLegacyStore{}, notifier, m, zerolog.Nop(), debugDir, false,
	)

	require.NoError(t, svc.ProcessImage(context.Background(), writeTestImage(t)))

	key := strconv.FormatInt(day.Timestamp, 10)
	require.Contains(t, store.doc.Fact.Data, key)

	// Debug-зображення зберігається на диск та публікується в чат.
	require.FileExists(t, filepath.Join(debugDir, "debug_graph.png"))
	require.Equal(t, 1, notifier.photos)
	require.Contains(t, notifier.captions[0], day.Date)
}

func TestProcessImageLegacy(t *testing.T) {
	m := testMerger(t, time.Date(2025, 3, 5, 16, 0, 0, 0, time.UTC))
	day := dayAt(m, 0)

	legacy := &fakeLegacyStore{}

	svc := NewPipelineService(
		&fakeRecognizer{result: &entity.RecognitionResult{Day: day}},
		&fakeStore{}, legacy, &fakeNotifier{}, m, zerolog.Nop(), "", true,
	)

	require.NoError(t, svc.ProcessImage(context.Background(), writeTestImage(t)))

	require.Contains(t, legacy.doc.Date, day.Date)
	require.Equal(t, []entity.Interval{
		{Start: "03:00", End: "04:00", Type: entity.IntervalOutage},
	}, legacy.doc.Date[day.Date].Groups["1.1"])
}

func TestProcessImageRecognitionError(t *testing.T) {
	m := testMerger(t, time.Date(2025, 3, 5, 16, 0, 0, 0, time.UTC))

	svc := NewPipelineService(
		&fakeRecognizer{err: entity.ErrStructureNotFound},
		&fakeStore{}, &fakeLegacyStore{}, &fakeNotifier{}, m, zerolog.Nop(), "", false,
	)

	err := svc.ProcessImage(context.Background(), writeTestImage(t))
	require.ErrorIs(t, err, entity.ErrStructureNotFound)
}

func TestProcessImageMissingFile(t *testing.T) {
	m := testMerger(t, time.Date(2025, 3, 5, 16, 0, 0, 0, time.UTC))

	svc := NewPipelineService(
		&fakeRecognizer{}, &fakeStore{}, &fakeLegacyStore{}, &fakeNotifier{}, m, zerolog.Nop(), "", false,
	)

	err := svc.ProcessImage(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestMergeBuckets(t *testing.T) {
	m := testMerger(t, time.Date(2025, 3, 5, 16, 0, 0, 0, time.UTC))
	store := &fakeStore{}

	svc := NewPipelineService(
		&fakeRecognizer{}, store, &fakeLegacyStore{}, &fakeNotifier{}, m, zerolog.Nop(), "", false,
	)

	today := m.midnight()
	tomorrow := today.AddDate(0, 0, 1)
	buckets := map[string]map[string]entity.HourMap{
		strconv.FormatInt(today.Unix(), 10): {
			"GPV1.1": {"4": entity.StatusOff},
		},
		strconv.FormatInt(tomorrow.Unix(), 10): {
			"GPV1.1": {"5": entity.StatusMaybe},
		},
		"garbage": {
			"GPV1.1": {"6": entity.StatusOff},
		},
	}

	require.NoError(t, svc.MergeBuckets(context.Background(), buckets))

	require.Len(t, store.doc.Fact.Data, 2)
	require.Equal(t, entity.StatusOff, store.doc.Fact.Data[strconv.FormatInt(today.Unix(), 10)]["GPV1.1"]["4"])
	require.Equal(t, entity.StatusMaybe, store.doc.Fact.Data[strconv.FormatInt(tomorrow.Unix(), 10)]["GPV1.1"]["5"])
}

func TestMergeBucketsEmptyIsNoop(t *testing.T) {
	m := testMerger(t, time.Date(2025, 3, 5, 16, 0, 0, 0, time.UTC))
	store := &fakeStore{}

	svc := NewPipelineService(
		&fakeRecognizer{}, store, &fakeLegacyStore{}, &fakeNotifier{}, m, zerolog.Nop(), "", false,
	)

	require.NoError(t, svc.MergeBuckets(context.Background(), nil))
	require.Nil(t, store.doc)
}
