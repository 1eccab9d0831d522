package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gpv-bot/config"
	"gpv-bot/internal/container"
	"gpv-bot/internal/domain/entity"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	ctx := context.Background()

	if os.Getenv("GPV_SOURCE") == "api" {
		if err := runAPI(ctx, c); err != nil {
			c.Log.Error().Err(err).Msg("обробка даних з API не вдалася")
			os.Exit(1)
		}
		return
	}

	if err := runImage(ctx, c); err != nil {
		c.Log.Error().Err(err).Msg("обробка зображення не вдалася")
		os.Exit(1)
	}
}

// runAPI завантажує графіки на сьогодні та завтра з REST API та зливає
// їх у погодинний документ.
func runAPI(ctx context.Context, c *container.Container) error {
	now := time.Now().In(c.Location)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.Location)

	after := midnight.Format(time.RFC3339)
	before := midnight.Add(48 * time.Hour).Format(time.RFC3339)

	buckets, err := c.API.FetchAll(ctx, before, after)
	if err != nil {
		return err
	}

	return c.Pipeline.MergeBuckets(ctx, buckets)
}

// runImage обробляє зображення за шляхом з аргументу або найсвіжіший
// PNG з каталогу вхідних файлів.
func runImage(ctx context.Context, c *container.Container) error {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else {
		var err error
		if path, err = latestImage(c.Config.InputDir); err != nil {
			return err
		}
	}

	err := c.Pipeline.ProcessImage(ctx, path)
	if err == nil {
		return nil
	}

	// Зображення без таблиці чи нечитабельне не варто обробляти повторно.
	if errors.Is(err, entity.ErrStructureNotFound) || errors.Is(err, entity.ErrImageDecode) {
		if rmErr := os.Remove(path); rmErr != nil {
			c.Log.Warn().Err(rmErr).Str("path", path).Msg("не вдалося видалити зображення")
		}
	}

	if sendErr := c.Notifier.SendError(ctx, fmt.Sprintf("⚠️ Помилка обробки %s: %v", filepath.Base(path), err)); sendErr != nil {
		c.Log.Warn().Err(sendErr).Msg("не вдалося повідомити про помилку")
	}

	return err
}

// latestImage повертає найсвіжіший за часом зміни PNG у каталозі.
func latestImage(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no png images in %s", dir)
	}

	newest := ""
	var newestAt time.Time
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestAt) {
			newest = m
			newestAt = info.ModTime()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no readable png images in %s", dir)
	}

	return newest, nil
}
