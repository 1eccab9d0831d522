package container

import (
	"time"

	"github.com/rs/zerolog"

	"gpv-bot/config"
	telegram "gpv-bot/internal/api"
	app "gpv-bot/internal/application"
	"gpv-bot/internal/infrastructure/storage"
	"gpv-bot/internal/infrastructure/toeapi"
	"gpv-bot/internal/infrastructure/vision"
	"gpv-bot/internal/logging"
)

// Container збирає залежності застосунку з конфігурації.
type Container struct {
	Config   *config.Config
	Log      zerolog.Logger
	Location *time.Location
	Notifier *telegram.Notifier
	Pipeline *app.PipelineService
	API      *toeapi.Client
}

// New створює контейнер: часову зону, логери, нотифікатор,
// розпізнавач, сховища та конвеєр обробки.
func New(cfg *config.Config) (*Container, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	log := logging.New("app", cfg.LogPath)

	notifier, err := telegram.NewNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID, logging.New("telegram", cfg.LogPath))
	if err != nil {
		return nil, err
	}

	recognizer := vision.NewRecognizer(visionOptions(cfg), loc)
	store := storage.NewFileScheduleStore(cfg.OutputPath, logging.New("storage", cfg.LogPath))
	legacy := storage.NewFileLegacyStore(cfg.LegacyPath, logging.New("storage", cfg.LogPath))
	merger := app.NewMerger(cfg.RegionID, loc)

	pipeline := app.NewPipelineService(
		recognizer,
		store,
		legacy,
		notifier,
		merger,
		logging.New("pipeline", cfg.LogPath),
		cfg.DebugDir,
		cfg.Format == config.FormatLegacy,
	)

	api := toeapi.NewClient(cfg.API.BaseURL, apiKeys(cfg), loc, logging.New("toeapi", cfg.LogPath))

	return &Container{
		Config:   cfg,
		Log:      log,
		Location: loc,
		Notifier: notifier,
		Pipeline: pipeline,
		API:      api,
	}, nil
}

func visionOptions(cfg *config.Config) vision.Options {
	v := cfg.Vision
	return vision.Options{
		MinCellArea:      v.MinCellArea,
		MaxCellAreaRatio: v.MaxCellAreaRatio,
		MorphScale:       v.MorphScale,
		RowTolerance:     v.RowTolerance,
		HeaderLift:       v.HeaderLift,
		ThresholdBlock:   v.ThresholdBlock,
		ThresholdC:       v.ThresholdC,
		Queues:           cfg.Queues,
		Languages:        v.Languages,
		Thresholds: vision.Thresholds{
			RedChannelMin:    v.RedChannelMin,
			RedOtherMax:      v.RedOtherMax,
			RedDominance:     v.RedDominance,
			YellowChannelMin: v.YellowChannelMin,
			YellowBlueMax:    v.YellowBlueMax,
			YellowBalance:    v.YellowBalance,
			FillRatio:        v.FillRatio,
			CellBorder:       v.CellBorder,
			HalfInset:        v.HalfInset,
			MinCellSide:      v.MinCellSide,
		},
	}
}

func apiKeys(cfg *config.Config) []toeapi.Key {
	keys := make([]toeapi.Key, 0, len(cfg.API.Keys))
	for _, k := range cfg.API.Keys {
		keys = append(keys, toeapi.Key{
			CityID:   k.CityID,
			StreetID: k.StreetID,
			Groups:   k.Groups,
		})
	}
	return keys
}
