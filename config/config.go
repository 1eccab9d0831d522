package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Формати збереженого документа.
const (
	FormatHourly = "hourly" // канонічний: timestamp → година → статус
	FormatLegacy = "legacy" // сумісність: дата → черга → інтервали
)

type Config struct {
	RegionID   string         `json:"regionId"`
	Timezone   string         `json:"timezone"`
	Format     string         `json:"format"`
	InputDir   string         `json:"inputDir"`
	OutputPath string         `json:"outputPath"`
	LegacyPath string         `json:"legacyPath"`
	DebugDir   string         `json:"debugDir"`
	LogPath    string         `json:"logPath"`
	Queues     []string       `json:"queues"`
	Telegram   TelegramConfig `json:"telegram"`
	Vision     VisionConfig   `json:"vision"`
	API        APIConfig      `json:"api"`
}

type TelegramConfig struct {
	Token  string `json:"token"`
	ChatID int64  `json:"chatId"`
}

// VisionConfig — параметри розпізнавання. Пороги кольорів винесені у
// конфігурацію, бо стиснення зображень зсуває межі кольорів.
type VisionConfig struct {
	MinCellArea      int      `json:"minCellArea"`      // мінімальна площа контуру клітинки
	MaxCellAreaRatio float64  `json:"maxCellAreaRatio"` // відсікає зовнішню рамку таблиці
	MorphScale       int      `json:"morphScale"`       // дільник розміру зображення для ядер ліній
	RowTolerance     int      `json:"rowTolerance"`     // вертикальний допуск групування у рядки
	HeaderLift       int      `json:"headerLift"`       // підняття межі заголовка для OCR
	ThresholdBlock   int      `json:"thresholdBlock"`   // блок адаптивної бінаризації
	ThresholdC       float64  `json:"thresholdC"`
	Languages        []string `json:"languages"` // мови OCR заголовка

	RedChannelMin    int     `json:"redChannelMin"`
	RedOtherMax      int     `json:"redOtherMax"`
	RedDominance     int     `json:"redDominance"`
	YellowChannelMin int     `json:"yellowChannelMin"`
	YellowBlueMax    int     `json:"yellowBlueMax"`
	YellowBalance    int     `json:"yellowBalance"`
	FillRatio        float64 `json:"fillRatio"`
	CellBorder       int     `json:"cellBorder"`
	HalfInset        int     `json:"halfInset"`
	MinCellSide      int     `json:"minCellSide"`
}

// StreetKey — зв'язка (cityId, streetId) з чергами на цій вулиці.
// Один запит по ключу повертає графіки всіх її черг.
type StreetKey struct {
	CityID   int      `json:"cityId"`
	StreetID int      `json:"streetId"`
	Groups   []string `json:"groups"`
}

type APIConfig struct {
	BaseURL string      `json:"baseUrl"`
	Keys    []StreetKey `json:"keys"`
}

// Load читає .env, опційний JSON-файл з GPV_CONFIG та перекриття зі
// змінних середовища з префіксом GPV_.
func Load() (*Config, error) {
	// Ігноруємо помилку, якщо .env файла немає
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.SetDefaults()

	k := koanf.New(".")
	if path := os.Getenv("GPV_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := k.Load(env.Provider("GPV_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gpv_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}

	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = os.Getenv("TELEGRAM_TOKEN")
	}
	if cfg.Format != FormatHourly && cfg.Format != FormatLegacy {
		return nil, fmt.Errorf("unsupported format: %s", cfg.Format)
	}

	return cfg, nil
}

// SetDefaults заповнює типові значення для Тернопільобленерго.
func (c *Config) SetDefaults() {
	c.RegionID = "Ternopil"
	c.Timezone = "Europe/Kyiv"
	c.Format = FormatHourly
	c.InputDir = "in"
	c.OutputPath = "out/Ternopiloblenerho.json"
	c.LegacyPath = "out/blackouts.json"
	c.DebugDir = "DEBUG_IMAGES"
	c.LogPath = "logs/full_log.log"
	c.Queues = []string{
		"1.1", "1.2", "2.1", "2.2", "3.1", "3.2",
		"4.1", "4.2", "5.1", "5.2", "6.1", "6.2",
	}
	c.Vision = VisionConfig{
		MinCellArea:      1000,
		MaxCellAreaRatio: 0.05,
		MorphScale:       10,
		RowTolerance:     15,
		HeaderLift:       35,
		ThresholdBlock:   9,
		ThresholdC:       2,
		Languages:        []string{"ukr", "eng"},
		RedChannelMin:    150,
		RedOtherMax:      100,
		RedDominance:     50,
		YellowChannelMin: 150,
		YellowBlueMax:    150,
		YellowBalance:    50,
		FillRatio:        0.30,
		CellBorder:       3,
		HalfInset:        2,
		MinCellSide:      10,
	}
	c.API = APIConfig{
		BaseURL: "https://api-toe-poweron.inneti.net/api",
		Keys: []StreetKey{
			{CityID: 919, StreetID: 8835, Groups: []string{"1.1"}},
			{CityID: 1032, StreetID: 9999, Groups: []string{"1.2", "2.2"}},
			{CityID: 604, StreetID: 6050, Groups: []string{"2.1"}},
			{CityID: 21346, StreetID: 35118, Groups: []string{"3.1"}},
			{CityID: 1032, StreetID: 9996, Groups: []string{"3.2", "4.2"}},
			{CityID: 1032, StreetID: 9982, Groups: []string{"4.1", "5.1"}},
			{CityID: 1032, StreetID: 10021, Groups: []string{"5.2"}},
			{CityID: 514, StreetID: 31361, Groups: []string{"6.1"}},
			{CityID: 21547, StreetID: 36889, Groups: []string{"6.2"}},
		},
	}
}

// Location повертає часову зону з конфігурації.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
