package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New створює логер з міткою компонента. При APP_ENV=dev вивід
// форматується для консолі. Непорожній logPath додає дублювання у файл.
func New(component, logPath string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	if logPath != "" {
		_ = os.MkdirAll(filepath.Dir(logPath), 0o755)
		if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			out = zerolog.MultiLevelWriter(out, f)
		}
	}

	return zerolog.New(out).With().Timestamp().Str("component", component).Logger()
}
