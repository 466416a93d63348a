package bridge

import (
	"io"
	"log/slog"
)

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithLogger sets the logger used to report catch-all translations.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMetrics records translations and name conversions on m.
func WithMetrics(m *Metrics) TranslatorOption {
	return func(t *Translator) {
		t.metrics = m
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
