package telegram

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger adapts zerolog to the tgbotapi.BotLogger interface so the
// library's polling errors end up in the structured log.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger creates a tgbotapi logger writing to logger
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger.With().Str("component", "tgbotapi").Logger()}
}

func (l *Logger) Println(v ...interface{}) {
	l.logger.Warn().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.logger.Warn().Msg(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}
