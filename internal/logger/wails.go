package logger

import (
	"github.com/rs/zerolog"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// Wails routes the framework's own log output through zerolog.
type Wails struct {
	log zerolog.Logger
}

var _ wailslogger.Logger = (*Wails)(nil)

func NewWails(l zerolog.Logger) *Wails {
	return &Wails{log: Component(l, "wails")}
}

func (w *Wails) Print(message string)   { w.log.Log().Msg(message) }
func (w *Wails) Trace(message string)   { w.log.Trace().Msg(message) }
func (w *Wails) Debug(message string)   { w.log.Debug().Msg(message) }
func (w *Wails) Info(message string)    { w.log.Info().Msg(message) }
func (w *Wails) Warning(message string) { w.log.Warn().Msg(message) }
func (w *Wails) Error(message string)   { w.log.Error().Msg(message) }
func (w *Wails) Fatal(message string)   { w.log.Fatal().Msg(message) }

// WailsLevel maps a zerolog level onto the framework's level scale.
func WailsLevel(l zerolog.Level) wailslogger.LogLevel {
	switch {
	case l <= zerolog.TraceLevel:
		return wailslogger.TRACE
	case l == zerolog.DebugLevel:
		return wailslogger.DEBUG
	case l == zerolog.InfoLevel:
		return wailslogger.INFO
	case l == zerolog.WarnLevel:
		return wailslogger.WARNING
	default:
		return wailslogger.ERROR
	}
}
