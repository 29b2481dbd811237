package desktop

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Shell implements the window lifecycle: delayed first show, hide-on-close and
// re-show on relaunch.
type Shell struct {
	windows   *Registry
	showDelay time.Duration
	log       zerolog.Logger
	sleep     func(time.Duration)
}

// NewShell returns a shell over windows that waits showDelay before the first
// show.
func NewShell(windows *Registry, showDelay time.Duration, log zerolog.Logger) *Shell {
	return &Shell{
		windows:   windows,
		showDelay: showDelay,
		log:       log,
		sleep:     time.Sleep,
	}
}

// Setup is the startup hook. A missing main window is tolerated silently; a
// failure to show it is returned.
func (s *Shell) Setup() error {
	w, ok := s.windows.Lookup(MainWindow)
	if !ok {
		s.log.Debug().Str("window", MainWindow).Msg("no main window registered, skipping initial show")
		return nil
	}

	s.sleep(s.showDelay)
	if err := w.Show(); err != nil {
		return fmt.Errorf("show %q window: %w", w.Label(), err)
	}
	s.log.Info().Str("window", w.Label()).Dur("delay", s.showDelay).Msg("window shown")
	return nil
}

// HandleWindowEvent is called for every event on every window. Only close
// requests are acted on: the window is hidden and the close is cancelled.
func (s *Shell) HandleWindowEvent(w Window, ev Event) {
	switch ev := ev.(type) {
	case *CloseRequested:
		if err := w.Hide(); err != nil {
			panic(fmt.Sprintf("hide %q window on close: %v", w.Label(), err))
		}
		ev.PreventClose()
		s.log.Debug().Str("window", w.Label()).Msg("close intercepted, window hidden")
	default:
	}
}

// Reopen brings the hidden main window back, e.g. when the app is launched again.
func (s *Shell) Reopen() {
	w, ok := s.windows.Lookup(MainWindow)
	if !ok {
		return
	}
	if err := w.Show(); err != nil {
		s.log.Error().Err(err).Str("window", w.Label()).Msg("reopen: show failed")
		return
	}
	if err := w.Unminimise(); err != nil {
		s.log.Warn().Err(err).Str("window", w.Label()).Msg("reopen: unminimise failed")
	}
}
