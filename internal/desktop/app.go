package desktop

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/geminidesk/gemini-desktop/internal/menu"
	"github.com/geminidesk/gemini-desktop/internal/version"
	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App adapts the Wails lifecycle callbacks onto the Shell and performs the
// runtime side of the predefined menu actions.
type App struct {
	shell   *Shell
	windows *Registry
	log     zerolog.Logger

	mu  sync.RWMutex
	ctx context.Context

	newWindow func(ctx context.Context, label string) Window
	fatal     func(error)
	quit      func(ctx context.Context)
}

var _ Actions = (*App)(nil)

// NewApp wires the lifecycle adapter to a shell and the registry it observes.
func NewApp(shell *Shell, windows *Registry, log zerolog.Logger) *App {
	a := &App{
		shell:     shell,
		windows:   windows,
		log:       log,
		newWindow: newWailsWindow,
		quit:      runtime.Quit,
	}
	a.fatal = func(err error) {
		a.log.Fatal().Err(err).Msg("startup failed")
	}
	return a
}

// Startup is Wails' OnStartup. The single Wails window is registered as "main"
// before the startup hook runs.
func (a *App) Startup(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	a.windows.Register(a.newWindow(ctx, MainWindow))
	if err := a.shell.Setup(); err != nil {
		a.fatal(err)
	}
}

// DomReady is Wails' OnDomReady.
func (a *App) DomReady(ctx context.Context) {
	a.dispatch(DomReady{})
}

// BeforeClose is Wails' OnBeforeClose; returning true cancels the quit. With
// HideWindowOnClose set, the close box hides the window inside Wails and never
// gets here, so every call is a quit (menu, Cmd-Q, Dock) and is let through.
func (a *App) BeforeClose(ctx context.Context) bool {
	a.dispatch(QuitRequested{})
	a.log.Info().Msg("quit requested, shutting down")
	return false
}

// Shutdown is Wails' OnShutdown.
func (a *App) Shutdown(ctx context.Context) {
	a.dispatch(Destroyed{})
	a.windows.Remove(MainWindow)

	a.mu.Lock()
	a.ctx = nil
	a.mu.Unlock()
}

// SecondInstance is the single-instance lock callback.
func (a *App) SecondInstance(data options.SecondInstanceData) {
	a.log.Info().Strs("args", data.Args).Msg("second instance launched, reopening main window")
	a.shell.Reopen()
}

func (a *App) dispatch(ev Event) {
	w, ok := a.windows.Lookup(MainWindow)
	if !ok {
		return
	}
	a.shell.HandleWindowEvent(w, ev)
}

func (a *App) runtimeContext(action string) (context.Context, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.ctx == nil {
		a.log.Warn().Str("action", action).Msg("menu action ignored before startup")
		return nil, false
	}
	return a.ctx, true
}

// About shows the About box on platforms without a native About item.
func (a *App) About(md menu.AboutMetadata) {
	ctx, ok := a.runtimeContext("about")
	if !ok {
		return
	}
	_, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
		Type:    runtime.InfoDialog,
		Title:   "About " + md.Name,
		Message: aboutMessage(md),
	})
	if err != nil {
		a.log.Error().Err(err).Msg("about dialog failed")
	}
}

func aboutMessage(md menu.AboutMetadata) string {
	v := md.Version
	if v == "" {
		v = version.Info()
	}
	lines := []string{md.Name, "Version " + v}
	for _, extra := range []string{md.Comments, md.Copyright, md.Website} {
		if extra != "" {
			lines = append(lines, extra)
		}
	}
	return strings.Join(lines, "\n")
}

// HideApp hides the whole application.
func (a *App) HideApp() {
	if ctx, ok := a.runtimeContext("hide"); ok {
		runtime.Hide(ctx)
	}
}

// ShowAll unhides the application.
func (a *App) ShowAll() {
	if ctx, ok := a.runtimeContext("show_all"); ok {
		runtime.Show(ctx)
	}
}

// Quit terminates the process through Wails, which consults BeforeClose first.
func (a *App) Quit() {
	if ctx, ok := a.runtimeContext("quit"); ok {
		a.log.Info().Msg("quit requested from menu")
		a.quit(ctx)
	}
}

// CloseWindow raises a close request on the main window, which the shell turns
// into a hide.
func (a *App) CloseWindow() {
	a.dispatch(&CloseRequested{})
}

// Edit runs an editing command in the webview.
func (a *App) Edit(cmd EditCommand) {
	if ctx, ok := a.runtimeContext(string(cmd)); ok {
		runtime.WindowExecJS(ctx, cmd.Script())
	}
}

// Minimize minimises the main window.
func (a *App) Minimize() {
	if ctx, ok := a.runtimeContext("minimize"); ok {
		runtime.WindowMinimise(ctx)
	}
}

// wailsWindow is the handle for Wails' single window.
type wailsWindow struct {
	ctx   context.Context
	label string
}

func newWailsWindow(ctx context.Context, label string) Window {
	return &wailsWindow{ctx: ctx, label: label}
}

func (w *wailsWindow) Label() string { return w.label }

func (w *wailsWindow) Show() error {
	if w.ctx == nil {
		return fmt.Errorf("show: %w", ErrNoRuntime)
	}
	runtime.WindowShow(w.ctx)
	return nil
}

func (w *wailsWindow) Hide() error {
	if w.ctx == nil {
		return fmt.Errorf("hide: %w", ErrNoRuntime)
	}
	runtime.WindowHide(w.ctx)
	return nil
}

func (w *wailsWindow) Unminimise() error {
	if w.ctx == nil {
		return fmt.Errorf("unminimise: %w", ErrNoRuntime)
	}
	runtime.WindowUnminimise(w.ctx)
	return nil
}
