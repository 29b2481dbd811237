package desktop

import (
	"errors"
	"sync"
)

// MainWindow is the label the hosted content's window is registered under.
const MainWindow = "main"

// ErrNoRuntime is returned by window operations attempted before the webview
// runtime has handed us its context.
var ErrNoRuntime = errors.New("desktop runtime not started")

// Window is a handle to a native window owned by the GUI framework.
type Window interface {
	Label() string
	Show() error
	Hide() error
	Unminimise() error
}

// Registry maps window labels to handles. The framework owns the windows; the
// registry only observes them.
type Registry struct {
	mu      sync.RWMutex
	windows map[string]Window
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{windows: make(map[string]Window)}
}

// Register adds w under its label, replacing any previous handle with that label.
func (r *Registry) Register(w Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[w.Label()] = w
}

// Lookup returns the window registered under label, if any.
func (r *Registry) Lookup(label string) (Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[label]
	return w, ok
}

// Remove forgets label. Removing an absent label is a no-op.
func (r *Registry) Remove(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, label)
}
