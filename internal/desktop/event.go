package desktop

// Event is a window-level event delivered by the framework. The set is closed:
// only the types in this file implement it.
type Event interface {
	windowEvent()
}

// CloseRequested is raised when a window is asked to close, e.g. through
// File ▸ Close Window. Handlers call PreventClose to keep the window alive.
type CloseRequested struct {
	prevented bool
}

// PreventClose keeps the window open.
func (e *CloseRequested) PreventClose() { e.prevented = true }

// Prevented reports whether a handler called PreventClose.
func (e *CloseRequested) Prevented() bool { return e.prevented }

// DomReady fires once the webview finished loading its document.
type DomReady struct{}

// QuitRequested fires when the application is about to terminate.
type QuitRequested struct{}

// Destroyed fires when the framework tears the window down on quit.
type Destroyed struct{}

func (*CloseRequested) windowEvent() {}
func (DomReady) windowEvent()        {}
func (QuitRequested) windowEvent()   {}
func (Destroyed) windowEvent()       {}
