package desktop

import (
	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/options"
)

// InstanceID derives a stable single-instance lock id from the bundle identifier,
// so every build of the same app contends for the same lock.
func InstanceID(bundleID string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(bundleID)).String()
}

// SingleInstanceLock makes a second launch hand over to the running process,
// which re-shows its hidden window.
func SingleInstanceLock(bundleID string, app *App) *options.SingleInstanceLock {
	return &options.SingleInstanceLock{
		UniqueId:               InstanceID(bundleID),
		OnSecondInstanceLaunch: app.SecondInstance,
	}
}
