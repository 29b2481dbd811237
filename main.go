package main

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
	goruntime "runtime"

	"github.com/geminidesk/gemini-desktop/internal/config"
	"github.com/geminidesk/gemini-desktop/internal/desktop"
	"github.com/geminidesk/gemini-desktop/internal/handler"
	"github.com/geminidesk/gemini-desktop/internal/logger"
	"github.com/geminidesk/gemini-desktop/internal/menu"
	"github.com/geminidesk/gemini-desktop/internal/version"
	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	wmenu "github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:launcher
var launcherAssets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.NewConsole(logger.ParseLevel(""))
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	level := logger.ParseLevel(cfg.LogLevel)
	root := logger.NewConsole(level)
	log := logger.Component(root, "main")
	log.Info().Str("version", version.Full()).Str("url", cfg.URL).Msg("Starting " + cfg.ProductName)

	appMenuTree, err := menu.Default(cfg.ProductName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build application menu")
	}

	registry := desktop.NewRegistry()
	shell := desktop.NewShell(registry, cfg.ShowDelay, logger.Component(root, "shell"))
	app := desktop.NewApp(shell, registry, logger.Component(root, "app"))

	appMenu, err := desktop.RenderMenu(appMenuTree, app, goruntime.GOOS)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render application menu")
	}

	launcherFS, err := fs.Sub(launcherAssets, "launcher")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open launcher assets")
	}
	launcher, err := handler.NewLauncherHandler(launcherFS, handler.LauncherPage{
		ProductName: cfg.ProductName,
		URL:         cfg.URL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize launcher")
	}

	err = wails.Run(appOptions(cfg, app, appMenu, desktop.MacAbout(appMenuTree), launcher, root, level))
	if err != nil {
		log.Error().Err(err).Msg("Application exited with error")
		os.Exit(1)
	}
}

// appOptions wires the app into Wails. The window starts hidden so the startup
// hook decides when it appears, and the close box hides it instead of quitting.
func appOptions(cfg config.Config, app *desktop.App, appMenu *wmenu.Menu, about *mac.AboutInfo,
	launcher http.Handler, root zerolog.Logger, level zerolog.Level) *options.App {
	return &options.App{
		Title:             cfg.ProductName,
		Width:             cfg.Width,
		Height:            cfg.Height,
		MinWidth:          cfg.MinWidth,
		MinHeight:         cfg.MinHeight,
		StartHidden:       true,
		HideWindowOnClose: true,
		AssetServer: &assetserver.Options{
			Handler: launcher,
		},
		BackgroundColour:   &options.RGBA{R: 19, G: 19, B: 20, A: 255},
		Menu:               appMenu,
		SingleInstanceLock: desktop.SingleInstanceLock(cfg.BundleID, app),
		Logger:             logger.NewWails(root),
		LogLevel:           logger.WailsLevel(level),
		OnStartup:          app.Startup,
		OnDomReady:         app.DomReady,
		OnBeforeClose:      app.BeforeClose,
		OnShutdown:         app.Shutdown,
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
		},
		Mac: &mac.Options{
			TitleBar: mac.TitleBarDefault(),
			About:    about,
		},
		Linux: &linux.Options{
			ProgramName: cfg.ProductName,
		},
	}
}
