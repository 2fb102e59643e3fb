package main

import (
	"context"
	"os"
	"runtime"

	"renameme/internal/app"
	"renameme/internal/logger"
	"renameme/internal/settings"
	"renameme/internal/shutdown"

	fyneapp "fyne.io/fyne/v2/app"
)

const AppVersion = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewConsoleLogger(logger.ParseLevel(os.Getenv("LOG_LEVEL")))

	store := settings.NewStore(settings.DefaultConfig())
	log.Info("application starting", map[string]interface{}{
		"version":       AppVersion,
		"go_version":    runtime.Version(),
		"settings_path": store.Path(),
	})

	options := app.DefaultOptions()

	fyneApp := fyneapp.NewWithID(app.AppID)
	application, err := app.New(fyneApp, options, app.Deps{
		Logger:   log.With("app"),
		Settings: store,
	})
	if err != nil {
		log.Error("application construction failed", err, nil)
		return 1
	}

	listener := shutdown.NewListener(log.With("shutdown"), application.Quit)
	listener.Listen(context.Background())
	defer listener.Stop()

	return application.Run()
}
