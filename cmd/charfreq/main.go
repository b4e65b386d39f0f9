package main

import (
	"fmt"
	"runtime"

	"charfreq/internal/controllers"
	"charfreq/internal/logger"
	"charfreq/internal/models"
	"charfreq/internal/services"
	"charfreq/internal/shutdown"
	"charfreq/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Character Frequency"
	AppID      = "com.charfreq.desktop"
	AppVersion = "1.0.0"
)

const (
	windowWidth  = 900
	windowHeight = 600
)

// Application wires the entry store, controller and view together
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
	store      *models.EntryStore
	shutdown   *shutdown.Manager
}

func main() {
	application := NewApplication()
	application.Run()
}

// NewApplication creates and initializes the application using dependency injection
func NewApplication() *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	windowSize := fyne.NewSize(windowWidth, windowHeight)
	window.Resize(windowSize)
	window.CenterOnScreen()

	logLevel := logger.LevelFromEnv()
	appLogger := logger.NewConsoleLogger(logLevel)

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", windowSize.Width, windowSize.Height),
		"go_version":  runtime.Version(),
		"log_level":   logLevel.String(),
	})

	store := models.NewEntryStore()
	fileService := services.NewEntryFileService(appLogger)

	mainController := controllers.NewMainController(store, fileService, appLogger)
	mainView := views.NewMainView(window, appLogger)

	shutdownManager := shutdown.NewManager(appLogger)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: mainController,
		view:       mainView,
		store:      store,
		shutdown:   shutdownManager,
	}

	application.wireHandlers()
	application.setupWindowEvents()
	application.registerShutdown()

	appLogger.Info("Application", "initialized", nil)

	return application
}

// Run shows the main window and blocks until the application quits
func (a *Application) Run() {
	a.shutdown.Listen()
	a.window.ShowAndRun()
	a.logger.Info("Application", "terminated", nil)
}

func (a *Application) wireHandlers() {
	a.view.SetAddHandler(a.controller.AddEntry)
	a.view.SetDeleteHandler(a.controller.DeleteEntry)
	a.view.SetDeleteAllHandler(a.controller.DeleteAllEntries)
	a.view.SetSaveHandler(a.controller.Save)
	a.view.SetLoadHandler(a.controller.Load)
	a.view.SetQuitHandler(a.controller.RequestQuit)

	a.controller.SetMainView(a.view)
	a.controller.SetQuitHandler(a.shutdown.Shutdown)
}

// setupWindowEvents routes window close requests through the quit confirmation
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.controller.RequestQuit()
	})

	a.window.SetOnClosed(func() {
		a.logger.Debug("Application", "window closed", map[string]interface{}{
			"entries": a.store.Len(),
		})
	})
}

func (a *Application) registerShutdown() {
	a.shutdown.Register("fyne app", shutdown.Func(func() {
		fyne.Do(a.fyneApp.Quit)
	}))
	a.shutdown.Register("session", shutdown.Func(func() {
		a.logger.Info("Application", "session ended", map[string]interface{}{
			"entries": a.store.Len(),
		})
	}))
}
