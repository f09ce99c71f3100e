package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/thumbgrab/internal/download"
	"github.com/ytget/thumbgrab/internal/thumbnail"
	"github.com/ytget/thumbgrab/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.thumbgrab"
	AppName = "YT Thumbnail Grabber"

	WindowWidth  = 760
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("YT Thumbnail Grabber v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	thumbnailSvc := thumbnail.NewService()
	downloadSvc := download.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, thumbnailSvc, downloadSvc)

	// Show and run
	myWindow.ShowAndRun()
}
