package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/thumbgrab/internal/download"
	"github.com/ytget/thumbgrab/internal/thumbnail"
	"github.com/ytget/thumbgrab/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.ytget.thumbgrab")
	myWindow := myApp.NewWindow("YT Thumbnail Grabber")
	myWindow.Resize(fyne.NewSize(760, 560))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, thumbnail.NewService(), download.NewService())

	// Show and run
	myWindow.ShowAndRun()
}
