package ui

import (
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/thumbgrab/internal/config"
	"github.com/ytget/thumbgrab/internal/download"
	"github.com/ytget/thumbgrab/internal/model"
	"github.com/ytget/thumbgrab/internal/platform"
	"github.com/ytget/thumbgrab/internal/thumbnail"
	"github.com/ytget/thumbgrab/internal/videoid"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	urlEntry     *widget.Entry
	grabBtn      *widget.Button
	downloadBtn  *widget.Button
	copyURLBtn   *widget.Button
	resolver     thumbnail.Resolver
	saver        download.Saver
	settings     *config.Settings
	localization *Localization

	// Results area
	qualitiesLabel *widget.Label
	tileGrid       *fyne.Container
	tiles          []*QualityTile
	previewImage   *canvas.Image
	previewCaption *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, resolver thumbnail.Resolver, saver download.Saver) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the download directory exists up front
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		log.Printf("Warning: could not create download directory: %v", err)
	}

	ui := &RootUI{
		window:       window,
		resolver:     resolver,
		saver:        saver,
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized with resolver: %v", ui.resolver != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for probe session updates
	ui.resolver.SetUpdateCallback(ui.onSessionUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterLink))
	// Trigger probing when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onGrabClick()
	}

	// Create grab button
	ui.grabBtn = widget.NewButton(ui.localization.GetText(KeyGrab), ui.onGrabClick)
	ui.grabBtn.Importance = widget.HighImportance

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
	}

	// Create top panel (URL row) with logo
	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), ui.grabBtn, ui.urlEntry)
	} else {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(settingsBtn), ui.grabBtn, ui.urlEntry)
	}

	// Create notification panel under URL input (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Combine URL row and notification panel at the top
	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	// Quality grid (populated once a probe session settles)
	ui.qualitiesLabel = widget.NewLabel(ui.localization.GetText(KeyAvailableQualities))
	ui.qualitiesLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.qualitiesLabel.Hide()
	ui.tileGrid = container.New(layout.NewGridWrapLayout(fyne.NewSize(TileMinWidth, TileMinHeight)))

	// Preview pane
	ui.previewImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	ui.previewImage.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))
	ui.previewCaption = widget.NewLabel("")
	ui.previewCaption.Truncation = fyne.TextTruncateEllipsis

	// Action row
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Disable()

	ui.copyURLBtn = widget.NewButton(IconCopy+" "+ui.localization.GetText(KeyCopyURL), ui.onCopyURL)
	ui.copyURLBtn.Disable()

	actionsRow := container.NewBorder(nil, nil, ui.previewCaption, container.NewHBox(ui.copyURLBtn, ui.downloadBtn))

	// Create main layout
	resultsArea := container.NewBorder(
		container.NewVBox(ui.qualitiesLabel, ui.tileGrid), // top
		actionsRow,      // bottom
		nil,             // left
		nil,             // right
		ui.previewImage, // center - preview pane
	)

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		resultsArea, // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterLink))
	ui.grabBtn.SetText(ui.localization.GetText(KeyGrab))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.copyURLBtn.SetText(IconCopy + " " + ui.localization.GetText(KeyCopyURL))
	ui.qualitiesLabel.SetText(ui.localization.GetText(KeyAvailableQualities))
}

// onGrabClick handles the grab button click: extract the identifier and start
// a probe session. Invalid input is rejected before any network activity.
func (ui *RootUI) onGrabClick() {
	input := strings.TrimSpace(ui.urlEntry.Text)
	if input == "" {
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterLink), false)
		return
	}

	id, err := videoid.Extract(input)
	if err != nil {
		log.Printf("Identifier extraction failed for input %q: %v", input, err)
		ui.showNotification(IconError+" "+ui.localization.GetText(KeyInvalidLink), false)
		ui.clearResults()
		return
	}

	log.Printf("Extracted video id %s, starting probe", id)
	ui.resolver.Probe(id)
}

// onSessionUpdate handles probe session updates from the resolver
func (ui *RootUI) onSessionUpdate(session *model.ProbeSession) {
	log.Printf("Session update received: id=%s status=%s candidates=%d",
		session.ID, session.Status, len(session.Candidates))

	fyne.Do(func() {
		switch session.Status {
		case model.SessionStatusProbing:
			ui.showNotification(ui.localization.GetText(KeyProbing), true)
			ui.clearResults()
		case model.SessionStatusReady:
			ui.hideNotification()
			ui.rebuildTiles(session)
			ui.updatePreview(session)
			ui.downloadBtn.Enable()
			ui.copyURLBtn.Enable()
		case model.SessionStatusEmpty:
			ui.showNotification(IconError+" "+ui.localization.GetText(KeyNoThumbnails), false)
			ui.clearResults()
		}
	})
}

// clearResults resets the quality grid, preview, and action buttons
func (ui *RootUI) clearResults() {
	ui.tiles = nil
	ui.tileGrid.Objects = nil
	ui.tileGrid.Refresh()
	ui.qualitiesLabel.Hide()

	ui.previewImage.Resource = nil
	ui.previewImage.Refresh()
	ui.previewCaption.SetText("")

	ui.downloadBtn.Disable()
	ui.copyURLBtn.Disable()
}

// rebuildTiles replaces the quality grid with the session's survivors
func (ui *RootUI) rebuildTiles(session *model.ProbeSession) {
	ui.tiles = nil
	ui.tileGrid.Objects = nil

	for i, candidate := range session.Candidates {
		tile := NewQualityTile(candidate, i, ui.onTileSelected)
		tile.SetSelected(i == session.Selected)
		ui.tiles = append(ui.tiles, tile)
		ui.tileGrid.Add(tile)
	}

	ui.qualitiesLabel.Show()
	ui.tileGrid.Refresh()
}

// onTileSelected handles selection changes in the quality grid. Changing the
// selection never re-triggers probing.
func (ui *RootUI) onTileSelected(index int) {
	session := ui.resolver.Current()
	if session == nil || !session.Status.HasResults() {
		log.Printf("Tile selected with no current results, ignoring")
		return
	}

	if err := ui.resolver.Select(session.ID, index); err != nil {
		log.Printf("Error selecting candidate %d: %v", index, err)
		return
	}

	for i, tile := range ui.tiles {
		tile.SetSelected(i == index)
	}
	ui.updatePreview(session)
}

// updatePreview shows the selected candidate in the preview pane using the
// bytes captured by its existence probe
func (ui *RootUI) updatePreview(session *model.ProbeSession) {
	candidate := session.SelectedCandidate()
	if candidate == nil {
		ui.previewImage.Resource = nil
		ui.previewImage.Refresh()
		ui.previewCaption.SetText("")
		return
	}

	ui.previewImage.Resource = fyne.NewStaticResource(candidate.OutputFileName(session.VideoID), candidate.Image)
	ui.previewImage.Refresh()
	ui.previewCaption.SetText(candidate.Quality.Label + MiddleDotSeparator + candidate.Quality.Dimensions())
}

// onDownloadClick saves the selected candidate to the configured directory.
// A failure is recoverable: candidates and selection stay as they are.
func (ui *RootUI) onDownloadClick() {
	session := ui.resolver.Current()
	if session == nil {
		return
	}
	candidate := session.SelectedCandidate()
	if candidate == nil {
		log.Printf("Download clicked with no selected candidate")
		return
	}

	dir := ui.settings.GetDownloadDirectory()
	videoID := session.VideoID

	ui.downloadBtn.Disable()

	go func() {
		path, err := ui.saver.Save(candidate, dir, videoID)

		fyne.Do(func() {
			ui.downloadBtn.Enable()

			if err != nil {
				log.Printf("Download failed for video %s tier %s: %v", videoID, candidate.Quality.Code, err)
				ui.showNotification(IconError+" "+ui.localization.GetText(KeyErrorSaving)+": "+err.Error(), false)
				return
			}

			ui.hideNotification()
			ui.sendCompletionNotification(path)

			// Auto-reveal if enabled
			if ui.settings.GetAutoRevealOnSave() {
				ui.onRevealFile(path)
			}
		})
	}()
}

// onCopyURL copies the selected candidate's URL to the clipboard
func (ui *RootUI) onCopyURL() {
	session := ui.resolver.Current()
	if session == nil {
		return
	}
	candidate := session.SelectedCandidate()
	if candidate == nil {
		return
	}

	fyne.CurrentApp().Clipboard().SetContent(candidate.URL)
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyURLCopied)), ui.window.Canvas())
}

// showNotification displays a message in the notification panel under the URL
// input. When spinning is true, a spinner is shown to indicate background
// activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// onRevealFile reveals a saved file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	log.Printf("onRevealFile called for path: %s", filePath)

	if filePath == "" {
		log.Printf("Error: onRevealFile called with empty filePath")
		return
	}

	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onOpenFile opens a saved file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	log.Printf("onOpenFile called for path: %s", filePath)

	if filePath == "" {
		log.Printf("Error: onOpenFile called with empty filePath")
		return
	}

	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// sendCompletionNotification notifies the user about a saved thumbnail
func (ui *RootUI) sendCompletionNotification(path string) {
	// Use Fyne's SendNotification
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyThumbnailSaved),
		Content: path,
	})

	// Show in-app toast notification with action buttons
	ui.showToastNotification(path)
}

// showToastNotification shows an in-app toast notification with action buttons
func (ui *RootUI) showToastNotification(path string) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyThumbnailSaved))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(path)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	// Create action buttons
	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
		ui.onRevealFile(path)
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		ui.onOpenFile(path)
	})
	openBtn.Importance = widget.MediumImportance

	// Create close button
	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	// Layout the toast content
	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	actions := container.NewHBox(revealBtn, openBtn)
	content := container.NewVBox(
		header,
		messageLabel,
		actions,
	)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.Move(toastPos)
	toastPopup.Show()

	// Auto-hide after configured time
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
	}()
}
