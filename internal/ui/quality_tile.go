package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/thumbgrab/internal/model"
)

// QualityTile is a tappable tile representing one surviving quality tier in
// the availability grid. Exactly one tile is selected at a time.
type QualityTile struct {
	widget.BaseWidget

	candidate *model.Candidate
	index     int
	selected  bool

	// UI components
	codeLabel *widget.Label
	dimsLabel *widget.Label

	// Callbacks
	onSelect func(index int)
}

// NewQualityTile creates a new quality tile for a surviving candidate
func NewQualityTile(candidate *model.Candidate, index int, onSelect func(index int)) *QualityTile {
	if candidate == nil {
		log.Printf("Warning: NewQualityTile called with nil candidate")
		candidate = &model.Candidate{Quality: model.Quality{Code: DashPlaceholder}}
	}

	qt := &QualityTile{
		candidate: candidate,
		index:     index,
		onSelect:  onSelect,
	}
	qt.ExtendBaseWidget(qt)
	qt.createUI()
	return qt
}

// createUI creates the UI components
func (qt *QualityTile) createUI() {
	qt.codeLabel = widget.NewLabel(qt.candidate.Quality.Label)
	qt.codeLabel.TextStyle = fyne.TextStyle{Bold: true}
	qt.codeLabel.Truncation = fyne.TextTruncateEllipsis

	qt.dimsLabel = widget.NewLabel(qt.candidate.Quality.Code + MiddleDotSeparator + qt.candidate.Quality.Dimensions())
}

// SetSelected updates the tile's selection highlight
func (qt *QualityTile) SetSelected(selected bool) {
	if qt.selected == selected {
		return
	}
	qt.selected = selected
	qt.Refresh()
}

// Selected reports whether the tile is currently selected
func (qt *QualityTile) Selected() bool {
	return qt.selected
}

// Tapped selects the tile
func (qt *QualityTile) Tapped(_ *fyne.PointEvent) {
	log.Printf("Quality tile tapped: %s (index %d)", qt.candidate.Quality.Code, qt.index)
	if qt.onSelect != nil {
		qt.onSelect(qt.index)
	}
}

// CreateRenderer creates the widget renderer
func (qt *QualityTile) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	background.CornerRadius = theme.InputRadiusSize()

	content := container.NewVBox(qt.codeLabel, qt.dimsLabel)

	return &qualityTileRenderer{
		tile:       qt,
		background: background,
		content:    content,
	}
}

// qualityTileRenderer renders the quality tile widget
type qualityTileRenderer struct {
	tile       *QualityTile
	background *canvas.Rectangle
	content    *fyne.Container
}

// Layout arranges the components
func (r *qualityTileRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.content.Resize(size)
}

// MinSize returns the minimum size
func (r *qualityTileRenderer) MinSize() fyne.Size {
	min := r.content.MinSize()
	if min.Width < TileMinWidth {
		min.Width = TileMinWidth
	}
	if min.Height < TileMinHeight {
		min.Height = TileMinHeight
	}
	return min
}

// Refresh refreshes the renderer
func (r *qualityTileRenderer) Refresh() {
	if r.tile.selected {
		r.background.FillColor = theme.Color(theme.ColorNameSelection)
		r.background.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.background.StrokeWidth = 2
	} else {
		r.background.FillColor = theme.Color(theme.ColorNameInputBackground)
		r.background.StrokeColor = theme.Color(theme.ColorNameInputBorder)
		r.background.StrokeWidth = 1
	}
	r.background.Refresh()
	r.content.Refresh()
}

// Objects returns the rendered objects
func (r *qualityTileRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.content}
}

// Destroy cleans up the renderer
func (r *qualityTileRenderer) Destroy() {}
