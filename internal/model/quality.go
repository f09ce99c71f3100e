package model

import (
	"fmt"
	"strings"
)

// Default file extension when a tier filename carries none
const (
	DefaultImageExtension = "jpg"
)

// Quality describes one of the fixed thumbnail quality tiers offered by the
// image host.
type Quality struct {
	Code     string // short code, e.g. "MAXRES"
	Label    string // human readable label
	FileName string // filename on the image host, e.g. "maxresdefault.jpg"
	Width    int    // nominal width in pixels
	Height   int    // nominal height in pixels
}

// qualities is the canonical tier list, ordered by descending nominal
// resolution. Defined once at process start and never mutated.
var qualities = [5]Quality{
	{Code: "MAXRES", Label: "Maximum Resolution", FileName: "maxresdefault.jpg", Width: 1280, Height: 720},
	{Code: "SD", Label: "Standard Definition", FileName: "sddefault.jpg", Width: 640, Height: 480},
	{Code: "HQ", Label: "High Quality", FileName: "hqdefault.jpg", Width: 480, Height: 360},
	{Code: "MQ", Label: "Medium Quality", FileName: "mqdefault.jpg", Width: 320, Height: 180},
	{Code: "DEFAULT", Label: "Default", FileName: "default.jpg", Width: 120, Height: 90},
}

// Qualities returns the known thumbnail tiers ordered by descending nominal
// resolution. The returned slice is a copy, so callers cannot mutate the
// canonical list.
func Qualities() []Quality {
	result := make([]Quality, len(qualities))
	copy(result, qualities[:])
	return result
}

// Dimensions returns the nominal pixel dimensions formatted for display,
// e.g. "1280×720".
func (q Quality) Dimensions() string {
	return fmt.Sprintf("%d×%d", q.Width, q.Height)
}

// Extension returns the file extension of the tier's source filename without
// the leading dot, falling back to jpg.
func (q Quality) Extension() string {
	if idx := strings.LastIndex(q.FileName, "."); idx >= 0 && idx < len(q.FileName)-1 {
		return q.FileName[idx+1:]
	}
	return DefaultImageExtension
}
