package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user input to the thumbnail resolver and download
// services and renders the quality grid, preview pane, notifications, and
// settings. All UI strings are localized via Localization.
