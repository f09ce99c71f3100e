package model

// Package model defines domain data structures used across the app: thumbnail
// quality tiers, probe candidates, probe sessions, and status enums.
// Structures are designed for direct use by the UI and explicit state
// transitions.
