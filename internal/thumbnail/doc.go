package thumbnail

// Package thumbnail implements the probe/selection pipeline: it derives the
// candidate image URL for every known quality tier of a video, probes all of
// them concurrently for existence, and tracks the resulting session with its
// current selection. Probe results are propagated to the UI via a callback.
