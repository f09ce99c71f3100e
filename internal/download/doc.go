package download

// Package download persists a selected thumbnail candidate to disk. It
// fetches the candidate's bytes fresh and writes them under a deterministic
// filename derived from the video identifier and the tier short code.
