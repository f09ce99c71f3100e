package model

// SessionStatus represents the lifecycle state of a probe session
type SessionStatus string

const (
	// SessionStatusIdle means no submission has been made yet
	SessionStatusIdle SessionStatus = "Idle"

	// SessionStatusProbing means existence probes are in flight
	SessionStatusProbing SessionStatus = "Probing"

	// SessionStatusReady means at least one candidate survived and one is selected
	SessionStatusReady SessionStatus = "Ready"

	// SessionStatusEmpty means no candidate survived the probes
	SessionStatusEmpty SessionStatus = "Empty"

	// SessionStatusInputError means no identifier could be extracted from the input
	SessionStatusInputError SessionStatus = "InputError"
)

// String returns the string representation of SessionStatus
func (ss SessionStatus) String() string {
	return string(ss)
}

// IsSettled returns true if the session reached a final state (all probes
// resolved, or the submission was rejected before any network activity)
func (ss SessionStatus) IsSettled() bool {
	return ss == SessionStatusReady || ss == SessionStatusEmpty || ss == SessionStatusInputError
}

// HasResults returns true if the session holds surviving candidates
func (ss SessionStatus) HasResults() bool {
	return ss == SessionStatusReady
}
