package recorder

// State represents the lifecycle state of a recording session.
type State string

const (
	StateIdle      State = "IDLE"
	StateStarting  State = "STARTING"
	StateRecording State = "RECORDING"
	StateClosing   State = "CLOSING"
	StateClosed    State = "CLOSED"
)
