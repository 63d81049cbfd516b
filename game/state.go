package game

// State is the session lifecycle phase
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

var stateNames = [...]string{
	StateIdle:     "Idle",
	StateRunning:  "Running",
	StatePaused:   "Paused",
	StateGameOver: "GameOver",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// parseState maps an FSM leaf name to State
func parseState(name string) State {
	for i, n := range stateNames {
		if n == name {
			return State(i)
		}
	}
	return StateIdle
}
