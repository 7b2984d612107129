package klondike

// State is the unit of undo: every pile plus the running score and move
// counter. Elapsed time is not part of it; undo never rewinds the clock.
type State struct {
	Board Board
	Score int
	Moves int
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{
		Board: s.Board.Clone(),
		Score: s.Score,
		Moves: s.Moves,
	}
}

// Equal reports snapshot equality (not identity).
func (s State) Equal(other State) bool {
	return s.Score == other.Score && s.Moves == other.Moves && s.Board.Equal(other.Board)
}

// History is a stack of state snapshots. It always keeps at least the
// snapshot it was created with.
type History struct {
	states []State
}

// NewHistory starts a history whose floor is initial.
func NewHistory(initial State) *History {
	return &History{states: []State{initial.Clone()}}
}

// Record pushes a copy of s.
func (h *History) Record(s State) {
	h.states = append(h.states, s.Clone())
}

// Undo drops the latest snapshot and returns a copy of the one beneath it.
// It returns false, leaving the history untouched, when only the initial
// snapshot remains.
func (h *History) Undo() (State, bool) {
	if len(h.states) <= 1 {
		return State{}, false
	}
	h.states[len(h.states)-1] = State{}
	h.states = h.states[:len(h.states)-1]
	return h.states[len(h.states)-1].Clone(), true
}

// Current returns a copy of the latest snapshot.
func (h *History) Current() State {
	return h.states[len(h.states)-1].Clone()
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.states)
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	return len(h.states) > 1
}
