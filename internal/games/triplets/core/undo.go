package core

import "time"

// Snapshot is an immutable copy of the undoable level state. Its fields are
// only reachable through accessors that hand out copies, so a stored
// snapshot never aliases the live board or queue.
type Snapshot struct {
	board     *Board
	preview   []Symbol
	score     int
	moves     int
	startedAt time.Time
}

// NewSnapshot deep-copies the given state. moves is the number of
// MoveTop calls made so far on the level.
func NewSnapshot(board *Board, preview []Symbol, score, moves int, startedAt time.Time) Snapshot {
	return Snapshot{
		board:     board.Clone(),
		preview:   append([]Symbol(nil), preview...),
		score:     score,
		moves:     moves,
		startedAt: startedAt,
	}
}

// Board returns a copy of the captured board.
func (s Snapshot) Board() *Board { return s.board.Clone() }

// Preview returns a copy of the captured queue.
func (s Snapshot) Preview() []Symbol { return append([]Symbol(nil), s.preview...) }

// Score returns the captured score.
func (s Snapshot) Score() int { return s.score }

// Moves returns the captured move count.
func (s Snapshot) Moves() int { return s.moves }

// StartedAt returns the captured level clock origin.
func (s Snapshot) StartedAt() time.Time { return s.startedAt }

// UndoStack is a LIFO of snapshots for the current level.
type UndoStack struct {
	snaps []Snapshot
}

// Push stores a snapshot on top of the stack.
func (u *UndoStack) Push(s Snapshot) {
	u.snaps = append(u.snaps, s)
}

// Pop removes and returns the most recent snapshot.
// The bool is false when there is nothing to undo.
func (u *UndoStack) Pop() (Snapshot, bool) {
	if len(u.snaps) == 0 {
		return Snapshot{}, false
	}
	s := u.snaps[len(u.snaps)-1]
	u.snaps[len(u.snaps)-1] = Snapshot{}
	u.snaps = u.snaps[:len(u.snaps)-1]
	return s, true
}

// Len returns the number of stored snapshots.
func (u *UndoStack) Len() int { return len(u.snaps) }

// Clear drops every snapshot.
func (u *UndoStack) Clear() { u.snaps = nil }
