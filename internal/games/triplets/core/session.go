package core

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// ProgressStore persists the highest level ever started.
// BestLevel must never fail: missing or unreadable records read as 0.
type ProgressStore interface {
	BestLevel() int
	SaveBestLevel(level int) error
}

// Status is the outcome-relevant state of the current level.
type Status int

const (
	StatusIdle    Status = iota // No level started
	StatusPlaying               // Symbols remain on the board
	StatusWon                   // Board and preview empty
	StatusStuck                 // Board empty but preview holds unmatched symbols
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusStuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Options configures a Session. Zero values pick production defaults.
type Options struct {
	Rand     Rand             // Defaults to a time-seeded generator
	Clock    func() time.Time // Defaults to time.Now
	Reward   int              // Defaults to DefaultReward
	Progress ProgressStore    // Optional best-level persistence
	Notifier Notifier         // Optional event sink
	Logger   *log.Logger      // Defaults to a discarding logger
}

// MoveResult describes the effect of one MoveTop call.
type MoveResult struct {
	Symbol       Symbol
	Eliminations []Elimination
	Status       Status
}

// Session owns the single live (board, preview, undo stack, score, clock
// origin) tuple of the level in progress. It is not safe for concurrent
// use; the event loop serializes calls.
type Session struct {
	rng      Rand
	clock    func() time.Time
	reward   int
	progress ProgressStore
	notifier Notifier
	logger   *log.Logger

	level     *Level
	board     *Board
	preview   *Preview
	undo      UndoStack
	startedAt time.Time
	moves     int
	bestLevel int
}

// NewSession creates a session with no level started.
func NewSession(opts Options) *Session {
	s := &Session{
		rng:      opts.Rand,
		clock:    opts.Clock,
		reward:   opts.Reward,
		progress: opts.Progress,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.reward <= 0 {
		s.reward = DefaultReward
	}
	if s.notifier == nil {
		s.notifier = discardNotifier{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.progress != nil {
		s.bestLevel = s.progress.BestLevel()
	}
	return s
}

// StartLevel discards the current level and begins level n with a fresh
// board, an empty preview, zero score, a new clock origin and no undo
// history. A new best level is recorded and persisted.
func (s *Session) StartLevel(n int) error {
	lvl, err := Generate(n, s.rng)
	if err != nil {
		return err
	}

	s.level = lvl
	s.board = lvl.Board
	s.preview = NewPreview(s.reward)
	s.undo.Clear()
	s.startedAt = s.clock()
	s.moves = 0

	s.logger.Debug("level started", "level", n, "dims", lvl.Dims, "symbols", len(lvl.Chosen))

	if n > s.bestLevel {
		s.bestLevel = n
		if s.progress != nil {
			if err := s.progress.SaveBestLevel(n); err != nil {
				s.logger.Warn("could not save best level", "level", n, "error", err)
			}
		}
	}
	return nil
}

// MoveTop moves the top symbol at p into the preview and resolves any
// trailing triples. The prior state is snapshotted for Undo.
func (s *Session) MoveTop(p Position) (MoveResult, error) {
	if s.board == nil {
		return MoveResult{}, ErrNoLevel
	}
	if s.board.TopAt(p) == None {
		return MoveResult{Status: s.Status()}, ErrEmptyStack
	}

	s.snapshot()
	sym := s.board.PopTop(p)
	s.moves++
	s.notifier.Notify(MoveEvent{Level: s.level.Number, From: p, Symbol: sym})

	before := s.preview.Score()
	elims := s.preview.Push(sym)
	for i, e := range elims {
		score := before + (i+1)*s.preview.Reward()
		s.notifier.Notify(EliminateEvent{Level: s.level.Number, Anchor: e.Anchor, Score: score})
	}

	status := s.Status()
	if status == StatusWon {
		s.notifier.Notify(VictoryEvent{Level: s.level.Number, Score: s.preview.Score(), Moves: s.moves})
	}
	return MoveResult{Symbol: sym, Eliminations: elims, Status: status}, nil
}

// Undo restores the most recent snapshot: board, preview, score, move
// count and the level clock origin.
func (s *Session) Undo() error {
	if s.board == nil {
		return ErrNoLevel
	}
	snap, ok := s.undo.Pop()
	if !ok {
		return ErrNothingToUndo
	}
	s.board = snap.Board()
	s.preview.restore(snap.Preview(), snap.Score())
	s.startedAt = snap.StartedAt()
	s.moves = snap.Moves()
	return nil
}

// Shuffle snapshots the state and redistributes the remaining symbols.
func (s *Session) Shuffle() error {
	if s.board == nil {
		return ErrNoLevel
	}
	s.snapshot()
	ShuffleBoard(s.board, s.rng)
	return nil
}

// Timeout reports that the level clock expired. The caller is expected to
// call StartLevel again; the session only emits the notification.
func (s *Session) Timeout() {
	if s.level == nil {
		return
	}
	s.notifier.Notify(TimeoutEvent{Level: s.level.Number, Score: s.preview.Score()})
}

func (s *Session) snapshot() {
	s.undo.Push(NewSnapshot(s.board, s.preview.Items(), s.preview.Score(), s.moves, s.startedAt))
}

// Status derives the level outcome from the board and preview.
func (s *Session) Status() Status {
	switch {
	case s.board == nil:
		return StatusIdle
	case !s.board.IsFullyCleared():
		return StatusPlaying
	case s.preview.IsEmpty():
		return StatusWon
	default:
		return StatusStuck
	}
}

// Level returns the current level number, 0 before the first StartLevel.
func (s *Session) Level() int {
	if s.level == nil {
		return 0
	}
	return s.level.Number
}

// Dimensions returns the current board dimensions.
func (s *Session) Dimensions() Dimensions {
	if s.level == nil {
		return Dimensions{}
	}
	return s.level.Dims
}

// Chosen returns the distinct-symbol list the level was built from.
func (s *Session) Chosen() []Symbol {
	if s.level == nil {
		return nil
	}
	return append([]Symbol(nil), s.level.Chosen...)
}

// TopAt returns the visible symbol at p.
func (s *Session) TopAt(p Position) Symbol {
	if s.board == nil {
		return None
	}
	return s.board.TopAt(p)
}

// StackHeight returns the stack height at p.
func (s *Session) StackHeight(p Position) int {
	if s.board == nil {
		return 0
	}
	return s.board.StackHeight(p)
}

// Positions returns every position of the current board.
func (s *Session) Positions() []Position {
	if s.board == nil {
		return nil
	}
	return s.board.Positions()
}

// Remaining returns the number of symbols still on the board.
func (s *Session) Remaining() int {
	if s.board == nil {
		return 0
	}
	return s.board.Remaining()
}

// Preview returns a copy of the preview queue.
func (s *Session) Preview() []Symbol {
	if s.preview == nil {
		return nil
	}
	return s.preview.Items()
}

// PreviewEmpty returns true if the preview queue is empty.
func (s *Session) PreviewEmpty() bool {
	return s.preview == nil || s.preview.IsEmpty()
}

// Score returns the current level score.
func (s *Session) Score() int {
	if s.preview == nil {
		return 0
	}
	return s.preview.Score()
}

// StartedAt returns the level clock origin.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Moves returns the number of moves made (undone moves excluded).
func (s *Session) Moves() int { return s.moves }

// BestLevel returns the highest level started so far.
func (s *Session) BestLevel() int { return s.bestLevel }

// CanUndo returns true if a snapshot is available.
func (s *Session) CanUndo() bool { return s.undo.Len() > 0 }

// UndoDepth returns the number of stored snapshots.
func (s *Session) UndoDepth() int { return s.undo.Len() }

// BoardSnapshot returns a deep copy of the current board.
func (s *Session) BoardSnapshot() *Board {
	if s.board == nil {
		return nil
	}
	return s.board.Clone()
}
