package triplets

import (
	"time"

	tcore "github.com/vovakirdan/tui-triplets/internal/games/triplets/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateVictory     GameStateType = "victory"
	StateTimeout     GameStateType = "timeout"
	StateStuck       GameStateType = "stuck"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Level        int
	Dims         tcore.Dimensions
	Score        int // Run total, including banked levels
	LevelScore   int
	BestLevel    int
	Moves        int
	Eliminations int
	Remaining    int // Symbols left on the board
	Tops         []tcore.Symbol
	Heights      []int
	Preview      []tcore.Symbol
	UndoDepth    int
	Cursor       tcore.Position
	TicksLeft    int64 // Level clock in ticks, -1 when untimed
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.phase == phaseVictory:
		state = StateVictory
	case g.phase == phaseTimeout:
		state = StateTimeout
	case g.phase == phaseStuck:
		state = StateStuck
	case g.paused:
		state = StatePaused
	}

	positions := g.session.Positions()
	tops := make([]tcore.Symbol, len(positions))
	heights := make([]int, len(positions))
	for i, p := range positions {
		tops[i] = g.session.TopAt(p)
		heights[i] = g.session.StackHeight(p)
	}

	ticksLeft := int64(-1)
	if g.limit() > 0 {
		ticksLeft = int64(g.remaining()) * int64(g.tickRate) / int64(time.Second)
	}

	return Snapshot{
		Tick:         g.tick,
		Level:        g.session.Level(),
		Dims:         g.session.Dimensions(),
		Score:        g.State().Score,
		LevelScore:   g.session.Score(),
		BestLevel:    g.session.BestLevel(),
		Moves:        g.session.Moves(),
		Eliminations: g.eliminations,
		Remaining:    g.session.Remaining(),
		Tops:         tops,
		Heights:      heights,
		Preview:      g.session.Preview(),
		UndoDepth:    g.session.UndoDepth(),
		Cursor:       tcore.P(g.cursorCol, g.cursorRow),
		TicksLeft:    ticksLeft,
		State:        state,
	}
}
