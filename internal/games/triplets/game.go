// Package triplets implements the Triplets stacking puzzle as a playable game.
// The rules live in the core subpackage; this package owns the tick clock,
// the level timer, overlays, selection and rendering.
package triplets

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-triplets/internal/config"
	"github.com/vovakirdan/tui-triplets/internal/core"
	tcore "github.com/vovakirdan/tui-triplets/internal/games/triplets/core"
	"github.com/vovakirdan/tui-triplets/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "triplets"

// Outcomes reported in LevelResult.
const (
	OutcomeWon     = "won"
	OutcomeTimeout = "timeout"
	OutcomeStuck   = "stuck"
	OutcomeQuit    = "quit"
)

// LevelResult describes one finished level attempt.
type LevelResult struct {
	Level    int
	Outcome  string
	Score    int
	Moves    int
	Duration time.Duration
}

// ResultRecorder receives finished level attempts.
type ResultRecorder interface {
	RecordLevel(LevelResult)
}

// ResultRecorderFunc adapts a function to ResultRecorder.
type ResultRecorderFunc func(LevelResult)

// RecordLevel calls f(r).
func (f ResultRecorderFunc) RecordLevel(r LevelResult) { f(r) }

// Settings are the collaborators and options a Game is built with.
type Settings struct {
	ConfigPath string
	Difficulty string // easy, normal, hard or fixed; empty keeps the config file values
	StartLevel int    // 0 starts at level 1
	Progress   tcore.ProgressStore
	Recorder   ResultRecorder
	Notifier   tcore.Notifier
	Logger     *log.Logger
}

// Package-level defaults picked up by New.
var defaults Settings

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	defaults.ConfigPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	defaults.Difficulty = preset
}

// SetStartLevel sets the level the next game starts at. 0 means level 1.
func SetStartLevel(level int) {
	defaults.StartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return defaults.StartLevel
}

// SetProgressStore sets where the best level is read from and saved to.
func SetProgressStore(p tcore.ProgressStore) {
	defaults.Progress = p
}

// SetResultRecorder sets the sink for finished level attempts.
func SetResultRecorder(r ResultRecorder) {
	defaults.Recorder = r
}

// SetNotifier sets an extra listener for engine events.
func SetNotifier(n tcore.Notifier) {
	defaults.Notifier = n
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	defaults.Logger = l
}

type phase int

const (
	phasePlaying phase = iota
	phaseVictory
	phaseTimeout
	phaseStuck
)

// clockEpoch anchors the virtual level clock. Only differences matter.
var clockEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Game implements registry.Game for Triplets.
type Game struct {
	settings Settings
	logger   *log.Logger

	cfg     config.TripletsConfig
	diff    *config.DifficultyManager
	session *tcore.Session

	tick       uint64
	clockTicks int64 // Ticks of unpaused play; drives the level clock
	tickRate   int

	screenW  int
	screenH  int
	layout   layout
	tooSmall bool

	phase        phase
	paused       bool
	overlayTicks int
	levelBegan   int64 // clockTicks when the current attempt started
	banked       int   // Score of levels already won in this run

	cursorCol int
	cursorRow int

	hint      string
	hintTicks int
	hintsSeen map[string]bool

	flash      string
	flashTicks int

	eliminations int
	abandoned    bool
}

// New creates a game from the package-level settings.
// The start level is consumed so later games begin at level 1.
func New() *Game {
	s := defaults
	defaults.StartLevel = 0
	return NewWithSettings(s)
}

// NewWithSettings creates a game with explicit settings.
func NewWithSettings(s Settings) *Game {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		settings:  s,
		logger:    logger,
		hintsSeen: make(map[string]bool),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Triplets"
}

// Rules returns the how-to-play lines shown by the menu.
func (g *Game) Rules() []string {
	return []string{
		"Take the top symbol of any stack into the preview row.",
		"Three equal symbols at the end of the preview vanish (* matches anything).",
		"Clear the board and the preview before the clock runs out.",
		"Undo unlocks at level 2, Shuffle at level 3.",
	}
}

// Reset initializes or restarts the game. After a stuck level the same
// level is restarted; otherwise play begins at the configured start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	restart := 0
	if g.session != nil && g.phase == phaseStuck {
		restart = g.session.Level()
	}

	g.loadConfig()

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.clockTicks = 0
	g.banked = 0
	g.paused = false
	g.eliminations = 0
	g.abandoned = false
	g.flash = ""
	g.flashTicks = 0

	g.session = tcore.NewSession(tcore.Options{
		Rand:     tcore.NewRand(cfg.Seed),
		Clock:    g.now,
		Reward:   g.cfg.Rules.Reward,
		Progress: g.settings.Progress,
		Notifier: tcore.Fanout{tcore.NotifierFunc(g.onEvent), g.settings.Notifier},
		Logger:   g.logger,
	})

	level := restart
	if level < 1 {
		level = g.settings.StartLevel
	}
	if level < 1 {
		level = 1
	}
	g.startLevel(level)
}

func (g *Game) loadConfig() {
	cfg, err := config.LoadTriplets(g.settings.ConfigPath)
	if err != nil {
		g.logger.Warn("could not load config, using defaults", "error", err)
	}
	if g.settings.Difficulty != "" {
		preset, err := config.ParsePreset(g.settings.Difficulty)
		if err != nil {
			g.logger.Warn("ignoring difficulty", "error", err)
		} else {
			config.ApplyTripletsPreset(&cfg, preset)
		}
	}
	cfg.Validate()
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
}

// Resize adapts the layout to a new screen size without restarting the level.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.relayout()
}

// now is the session clock: the epoch plus elapsed unpaused ticks.
func (g *Game) now() time.Time {
	return clockEpoch.Add(g.ticksToDuration(g.clockTicks))
}

func (g *Game) ticksToDuration(ticks int64) time.Duration {
	return time.Duration(ticks) * time.Second / time.Duration(g.tickRate)
}

func (g *Game) startLevel(n int) {
	if err := g.session.StartLevel(n); err != nil {
		g.logger.Error("could not start level", "level", n, "error", err)
		return
	}
	g.phase = phasePlaying
	g.overlayTicks = 0
	g.levelBegan = g.clockTicks
	g.cursorCol, g.cursorRow = 0, 0
	g.relayout()
	g.showUnlockHint(n)
}

func (g *Game) showUnlockHint(level int) {
	var key, msg string
	switch {
	case level == g.cfg.Rules.UndoUnlockLevel:
		key, msg = "undo", "Undo unlocked: press U or click Undo to revert one step."
	case level == g.cfg.Rules.ShuffleUnlockLevel:
		key, msg = "shuffle", "Shuffle unlocked: press X or click Shuffle to reshuffle the board."
	default:
		sym, ok := tcore.UnlockedAt(level)
		if !ok {
			return
		}
		key, msg = sym.String(), "New symbol: "+string(sym.Glyph())+" joins the pool."
	}
	if g.hintsSeen[key] {
		return
	}
	g.hintsSeen[key] = true
	g.hint = msg
	g.hintTicks = config.SecondsToTicks(g.cfg.Timing.HintSeconds, g.tickRate)
}

func (g *Game) relayout() {
	if g.session == nil {
		return
	}
	dims := g.session.Dimensions()
	lay, ok := computeLayout(g.screenW, g.screenH, dims)
	g.layout = lay
	g.tooSmall = !ok
	g.cursorCol = core.Clamp(g.cursorCol, 0, max(dims.W-1, 0))
	g.cursorRow = core.Clamp(g.cursorRow, 0, max(dims.H-1, 0))
}

func (g *Game) onEvent(e tcore.Event) {
	switch ev := e.(type) {
	case tcore.EliminateEvent:
		g.eliminations++
		g.setFlash("Triple " + string(ev.Anchor.Glyph()) + "!")
	case tcore.TimeoutEvent:
		g.logger.Info("time is up", "level", ev.Level, "score", ev.Score)
	case tcore.VictoryEvent:
		g.logger.Info("level cleared", "level", ev.Level, "score", ev.Score, "moves", ev.Moves)
	}
}

func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashTicks = g.tickRate
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == phasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.clockTicks++
	if g.hintTicks > 0 {
		g.hintTicks--
	}
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	switch g.phase {
	case phaseVictory:
		g.overlayTicks--
		if g.overlayTicks <= 0 {
			g.startLevel(g.session.Level() + 1)
		}
	case phaseTimeout:
		g.overlayTicks--
		if g.overlayTicks <= 0 {
			g.startLevel(g.session.Level())
		}
	case phasePlaying:
		g.handleInput(in)
		if g.phase == phasePlaying && g.timeExpired() {
			g.timeout()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	dims := g.session.Dimensions()
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Wrap(g.cursorRow-1, dims.H)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Wrap(g.cursorRow+1, dims.H)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Wrap(g.cursorCol-1, dims.W)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Wrap(g.cursorCol+1, dims.W)
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.take(tcore.P(g.cursorCol, g.cursorRow))
	case in.Has(core.ActionUndo):
		g.undo()
	case in.Has(core.ActionShuffle):
		g.shuffle()
	}

	for _, c := range in.Clicks {
		if g.phase != phasePlaying {
			return
		}
		g.click(c)
	}
}

func (g *Game) click(c core.Click) {
	switch {
	case g.layout.undoBtn.Contains(c.X, c.Y):
		g.undo()
	case g.layout.shuffleBtn.Contains(c.X, c.Y):
		g.shuffle()
	default:
		col, row, ok := g.layout.grid.Hit(c.X, c.Y)
		if !ok {
			return
		}
		g.cursorCol, g.cursorRow = col, row
		g.take(tcore.P(col, row))
	}
}

func (g *Game) take(p tcore.Position) {
	res, err := g.session.MoveTop(p)
	if err != nil {
		if errors.Is(err, tcore.ErrEmptyStack) {
			g.setFlash("That stack is empty")
		}
		return
	}

	switch res.Status {
	case tcore.StatusWon:
		g.record(OutcomeWon)
		g.banked += g.session.Score()
		g.phase = phaseVictory
		g.overlayTicks = config.SecondsToTicks(g.cfg.Timing.VictoryOverlaySeconds, g.tickRate)
		if g.overlayTicks == 0 {
			g.startLevel(g.session.Level() + 1)
		}
	case tcore.StatusStuck:
		g.record(OutcomeStuck)
		g.phase = phaseStuck
	}
}

func (g *Game) undoUnlocked() bool {
	return g.session.Level() >= g.cfg.Rules.UndoUnlockLevel
}

func (g *Game) shuffleUnlocked() bool {
	return g.session.Level() >= g.cfg.Rules.ShuffleUnlockLevel
}

func (g *Game) undo() {
	if !g.undoUnlocked() {
		g.setFlash("Undo unlocks at level " + strconv.Itoa(g.cfg.Rules.UndoUnlockLevel))
		return
	}
	if err := g.session.Undo(); errors.Is(err, tcore.ErrNothingToUndo) {
		g.setFlash("Nothing to undo")
	}
}

func (g *Game) shuffle() {
	if !g.shuffleUnlocked() {
		g.setFlash("Shuffle unlocks at level " + strconv.Itoa(g.cfg.Rules.ShuffleUnlockLevel))
		return
	}
	if err := g.session.Shuffle(); err == nil {
		g.setFlash("Shuffled")
	}
}

// limit returns the time allowed for the current level, 0 when untimed.
func (g *Game) limit() time.Duration {
	return g.diff.LevelLimit(g.cfg.Timing.LevelSeconds, g.session.Level())
}

// remaining returns the time left on the level clock. Undo rewinds the
// clock origin, so remaining time can grow again.
func (g *Game) remaining() time.Duration {
	limit := g.limit()
	if limit <= 0 {
		return 0
	}
	left := limit - g.now().Sub(g.session.StartedAt())
	if left < 0 {
		return 0
	}
	return left
}

func (g *Game) timeExpired() bool {
	return g.limit() > 0 && g.remaining() <= 0
}

func (g *Game) timeout() {
	g.session.Timeout()
	g.record(OutcomeTimeout)
	g.phase = phaseTimeout
	g.overlayTicks = config.SecondsToTicks(g.cfg.Timing.TimeoutOverlaySeconds, g.tickRate)
	if g.overlayTicks == 0 {
		g.startLevel(g.session.Level())
	}
}

// Abandon records the level in progress as quit. The platform calls it
// when the player leaves mid-level.
func (g *Game) Abandon() {
	if g.session == nil || g.abandoned || g.phase != phasePlaying || g.session.Level() == 0 {
		return
	}
	g.record(OutcomeQuit)
	g.abandoned = true
}

func (g *Game) record(outcome string) {
	r := LevelResult{
		Level:    g.session.Level(),
		Outcome:  outcome,
		Score:    g.session.Score(),
		Moves:    g.session.Moves(),
		Duration: g.ticksToDuration(g.clockTicks - g.levelBegan),
	}
	g.logger.Debug("level finished", "level", r.Level, "outcome", r.Outcome, "score", r.Score, "moves", r.Moves)
	if g.settings.Recorder != nil {
		g.settings.Recorder.RecordLevel(r)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	score := g.banked
	if g.phase != phaseVictory {
		score += g.session.Score()
	}
	return core.GameState{
		Score:    score,
		Level:    g.session.Level(),
		GameOver: g.phase == phaseStuck,
		Paused:   g.paused || g.tooSmall,
	}
}
