package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-triplets/internal/core"
	"github.com/vovakirdan/tui-triplets/internal/games/triplets"
	"github.com/vovakirdan/tui-triplets/internal/registry"
)

// bestPopupDuration is how long the best-level popup stays up.
const bestPopupDuration = 2500 * time.Millisecond

// BestLevelReader reports the highest level reached so far.
type BestLevelReader interface {
	BestLevel() int
}

type menuItem int

const (
	itemStart menuItem = iota
	itemBest
	itemScoreboard
	itemQuit
)

var menuItems = []menuItem{itemStart, itemBest, itemScoreboard, itemQuit}

type hideBestMsg struct{ id int }

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuPopupStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("220")).Padding(0, 2)
)

// MenuModel is the Bubble Tea model for the start screen.
type MenuModel struct {
	cursor         int
	startLevel     int
	bestLevel      int
	rules          []string
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	showBest       bool
	popupID        int
	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model. progress may be nil.
func NewMenuModel(progress BestLevelReader, cfg core.RuntimeConfig) MenuModel {
	best := 0
	if progress != nil {
		best = progress.BestLevel()
	}

	var rules []string
	if info, ok := registry.Info(triplets.GameID); ok {
		rules = info.Rules
	}

	return MenuModel{
		startLevel: max(best, 1),
		bestLevel:  best,
		rules:      rules,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// maxStartLevel is the highest level the player may start at.
func (m MenuModel) maxStartLevel() int {
	return m.bestLevel + 1
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case hideBestMsg:
		if msg.id == m.popupID {
			m.showBest = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, len(menuItems))

	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, len(menuItems))

	case MenuActionLeft:
		if menuItems[m.cursor] == itemStart {
			m.startLevel = core.Clamp(m.startLevel-1, 1, m.maxStartLevel())
		}

	case MenuActionRight:
		if menuItems[m.cursor] == itemStart {
			m.startLevel = core.Clamp(m.startLevel+1, 1, m.maxStartLevel())
		}

	case MenuActionSelect:
		switch menuItems[m.cursor] {
		case itemStart:
			m.started = true
			return m, tea.Quit
		case itemBest:
			m.showBest = true
			m.popupID++
			id := m.popupID
			return m, tea.Tick(bestPopupDuration, func(time.Time) tea.Msg { return hideBestMsg{id: id} })
		case itemScoreboard:
			m.openScoreboard = true
			return m, tea.Quit
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) itemLabel(it menuItem) string {
	switch it {
	case itemStart:
		return fmt.Sprintf("Start at level < %d >", m.startLevel)
	case itemBest:
		return "Best level"
	case itemScoreboard:
		return "Scoreboard"
	default:
		return "Quit"
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.started || m.openScoreboard {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T R I P L E T S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Match three. Clear the stacks."), m.width))
	b.WriteString("\n\n")

	for i, it := range menuItems {
		line := "  " + m.itemLabel(it)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + m.itemLabel(it))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.showBest {
		b.WriteString("\n")
		popup := fmt.Sprintf("Best level reached: %d", m.bestLevel)
		if m.bestLevel == 0 {
			popup = "No level played yet"
		}
		for _, l := range strings.Split(menuPopupStyle.Render(popup), "\n") {
			b.WriteString(centerText(l, m.width))
			b.WriteString("\n")
		}
	}

	if len(m.rules) > 0 {
		b.WriteString("\n")
		for _, r := range m.rules {
			b.WriteString(centerText(menuDimStyle.Render(r), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Level  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// StartLevel returns the level chosen on the start item.
func (m MenuModel) StartLevel() int {
	return m.startLevel
}

// Started returns true if the user chose to start a game.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// truncate shortens text to at most width cells.
func truncate(text string, width int) string {
	return runewidth.Truncate(text, width, "…")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	StartLevel      int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(progress BestLevelReader, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(progress, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Started():
		result.StartLevel = m.StartLevel()
	default:
		result.Quit = true
	}
	return result, nil
}
