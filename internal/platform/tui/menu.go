package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Game IDs offered by the menu.
const (
	campaignGameID = "breakout"
	endlessGameID  = "breakout_endless"
)

// Selection holds what the player picked from the menu.
type Selection struct {
	GameID     string
	StartLevel int // 0-based index of the first level
}

// menuEntry is one line of the main menu.
type menuEntry struct {
	title       string
	description string
}

var mainEntries = []menuEntry{
	{"Campaign", "Play every level in order"},
	{"Endless", "Levels repeat and the ball speeds up"},
	{"Select Level...", "Start the campaign on any level"},
	{"High Scores", "Scores and recorded runs"},
	{"Quit", ""},
}

// Main menu rows
const (
	entryCampaign = iota
	entryEndless
	entryLevels
	entryScores
	entryQuit
)

// MenuModel lets users choose the game mode and starting level.
type MenuModel struct {
	levels         []string // Level names in play order
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	selection      *Selection
	openScoreboard bool
	quitting       bool
}

// NewMenuModel creates a new menu model over the given level names.
func NewMenuModel(cfg core.RuntimeConfig, levels []string) MenuModel {
	return MenuModel{
		levels: levels,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(mainEntries)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case entryCampaign:
			m.selection = &Selection{GameID: campaignGameID}
			return m, tea.Quit
		case entryEndless:
			m.selection = &Selection{GameID: endlessGameID}
			return m, tea.Quit
		case entryLevels:
			m.inLevelSelect = true
			m.levelCursor = 0
		case entryScores:
			m.openScoreboard = true
			return m, tea.Quit
		case entryQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selection = &Selection{GameID: campaignGameID, StartLevel: m.levelCursor}
			return m, tea.Quit
		}
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMain()
}

func (m MenuModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Render(centerText("B R I C K S", m.width)))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(centerText("Select game mode", m.width)))
	b.WriteString("\n\n")

	for i, e := range mainEntries {
		b.WriteString(m.item(e.title, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if desc := mainEntries[m.cursor].description; desc != "" {
		b.WriteString(theme.Description.Render(centerText(desc, m.width)))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Help.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width)))

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Render(centerText("SELECT LEVEL", m.width)))
	b.WriteString("\n\n")

	for i, name := range m.levels {
		b.WriteString(m.item(fmt.Sprintf("%2d. %s", i+1, name), i == m.levelCursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Help.Render(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// item renders one centered menu line.
func (m MenuModel) item(text string, active bool) string {
	if active {
		return theme.ItemActive.Render(centerText("> "+text, m.width))
	}
	return theme.ItemNormal.Render(centerText("  "+text, m.width))
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selection
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

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, levels []string) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, levels),
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

	result := MenuResult{
		Selection:       m.Selected(),
		Config:          m.Config(),
		WantsScoreboard: m.WantsScoreboard(),
	}
	result.Quit = result.Selection == nil && !result.WantsScoreboard
	return result, nil
}
