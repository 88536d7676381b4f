package main

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/adventure-engine/pkg/session"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const PlaceHolderText = "Type a command... (try: look, go east, take torch)"

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	gameSession  *session.State
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool

	// Map selection state
	showMapModal bool
	maps         []world.MapSummary
	selectedMap  int
	loadingMaps  bool

	// Quit confirmation state
	showQuitModal bool

	// Transient status line (e.g. clipboard copy confirmation)
	statusNote string
}

type commandResultMsg struct {
	resp *CommandResponse
	err  error
}

type advanceResultMsg struct {
	resp *CommandResponse
	err  error
}

type mapsLoadedMsg struct {
	maps []world.MapSummary
	err  error
}

type sessionCreatedMsg struct {
	gameSession *session.State
	err         error
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")). // gold
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

var titleCaser = cases.Title(language.English)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:       cfg,
		client:       client,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
		ready:        false,
		showMapModal: true,
		loadingMaps:  true,
		selectedMap:  0,
	}
}

// writeChatContent rebuilds the chat viewport from the session transcript
// for the current viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6
	if chatWidth < 20 {
		chatWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("ADVENTURE ENGINE") + "\n\n")
	content.WriteString("Type a command and press Enter. Try: go east, take torch, inventory, look.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", chatWidth)) + "\n\n")

	if m.gameSession != nil {
		for _, entry := range m.gameSession.Transcript {
			switch entry.Role {
			case session.RolePlayer:
				content.WriteString(userStyle.Render("> "+entry.Content) + "\n\n")
			case session.RoleNarrator:
				content.WriteString(narratorStyle.Render(wordwrap.String(entry.Content, chatWidth)) + "\n\n")
			}
		}

		if m.gameSession.GameOver {
			content.WriteString(separatorStyle.Render(strings.Repeat("─", chatWidth)) + "\n\n")
			if m.gameSession.Won {
				content.WriteString(winStyle.Render("*** YOU HAVE WON ***") + "\n\n")
				content.WriteString("Press Ctrl+N to continue to the next map, or Esc to quit.\n")
			} else {
				content.WriteString(errorStyle.Render("*** GAME OVER ***") + "\n\n")
				content.WriteString("Press Esc to quit.\n")
			}
		}
	}

	if m.loading {
		content.WriteString(loadingStyle.Render("...") + "\n")
	}
	if m.err != nil {
		content.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

// writeMetadata builds the right-hand session panel.
func (m *ConsoleUI) writeMetadata() string {
	gs := m.gameSession
	if gs == nil {
		return ""
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("SESSION") + "\n\n")

	content.WriteString("Session ID:\n")
	content.WriteString(gs.ID.String()[:8] + "...\n\n")

	content.WriteString("Map:\n")
	content.WriteString(gs.MapID + "\n\n")

	content.WriteString("Room:\n")
	content.WriteString(gs.RoomID + "\n\n")

	content.WriteString(fmt.Sprintf("Score: %d / %d\n\n", gs.Score, gs.MaxScore))

	content.WriteString("Inventory:\n")
	if len(gs.Inventory) == 0 {
		content.WriteString("(empty)\n")
	} else {
		for _, id := range gs.Inventory {
			content.WriteString("• " + id + "\n")
		}
	}
	content.WriteString("\n")

	if len(gs.Equipped) > 0 {
		content.WriteString("Equipped:\n")
		slots := make([]string, 0, len(gs.Equipped))
		for slot := range gs.Equipped {
			slots = append(slots, string(slot))
		}
		sort.Strings(slots)
		for _, slot := range slots {
			content.WriteString(fmt.Sprintf("• %s: %s\n", titleCaser.String(slot), gs.Equipped[world.Slot(slot)]))
		}
		content.WriteString("\n")
	}

	if m.statusNote != "" {
		content.WriteString(loadingStyle.Render(m.statusNote) + "\n\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• Ctrl+G: Copy session ID\n")
	content.WriteString("• Esc: Quit\n")

	return content.String()
}

func (m ConsoleUI) Init() tea.Cmd {
	if m.showMapModal {
		return m.loadMaps()
	}
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showMapModal {
		return m.updateMapModal(msg)
	}
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil

		case tea.KeyCtrlG:
			if m.gameSession != nil {
				if err := clipboard.WriteAll(m.gameSession.ID.String()); err != nil {
					m.statusNote = "Clipboard unavailable"
				} else {
					m.statusNote = "Session ID copied"
				}
				m.metaViewport.SetContent(m.writeMetadata())
			}
			return m, nil

		case tea.KeyCtrlN:
			if m.gameSession != nil && m.gameSession.GameOver && m.gameSession.Won && !m.loading {
				m.loading = true
				m.writeChatContent()
				return m, m.advance()
			}
			return m, nil

		case tea.KeyEnter:
			// Input stays disabled while a command is in flight and once
			// the game is over.
			if m.loading || (m.gameSession != nil && m.gameSession.GameOver) {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			m.textarea.Reset()
			m.loading = true
			m.err = nil
			m.writeChatContent()
			return m, m.send(input)
		}

	case commandResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.gameSession = msg.resp.Session
		}
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())
		return m, nil

	case advanceResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.gameSession = msg.resp.Session
			m.textarea.Focus()
		}
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())
		return m, textarea.Blink
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m *ConsoleUI) resize() {
	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	m.chatViewport.Width = chatWidth - 2
	m.chatViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(chatWidth - 4)
}

func (m ConsoleUI) send(input string) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendCommand(m.client, m.config.APIBaseURL, m.gameSession.ID, input)
		return commandResultMsg{resp, err}
	}
}

func (m ConsoleUI) advance() tea.Cmd {
	return func() tea.Msg {
		resp, err := advanceSession(m.client, m.config.APIBaseURL, m.gameSession.ID)
		return advanceResultMsg{resp, err}
	}
}

func (m ConsoleUI) loadMaps() tea.Cmd {
	return func() tea.Msg {
		maps, err := listMaps(m.client, m.config.APIBaseURL)
		return mapsLoadedMsg{maps, err}
	}
}

func (m ConsoleUI) createSessionForMap(mapID string) tea.Cmd {
	return func() tea.Msg {
		gs, err := createSession(m.client, m.config.APIBaseURL, mapID)
		return sessionCreatedMsg{gs, err}
	}
}

func (m ConsoleUI) updateMapModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case mapsLoadedMsg:
		m.loadingMaps = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.maps = msg.maps
		}

	case sessionCreatedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.gameSession = msg.gameSession
			m.showMapModal = false
			if m.width > 0 && m.height > 0 {
				m.resize()
			}
			m.writeChatContent()
			m.metaViewport.SetContent(m.writeMetadata())
			m.textarea.Focus()
			m.ready = true
		}
		return m, textarea.Blink

	case tea.KeyMsg:
		if m.loadingMaps || m.err != nil {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyUp:
			if m.selectedMap > 0 {
				m.selectedMap--
			}
		case tea.KeyDown:
			if m.selectedMap < len(m.maps)-1 {
				m.selectedMap++
			}
		case tea.KeyEnter:
			if len(m.maps) > 0 {
				m.loading = true
				return m, m.createSessionForMap(m.maps[m.selectedMap].ID)
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if !m.showMapModal {
					m.textarea.Focus()
					return m, textarea.Blink
				}
				return m, nil
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit your adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderMapModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	switch {
	case m.loadingMaps:
		content.WriteString(modalTitleStyle.Render("Loading Maps..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Please wait while we fetch available maps..."))
	case m.err != nil:
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to load maps: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	case m.loading:
		content.WriteString(modalTitleStyle.Render("Creating Game..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Setting up your adventure..."))
	default:
		content.WriteString(modalTitleStyle.Render("Select a Map"))
		content.WriteString("\n\n")

		for i, mp := range m.maps {
			if i == m.selectedMap {
				content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", mp.Name)))
			} else {
				content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", mp.Name)))
			}
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showMapModal {
		return m.renderMapModal()
	}
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", chatWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}
