package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/navtrail/internal/navigation"
	"github.com/vidyasagar/navtrail/internal/render"
	"github.com/vidyasagar/navtrail/internal/storage"
	"github.com/vidyasagar/navtrail/internal/theme"
	"github.com/vidyasagar/navtrail/internal/ui"
	"github.com/vidyasagar/navtrail/internal/workspace"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeCommand      // command bar active
	ModePath         // path panel focused
	ModeLeader       // leader key palette active
	ModeHelp         // help or marks page shown
	ModeMark         // waiting for a mark name to set
	ModeJump         // waiting for a mark name to jump to
)

var modeNames = map[Mode]string{
	ModeNormal:  ui.ModeNormal,
	ModeCommand: ui.ModeCommand,
	ModePath:    ui.ModePath,
	ModeLeader:  ui.ModeLeader,
	ModeHelp:    ui.ModeHelp,
	ModeMark:    ui.ModeMark,
	ModeJump:    ui.ModeJump,
}

const staleMessage = "location no longer exists; path cleared"

// Options holds what the model is wired to. Only Workspace is required.
type Options struct {
	Workspace *workspace.Workspace
	Watcher   *workspace.Watcher
	Marks     *storage.MarkStore
	Config    *storage.Config
	Logger    *slog.Logger

	// HidePathPanel starts with the path panel hidden for this run only.
	HidePathPanel bool
}

// Model is the top-level bubbletea model for navtrail.
type Model struct {
	// UI components
	tabBar      ui.TabBar
	statusBar   ui.StatusBar
	commandBar  ui.CommandBar
	leaderPanel ui.LeaderPanel
	helpView    ui.HelpView
	docView     ui.DocView
	splitPane   ui.SplitPane
	pathPanel   *ui.PathPanel

	// Core
	ws          *workspace.Workspace
	nav         *navigation.Controller
	highlighter *render.Highlighter
	marks       *storage.MarkStore
	config      *storage.Config
	watcher     *workspace.Watcher
	logger      *slog.Logger

	keys     KeyMap
	mode     Mode
	helpMD   string
	width    int
	height   int
	helpW    int
	helpH    int
	lastGKey bool // for "gg", "gt" and "gT" detection
	ready    bool
	shownDoc navigation.DocumentID
}

// fileEventMsg carries a change to an open file.
type fileEventMsg workspace.FileEvent

// watcherClosedMsg is sent once the watcher stops.
type watcherClosedMsg struct{}

// leaderTimeoutMsg is sent when the leader key palette times out.
type leaderTimeoutMsg struct{}

// New creates the model and attaches the navigation controller to the
// workspace. Documents already open seed the activation rank.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	keys := DefaultKeyMap()
	helpMD := helpMarkdown(keys)

	m := Model{
		tabBar:      ui.NewTabBar(),
		statusBar:   ui.NewStatusBar(),
		commandBar:  ui.NewCommandBar(),
		leaderPanel: ui.NewLeaderPanel(),
		helpView:    ui.NewHelpView(helpMD),
		docView:     ui.NewDocView(),
		splitPane:   ui.NewSplitPane(),
		pathPanel:   ui.NewPathPanel(),
		ws:          opts.Workspace,
		highlighter: render.NewHighlighter(theme.Current.ChromaStyle),
		marks:       opts.Marks,
		config:      opts.Config,
		watcher:     opts.Watcher,
		logger:      logger,
		keys:        keys,
		mode:        ModeNormal,
		helpMD:      helpMD,
	}

	m.nav = navigation.NewController(m.ws, nil, navigation.Options{Logger: logger})
	m.ws.SetListener(m.nav)
	if m.watcher != nil {
		m.ws.SetWatcher(m.watcher)
	}
	if active := m.ws.Active(); active != nil {
		m.nav.DocumentActivated(active.ID)
	}

	if m.config != nil {
		m.splitPane.ShowSide = m.config.ShowPathPanel
	}
	if opts.HidePathPanel {
		m.splitPane.ShowSide = false
	}
	m.attachPresenter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForFileEvent(m.watcher)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.sync()
		return m, nil

	case fileEventMsg:
		m.handleFileEvent(workspace.FileEvent(msg))
		m.sync()
		return m, waitForFileEvent(m.watcher)

	case watcherClosedMsg:
		m.logger.Debug("file watcher closed")
		return m, nil

	case leaderTimeoutMsg:
		if m.mode == ModeLeader {
			m.leaderPanel.Hide()
			m.setMode(ModeNormal)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.mode == ModeHelp {
			hv, cmd := m.helpView.Update(msg)
			m.helpView = *hv
			m.statusBar.SetScrollInfo(m.helpView.ScrollInfo())
			return m, cmd
		}
	}

	if m.commandBar.IsActive() {
		cb, cmd := m.commandBar.Update(msg)
		m.commandBar = *cb
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Loading navtrail..."
	}

	// Layout:
	// [tab bar]
	// [document | path panel]
	// [status bar]
	// [command bar] (if active)

	var sections []string
	sections = append(sections, m.tabBar.View())

	switch {
	case m.mode == ModeHelp:
		sections = append(sections, m.helpView.View())
	case m.mode == ModePath && !m.splitPane.IsSplit():
		sections = append(sections, m.pathPanel.View())
	default:
		sections = append(sections, m.splitPane.Render(m.docView.View(), m.pathPanel.View()))
	}

	sections = append(sections, m.statusBar.View())
	if m.commandBar.IsActive() {
		sections = append(sections, m.commandBar.View())
	}

	result := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Overlay the leader palette if active.
	if m.leaderPanel.IsVisible() {
		result = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.leaderPanel.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(theme.Current.Background),
		)
	}

	return result
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.tabBar.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.commandBar.SetWidth(m.width)

	tabBarHeight := 1
	statusBarHeight := 1
	commandBarHeight := 0
	if m.commandBar.IsActive() {
		commandBarHeight = 1
	}
	mainHeight := max(m.height-tabBarHeight-statusBarHeight-commandBarHeight, 1)

	m.splitPane.SetSize(m.width, mainHeight)
	m.docView.SetSize(m.splitPane.MainDimensions())
	if m.splitPane.IsSplit() {
		m.pathPanel.SetSize(m.splitPane.SideDimensions())
	} else {
		m.pathPanel.SetSize(m.width, mainHeight)
	}

	// The help page is re-rendered on resize only.
	if m.helpW != m.width || m.helpH != mainHeight {
		m.helpW, m.helpH = m.width, mainHeight
		m.helpView.SetSize(m.width, mainHeight)
	}
}

// sync pushes workspace and path state into the views.
func (m *Model) sync() {
	docs := m.ws.Documents()
	tabs := make([]ui.Tab, len(docs))
	for i, d := range docs {
		tabs[i] = ui.Tab{Title: d.Name, Path: d.Path}
	}
	m.tabBar.SetTabs(tabs, m.ws.ActiveIndex())

	doc := m.ws.Active()
	switch {
	case doc == nil:
		m.docView.SetDocument(nil, 0)
		m.shownDoc = ""
		m.statusBar.SetLocation("")
	case doc.ID != m.shownDoc:
		m.docView.SetDocument(m.highlighter.Lines(doc.Path, doc.Lines), doc.Line)
		m.shownDoc = doc.ID
	default:
		m.docView.SetLines(m.highlighter.Lines(doc.Path, doc.Lines))
		m.docView.SetCursor(doc.Line)
	}
	if doc != nil {
		m.statusBar.SetLocation(doc.Location().Short())
	}

	if m.mode == ModeHelp {
		m.statusBar.SetScrollInfo(m.helpView.ScrollInfo())
	} else {
		m.statusBar.SetScrollInfo(m.docView.ScrollInfo())
	}
	m.statusBar.SetPath(m.nav.Cursor(), m.nav.Len())
}

func (m *Model) setMode(mode Mode) {
	m.mode = mode
	m.statusBar.SetMode(modeNames[mode])
}

// attachPresenter connects the path panel to the controller only while
// something can show it.
func (m *Model) attachPresenter() {
	if m.splitPane.ShowSide || m.mode == ModePath {
		m.nav.SetPresenter(m.pathPanel)
		return
	}
	m.nav.SetPresenter(nil)
}

// report turns a path movement outcome into a status message.
func (m *Model) report(outcome navigation.Outcome, boundary string) {
	switch outcome {
	case navigation.Moved:
		m.statusBar.ClearMessage()
	case navigation.Stale:
		m.statusBar.SetError(staleMessage)
	default:
		m.statusBar.SetMessage(boundary)
	}
}

// handleKeyMsg processes key events based on current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow Ctrl+C to quit.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeCommand:
		return m.handleCommandMode(msg)
	case ModePath:
		return m.handlePathMode(msg)
	case ModeLeader:
		return m.handleLeaderMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeMark, ModeJump:
		return m.handleMarkMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode processes keys while reading a document.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.lastGKey {
		m.lastGKey = false
		switch msg.String() {
		case "g":
			m.ws.GotoLine(0)
			m.sync()
			return m, nil
		case "t":
			m.ws.Cycle(1)
			m.sync()
			return m, nil
		case "T":
			m.ws.Cycle(-1)
			m.sync()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Leader):
		m.leaderPanel.Show()
		m.setMode(ModeLeader)
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return leaderTimeoutMsg{}
		})

	case key.Matches(msg, m.keys.GotoTop):
		m.lastGKey = true
		return m, nil

	case key.Matches(msg, m.keys.GotoBottom):
		if doc := m.ws.Active(); doc != nil {
			m.ws.GotoLine(doc.LineCount() - 1)
		}

	case key.Matches(msg, m.keys.LineDown):
		m.ws.MoveCursor(1)

	case key.Matches(msg, m.keys.LineUp):
		m.ws.MoveCursor(-1)

	case key.Matches(msg, m.keys.HalfPageDown):
		m.ws.MoveCursor(max(m.docView.Height()/2, 1))

	case key.Matches(msg, m.keys.HalfPageUp):
		m.ws.MoveCursor(-max(m.docView.Height()/2, 1))

	case key.Matches(msg, m.keys.Back):
		m.report(m.nav.Previous(), "Already at the start of the path")

	case key.Matches(msg, m.keys.Forward):
		m.report(m.nav.Next(), "Already at the end of the path")

	case key.Matches(msg, m.keys.PathPanel):
		m.togglePathPanel()

	case key.Matches(msg, m.keys.PathFocus):
		m.focusPathPanel()

	case key.Matches(msg, m.keys.OpenFile):
		return m.openCommandBar(ui.CommandOpen)

	case key.Matches(msg, m.keys.CloseDoc):
		m.closeActive()

	case key.Matches(msg, m.keys.NextDoc):
		m.ws.Cycle(1)

	case key.Matches(msg, m.keys.PrevDoc):
		m.ws.Cycle(-1)

	case key.Matches(msg, m.keys.Reload):
		m.reloadActive()

	case key.Matches(msg, m.keys.SetMark):
		if m.ws.Active() == nil {
			m.statusBar.SetError("No document to mark")
			return m, nil
		}
		m.setMode(ModeMark)
		return m, nil

	case key.Matches(msg, m.keys.JumpMark):
		m.setMode(ModeJump)
		return m, nil

	case key.Matches(msg, m.keys.CommandMode):
		return m.openCommandBar(ui.CommandEx)

	case key.Matches(msg, m.keys.Help):
		m.showPage(m.helpMD)
		return m, nil

	default:
		return m, nil
	}

	m.sync()
	return m, nil
}

// handlePathMode processes keys while the path panel is focused.
func (m Model) handlePathMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.pathPanel.ResetGKey()
		m.pathPanel.CursorDown()

	case "k", "up":
		m.pathPanel.ResetGKey()
		m.pathPanel.CursorUp()

	case "g":
		m.pathPanel.HandleGKey()

	case "G":
		m.pathPanel.ResetGKey()
		m.pathPanel.GotoBottom()

	case "enter":
		m.pathPanel.ResetGKey()
		if i := m.pathPanel.SelectedIndex(); i >= 0 {
			m.report(m.nav.Select(i), "Already there")
		}
		m.leavePathMode()
		m.sync()

	case "H", "[":
		m.report(m.nav.Previous(), "Already at the start of the path")
		m.sync()

	case "L", "]":
		m.report(m.nav.Next(), "Already at the end of the path")
		m.sync()

	case "c":
		m.nav.Clear()
		m.statusBar.SetMessage("Path cleared")
		m.sync()

	case "esc", "ctrl+h", "P", "q":
		m.pathPanel.ResetGKey()
		m.leavePathMode()
		m.sync()

	default:
		m.pathPanel.ResetGKey()
	}
	return m, nil
}

// handleLeaderMode processes keys when the leader palette is active.
// Each key maps to a specific action, then returns to normal mode.
func (m Model) handleLeaderMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.leaderPanel.Hide()
	m.setMode(ModeNormal)

	switch msg.String() {
	// Path
	case "b":
		m.report(m.nav.Previous(), "Already at the start of the path")
	case "f":
		m.report(m.nav.Next(), "Already at the end of the path")
	case "p":
		m.togglePathPanel()
	case "c":
		m.nav.Clear()
		m.statusBar.SetMessage("Path cleared")

	// Documents
	case "o":
		return m.openCommandBar(ui.CommandOpen)
	case "w":
		m.closeActive()
	case "n":
		m.ws.Cycle(1)
	case "N":
		m.ws.Cycle(-1)
	case "r":
		m.reloadActive()

	// Marks
	case "m":
		return m.executeCommand("marks")
	case "'":
		m.setMode(ModeJump)
		return m, nil

	// Views
	case "T":
		m.cycleTheme()
	case ":":
		return m.openCommandBar(ui.CommandEx)
	case "?":
		m.showPage(m.helpMD)
		return m, nil
	case "q":
		return m, tea.Quit
	default:
		return m, nil
	}

	m.sync()
	return m, nil
}

// handleHelpMode scrolls the help or marks page.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc", "q", "?":
		m.helpView.Hide()
		m.setMode(ModeNormal)
		m.sync()
		return m, nil
	case "g":
		m.helpView.GotoTop()
	case "G":
		m.helpView.GotoBottom()
	default:
		var hv *ui.HelpView
		hv, cmd = m.helpView.Update(msg)
		m.helpView = *hv
	}
	m.statusBar.SetScrollInfo(m.helpView.ScrollInfo())
	return m, cmd
}

// handleMarkMode reads the mark name typed after m or '.
func (m Model) handleMarkMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.mode
	m.setMode(ModeNormal)

	name := msg.String()
	if name == "esc" {
		return m, nil
	}
	if mode == ModeMark {
		m.setMark(name)
	} else {
		m.jumpToMark(name)
	}
	m.sync()
	return m, nil
}

// handleCommandMode processes keys while the command bar is open.
func (m Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commandBar.Close()
		m.setMode(ModeNormal)
		m.layout()
		m.sync()
		return m, nil

	case tea.KeyEnter:
		result := m.commandBar.Submit()
		m.setMode(ModeNormal)
		m.layout()
		return m.handleCommandResult(result)
	}

	cb, cmd := m.commandBar.Update(msg)
	m.commandBar = *cb
	return m, cmd
}

func (m Model) openCommandBar(ct ui.CommandType) (tea.Model, tea.Cmd) {
	m.setMode(ModeCommand)
	cmd := m.commandBar.Open(ct)
	m.layout()
	m.sync()
	return m, cmd
}

// handleCommandResult processes a submitted command.
func (m Model) handleCommandResult(result ui.CommandResult) (tea.Model, tea.Cmd) {
	switch result.Type {
	case ui.CommandEx:
		return m.executeCommand(result.Value)
	case ui.CommandOpen:
		if result.Value != "" {
			m.openTarget(result.Value)
		}
	}
	m.sync()
	return m, nil
}

// executeCommand handles :commands.
func (m Model) executeCommand(cmd string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return m, nil
	}
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cmd), parts[0]))

	if n, err := strconv.Atoi(parts[0]); err == nil {
		if m.ws.Active() == nil {
			m.statusBar.SetError("No document open")
		} else {
			m.ws.GotoLine(n - 1)
		}
		m.sync()
		return m, nil
	}

	switch parts[0] {
	case "q", "quit":
		return m, tea.Quit

	case "e", "edit", "o", "open":
		if arg == "" {
			m.statusBar.SetMessage("Usage: :e <file>[:line]")
			break
		}
		m.openTarget(arg)

	case "close":
		m.closeActive()

	case "prev", "back":
		m.report(m.nav.Previous(), "Already at the start of the path")

	case "next", "forward":
		m.report(m.nav.Next(), "Already at the end of the path")

	case "path":
		m.togglePathPanel()

	case "clear":
		m.nav.Clear()
		m.statusBar.SetMessage("Path cleared")

	case "reload":
		m.reloadActive()

	case "marks":
		if m.marks == nil {
			m.statusBar.SetError("Marks are unavailable")
			break
		}
		marks, err := m.marks.List()
		if err != nil {
			m.logger.Error("listing marks", "error", err)
			m.statusBar.SetError(err.Error())
			break
		}
		m.showPage("# Marks\n\n```\n" + storage.RenderMarks(marks) + "\n```\n")
		return m, nil

	case "mark":
		if m.ws.Active() == nil {
			m.statusBar.SetError("No document to mark")
			break
		}
		m.setMark(arg)

	case "delmark":
		m.deleteMark(arg)

	case "theme":
		if arg == "" {
			m.statusBar.SetMessage(fmt.Sprintf("Current: %s | Available: %s", theme.Current.Name, strings.Join(theme.List(), ", ")))
			break
		}
		m.setTheme(arg)

	case "help", "h":
		m.showPage(m.helpMD)
		return m, nil

	default:
		m.statusBar.SetError(fmt.Sprintf("Unknown command: %s", parts[0]))
	}

	m.sync()
	return m, nil
}

// openTarget opens "file" or "file:line".
func (m *Model) openTarget(s string) {
	t := workspace.ParseTarget(s)
	m.openAt(t.Path, t.Line)
}

func (m *Model) openAt(path string, line int) {
	doc, err := m.ws.Open(path, line)
	if err != nil {
		m.logger.Warn("opening file", "path", path, "error", err)
		if errors.Is(err, workspace.ErrNotFound) {
			m.statusBar.SetError(fmt.Sprintf("No such file: %s", path))
		} else {
			m.statusBar.SetError(err.Error())
		}
		return
	}
	m.statusBar.SetMessage(fmt.Sprintf("%s  %d lines", doc.Name, doc.LineCount()))
}

func (m *Model) closeActive() {
	doc := m.ws.Active()
	if doc == nil {
		return
	}
	if err := m.ws.Close(doc.ID); err != nil {
		m.statusBar.SetError(err.Error())
		return
	}
	m.highlighter.Invalidate(doc.Path)
	m.statusBar.SetMessage(fmt.Sprintf("Closed %s", doc.Name))
}

func (m *Model) reloadActive() {
	doc := m.ws.Active()
	if doc == nil {
		return
	}
	if err := m.ws.Reload(doc.Path); err != nil {
		m.logger.Warn("reloading file", "path", doc.Path, "error", err)
		m.statusBar.SetError(err.Error())
		return
	}
	m.highlighter.Invalidate(doc.Path)
	m.statusBar.SetMessage(fmt.Sprintf("Reloaded %s", doc.Name))
}

func (m *Model) setMark(name string) {
	doc := m.ws.Active()
	if doc == nil {
		return
	}
	if m.marks == nil {
		m.statusBar.SetError("Marks are unavailable")
		return
	}
	if err := m.marks.Set(name, doc.Path, doc.Line); err != nil {
		m.statusBar.SetError(err.Error())
		return
	}
	m.statusBar.SetMessage(fmt.Sprintf("Mark %s set at %s", name, doc.Location().Short()))
}

// jumpToMark opens the marked location. The jump is a navigation.
func (m *Model) jumpToMark(name string) {
	if m.marks == nil {
		m.statusBar.SetError("Marks are unavailable")
		return
	}
	mark, err := m.marks.Get(name)
	if err != nil {
		m.statusBar.SetError(err.Error())
		return
	}
	if doc := m.ws.Active(); doc != nil && doc.Path == mark.Path {
		m.ws.GotoLine(mark.Line)
		return
	}
	m.openAt(mark.Path, mark.Line)
}

func (m *Model) deleteMark(name string) {
	if m.marks == nil {
		m.statusBar.SetError("Marks are unavailable")
		return
	}
	if err := m.marks.Remove(name); err != nil {
		m.statusBar.SetError(err.Error())
		return
	}
	m.statusBar.SetMessage(fmt.Sprintf("Mark %s deleted", name))
}

// togglePathPanel shows or hides the path panel and remembers the choice.
func (m *Model) togglePathPanel() {
	m.splitPane.Toggle()
	m.attachPresenter()
	m.layout()
	if m.config != nil {
		m.config.ShowPathPanel = m.splitPane.ShowSide
		m.saveConfig()
	}
}

func (m *Model) focusPathPanel() {
	m.setMode(ModePath)
	m.pathPanel.Focus()
	m.attachPresenter()
}

func (m *Model) leavePathMode() {
	m.pathPanel.Blur()
	m.setMode(ModeNormal)
	m.attachPresenter()
}

// showPage opens the help view with the given markdown.
func (m *Model) showPage(markdown string) {
	m.helpView.SetMarkdown(markdown)
	m.helpView.Show()
	m.setMode(ModeHelp)
	m.statusBar.SetScrollInfo(m.helpView.ScrollInfo())
}

// cycleTheme switches to the next available theme.
func (m *Model) cycleTheme() {
	themes := theme.List()
	next := themes[0]
	for i, t := range themes {
		if t == theme.Current.Name {
			next = themes[(i+1)%len(themes)]
			break
		}
	}
	m.setTheme(next)
}

func (m *Model) setTheme(name string) {
	if !theme.Set(name) {
		m.statusBar.SetError(fmt.Sprintf("Unknown theme: %s (available: %s)", name, strings.Join(theme.List(), ", ")))
		return
	}
	m.highlighter.SetStyle(theme.Current.ChromaStyle)
	m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", name))
	if m.config != nil {
		m.config.Theme = name
		m.saveConfig()
	}
}

func (m *Model) saveConfig() {
	if err := m.config.Save(); err != nil {
		m.logger.Warn("saving config", "error", err)
	}
}

// handleFileEvent reacts to an open file changing on disk. Removed files
// stay open; a path entry pointing at one goes stale when walked to.
func (m *Model) handleFileEvent(ev workspace.FileEvent) {
	doc := m.ws.Find(ev.Path)
	if doc == nil {
		return
	}
	switch ev.Kind {
	case workspace.FileChanged:
		if err := m.ws.Reload(ev.Path); err != nil {
			m.logger.Warn("reloading changed file", "path", ev.Path, "error", err)
			return
		}
		m.highlighter.Invalidate(ev.Path)
		m.statusBar.SetMessage(fmt.Sprintf("%s changed on disk, reloaded", doc.Name))
	case workspace.FileRemoved:
		m.statusBar.SetError(fmt.Sprintf("%s was removed from disk", doc.Name))
	}
}

func waitForFileEvent(w *workspace.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return watcherClosedMsg{}
		}
		return fileEventMsg(ev)
	}
}
