package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"svcmenu/cmd"
	"svcmenu/internal/catalog"
	"svcmenu/internal/changes"
	"svcmenu/internal/config"
	"svcmenu/internal/download"
	"svcmenu/internal/editor"
	"svcmenu/internal/kconfig"
	"svcmenu/internal/models"
	"svcmenu/internal/ui"
	"svcmenu/internal/ui/components"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
	debugMode = false // Enable with --debug flag
)

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Screen represents different screens in the app
type Screen int

const (
	ScreenMain Screen = iota
	ScreenLoading
	ScreenPreview         // Entry source viewer
	ScreenChanges         // Pending changes review
	ScreenDownload        // Download new services progress/results
	ScreenConfirmDefaults // Confirmation before restoring defaults
	ScreenSnapshots       // Snapshot restore dialog
	ScreenHelp
)

// Model is the main application model
type Model struct {
	config   *config.Config
	store    *kconfig.FileStore
	services *models.Model
	loaded   catalog.LoadResult

	// UI Components
	list           *components.ServiceList
	sourceView     *components.SourceView
	changesView    *components.ChangesView
	noticeBar      *components.NoticeBar
	confirmDialog  *components.ConfirmDialog
	snapshotDialog *components.SnapshotDialog
	spinner        spinner.Model
	helpVP         viewport.Model
	keys           ui.KeyMap
	textInput      textinput.Model

	// State
	screen      Screen
	status      string
	width       int
	height      int
	dirty       bool // Toggles not yet applied
	applying    bool
	downloading bool

	// Download results shown on the download screen
	downloadResults []download.Result

	// Search state
	searchMode  bool
	searchQuery string

	err error
}

// Messages
type servicesLoadedMsg struct {
	loaded catalog.LoadResult
	count  int
}

type applyDoneMsg struct {
	result catalog.ApplyResult
	err    error
}

type pendingDiffsMsg struct {
	diffs []*changes.FileDiff
	err   error
}

type downloadDoneMsg struct {
	results []download.Result
	err     error
}

type snapshotRestoredMsg struct {
	id  string
	err error
}

type editorFinishedMsg struct {
	path   string
	before time.Time // file mtime before the editor ran
	err    error
}

func New() *Model {
	cfg, _ := config.Load()
	store := cfg.Store()
	services := models.NewModel()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.IconStyle

	ti := textinput.New()
	ti.Placeholder = "Search entries..."
	ti.CharLimit = 64
	ti.Width = 40

	m := &Model{
		config:         cfg,
		store:          store,
		services:       services,
		list:           components.NewServiceList(models.NewProjection(services)),
		sourceView:     components.NewSourceView(),
		changesView:    components.NewChangesView(),
		noticeBar:      components.NewNoticeBar(),
		confirmDialog:  components.NewConfirmDialog(),
		snapshotDialog: components.NewSnapshotDialog(),
		spinner:        s,
		keys:           ui.DefaultKeyMap(),
		textInput:      ti,
		screen:         ScreenLoading,
		status:         "Loading...",
		width:          80,
		height:         24,
	}

	m.noticeBar.Hide()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadServices)
}

// loadServices builds the entry list from the registry and the persisted
// selections.
func (m *Model) loadServices() tea.Msg {
	start := time.Now()
	debugLog("Loading context menu entries...")

	loaded := catalog.Load(m.config.Registry(), m.store, m.services)

	debugLog("Loaded %d entries in %v", m.services.Len(), time.Since(start))
	return servicesLoadedMsg{loaded: loaded, count: m.services.Len()}
}

// reloadServices rebuilds the entry list from scratch, dropping toggles that
// were not applied.
func (m *Model) reloadServices() tea.Msg {
	start := time.Now()
	debugLog("Reloading context menu entries...")

	loaded := catalog.Reload(m.config.Registry(), m.store, m.services)

	debugLog("Reloaded %d entries in %v", m.services.Len(), time.Since(start))
	return servicesLoadedMsg{loaded: loaded, count: m.services.Len()}
}

// applyServices snapshots the configuration files and persists the current
// selections.
func (m *Model) applyServices() tea.Msg {
	if _, err := m.config.Backups().Take(m.store); err != nil {
		debugLog("Snapshot failed: %v", err)
	}

	result, err := catalog.Apply(m.store, m.services, &m.loaded)
	return applyDoneMsg{result: result, err: err}
}

// computePending diffs the on-disk configuration against what apply would
// write.
func (m *Model) computePending() tea.Msg {
	diffs, err := changes.Pending(m.store, m.services)
	return pendingDiffsMsg{diffs: diffs, err: err}
}

// fetchSources clones or updates every configured source repository.
func (m *Model) fetchSources() tea.Msg {
	start := time.Now()
	debugLog("Fetching sources...")

	results, err := m.config.Downloads().FetchAll()

	debugLog("Fetched %d sources in %v", len(results), time.Since(start))
	return downloadDoneMsg{results: results, err: err}
}

// restoreSnapshot copies a snapshot's files back over the live configuration.
func (m *Model) restoreSnapshot(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.config.Backups().Restore(id, m.store)
		return snapshotRestoredMsg{id: id, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updatePanelSizes()
		if m.screen == ScreenHelp {
			m.helpVP.Width = m.width - 4
			m.helpVP.Height = m.height - 4
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		// Forward mouse events to the source viewer when it is open
		if m.screen == ScreenPreview {
			var cmd tea.Cmd
			m.sourceView, cmd = m.sourceView.Update(msg)
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case servicesLoadedMsg:
		if m.screen == ScreenLoading {
			m.screen = ScreenMain
		}
		m.loaded = msg.loaded
		m.dirty = false
		m.list.GoToFirst()
		m.status = fmt.Sprintf("Found %d context menu entries", msg.count)

	case applyDoneMsg:
		m.applying = false
		if m.screen == ScreenChanges {
			m.screen = ScreenMain
		}
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.err = msg.err
			break
		}
		m.dirty = false
		m.status = "✓ Selections saved"
		if msg.result.RestartNeeded {
			m.noticeBar.SetNotice(components.RestartNotice())
			m.updatePanelSizes()
		}

	case pendingDiffsMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			break
		}
		m.changesView.SetDiffs(msg.diffs)
		m.screen = ScreenChanges

	case downloadDoneMsg:
		m.downloading = false
		m.downloadResults = msg.results
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			break
		}
		if download.Changed(msg.results) {
			m.status = "✓ New services installed"
			// Rebuild the list behind the results screen
			return m, m.reloadServices
		}
		m.status = "All sources up to date"

	case snapshotRestoredMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			break
		}
		// The files changed under the store, start over with a fresh one
		m.store = m.config.Store()
		m.screen = ScreenLoading
		m.status = fmt.Sprintf("✓ Snapshot %s restored", msg.id)
		return m, tea.Batch(m.spinner.Tick, m.reloadServices)

	case editorFinishedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Editor error: %v", msg.err)
			break
		}
		if editor.ChangedSince(msg.path, msg.before) {
			m.screen = ScreenLoading
			m.status = "Entry file changed, reloading..."
			return m, tea.Batch(m.spinner.Tick, m.reloadServices)
		}
		m.status = "Editor closed, no changes"
	}

	if m.searchMode {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenPreview:
		return m.handlePreviewKeys(msg)
	case ScreenChanges:
		return m.handleChangesKeys(msg)
	case ScreenDownload:
		return m.handleDownloadKeys(msg)
	case ScreenConfirmDefaults:
		return m.handleConfirmKeys(msg)
	case ScreenSnapshots:
		return m.handleSnapshotKeys(msg)
	case ScreenHelp:
		if key.Matches(msg, m.keys.Escape, m.keys.Help, m.keys.Quit) {
			m.screen = ScreenMain
			return m, nil
		}
		// Forward to viewport for scrolling
		var cmd tea.Cmd
		m.helpVP, cmd = m.helpVP.Update(msg)
		return m, cmd
	case ScreenLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.applying {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	return m.handleMainKeys(msg)
}

func (m *Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle search mode input
	if m.searchMode {
		return m.handleSearchKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		// Esc: dismiss the notice first, then clear an active filter
		if m.noticeBar.IsVisible() {
			m.noticeBar.Clear()
			m.updatePanelSizes()
			return m, nil
		}
		if m.searchQuery != "" {
			return m.clearFilter()
		}
		return m, nil

	case msg.String() == "x":
		// Acknowledge the restart notice for good
		if m.noticeBar.IsVisible() {
			if err := catalog.SuppressRestartNotice(m.store); err != nil {
				m.status = fmt.Sprintf("Error: %v", err)
			} else {
				m.status = "Restart notice won't be shown again"
			}
			m.noticeBar.Clear()
			m.updatePanelSizes()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.screen = ScreenHelp
		m.helpVP = viewport.New(m.width-4, m.height-4)
		m.helpVP.SetContent(m.renderHelp())
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.list.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.MoveDown()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.list.PageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.list.PageDown()
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.list.GoToFirst()
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.list.GoToLast()
		return m, nil

	case key.Matches(msg, m.keys.Space), key.Matches(msg, m.keys.Enter):
		m.handleToggle()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchQuery = ""
		m.textInput.SetValue("")
		m.textInput.Focus()
		m.status = "Type to search, Enter to confirm, Esc to cancel"
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Apply):
		return m.handleApply()

	case key.Matches(msg, m.keys.Defaults):
		m.confirmDialog.Show(
			"Restore defaults",
			"Re-enable every service menu and file item action and\nswitch all version control plugins and the built-in\ncommand entries off?",
		)
		m.screen = ScreenConfirmDefaults
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.screen = ScreenLoading
		m.status = "Reloading..."
		return m, tea.Batch(m.spinner.Tick, m.reloadServices)

	case key.Matches(msg, m.keys.Download):
		return m.handleDownload()

	case key.Matches(msg, m.keys.Changes):
		return m, m.computePending

	case key.Matches(msg, m.keys.Preview):
		return m.handlePreview()

	case key.Matches(msg, m.keys.Edit):
		return m.handleOpenEditor()

	case key.Matches(msg, m.keys.Snapshots):
		return m.handleSnapshots()
	}

	return m, nil
}

func (m *Model) handleToggle() {
	row := m.list.Toggle()
	if row == nil {
		return
	}
	m.dirty = true
	state := "enabled"
	if !row.Checked {
		state = "disabled"
	}
	m.status = fmt.Sprintf("%s %s • press a to apply", row.DisplayText, state)
}

func (m *Model) handleApply() (tea.Model, tea.Cmd) {
	if !m.dirty {
		m.status = "Nothing to apply"
		return m, nil
	}
	m.applying = true
	m.status = "Applying..."
	return m, tea.Batch(m.spinner.Tick, m.applyServices)
}

func (m *Model) handleDownload() (tea.Model, tea.Cmd) {
	m.downloading = true
	m.downloadResults = nil
	m.screen = ScreenDownload
	m.status = "Fetching sources..."
	return m, tea.Batch(m.spinner.Tick, m.fetchSources)
}

func (m *Model) handlePreview() (tea.Model, tea.Cmd) {
	row := m.list.Current()
	if row == nil {
		m.status = "No entry selected"
		return m, nil
	}

	if err := m.sourceView.LoadRow(row); err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	m.sourceView.SetSize(m.width, m.height-2)
	m.screen = ScreenPreview
	return m, nil
}

func (m *Model) handleOpenEditor() (tea.Model, tea.Cmd) {
	row := m.list.Current()
	if row == nil {
		m.status = "No entry selected"
		return m, nil
	}
	if row.SourcePath == "" {
		m.status = fmt.Sprintf("%s is built in and has no file to edit", row.DisplayText)
		return m, nil
	}

	execCmd, err := editor.Open(row.SourcePath)
	if err != nil {
		m.status = fmt.Sprintf("No editor found: %v", err)
		return m, nil
	}

	path := row.SourcePath
	before := editor.ModTime(path)
	m.status = fmt.Sprintf("Opening %s...", row.DisplayText)
	return m, tea.ExecProcess(execCmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, before: before, err: err}
	})
}

func (m *Model) handleSnapshots() (tea.Model, tea.Cmd) {
	snapshots, err := m.config.Backups().List()
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	m.snapshotDialog.Show(snapshots)
	m.screen = ScreenSnapshots
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Cancel search, show the full list again
		m.searchMode = false
		m.searchQuery = ""
		m.textInput.Blur()
		m.list.SetFilter("")
		m.status = "Search cancelled"
		return m, nil

	case tea.KeyEnter:
		// Confirm search
		m.searchMode = false
		m.textInput.Blur()
		if m.searchQuery == "" {
			m.list.SetFilter("")
			m.status = fmt.Sprintf("Showing all %d entries", m.services.Len())
		} else {
			m.status = fmt.Sprintf("Showing %d matching entries", m.list.Projection.Len())
		}
		return m, nil

	case tea.KeyUp:
		m.list.MoveUp()
		return m, nil

	case tea.KeyDown:
		m.list.MoveDown()
		return m, nil

	default:
		// Handle regular typing
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		m.searchQuery = m.textInput.Value()
		m.filterList()
		return m, cmd
	}
}

// filterList narrows the list to entries matching the search query
func (m *Model) filterList() {
	m.list.SetFilter(m.searchQuery)
	if m.searchQuery == "" {
		m.status = fmt.Sprintf("Type to search (%d entries)", m.services.Len())
		return
	}
	m.status = fmt.Sprintf("Found %d entries matching '%s'", m.list.Projection.Len(), m.searchQuery)
}

func (m *Model) clearFilter() (tea.Model, tea.Cmd) {
	m.searchQuery = ""
	m.textInput.SetValue("")
	m.list.SetFilter("")
	m.status = fmt.Sprintf("Showing all %d entries", m.services.Len())
	return m, nil
}

func (m *Model) handlePreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape, m.keys.Quit, m.keys.Preview):
		m.screen = ScreenMain
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.sourceView.ScrollUp()
	case key.Matches(msg, m.keys.Down):
		m.sourceView.ScrollDown()
	case key.Matches(msg, m.keys.PageUp):
		m.sourceView.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.sourceView.PageDown()
	case key.Matches(msg, m.keys.Home):
		m.sourceView.GoToTop()
	case key.Matches(msg, m.keys.End):
		m.sourceView.GoToBottom()
	}
	return m, nil
}

func (m *Model) handleChangesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape, m.keys.Quit, m.keys.Changes):
		m.screen = ScreenMain
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.changesView.ScrollUp()

	case key.Matches(msg, m.keys.Down):
		m.changesView.ScrollDown()

	case key.Matches(msg, m.keys.NextHunk):
		m.changesView.NextHunk()

	case key.Matches(msg, m.keys.PrevHunk):
		m.changesView.PrevHunk()

	case msg.String() == "h":
		m.changesView.ToggleHighlight()

	case key.Matches(msg, m.keys.Apply):
		if !m.changesView.HasChanges() {
			m.status = "Nothing to apply"
			m.screen = ScreenMain
			return m, nil
		}
		m.applying = true
		m.status = "Applying..."
		return m, tea.Batch(m.spinner.Tick, m.applyServices)
	}
	return m, nil
}

func (m *Model) handleDownloadKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.downloading {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Escape, m.keys.Quit, m.keys.Download) {
		m.screen = ScreenMain
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.confirmDialog.Hide()
		m.screen = ScreenMain
		return m, nil

	case msg.String() == "left", msg.String() == "h":
		m.confirmDialog.MoveLeft()
		return m, nil

	case msg.String() == "right", msg.String() == "l", msg.String() == "tab":
		m.confirmDialog.MoveRight()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		confirmed := m.confirmDialog.Confirmed()
		m.confirmDialog.Hide()
		m.screen = ScreenMain
		if confirmed {
			catalog.RestoreDefaults(m.services)
			m.dirty = true
			m.status = "Defaults restored • press a to apply"
		} else {
			m.status = "Restore cancelled"
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleSnapshotKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape, m.keys.Quit, m.keys.Snapshots):
		m.snapshotDialog.Hide()
		m.screen = ScreenMain
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.snapshotDialog.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.snapshotDialog.MoveDown()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		snap, ok := m.snapshotDialog.Selected()
		if !ok {
			return m, nil
		}
		m.snapshotDialog.Hide()
		m.screen = ScreenLoading
		m.status = fmt.Sprintf("Restoring snapshot %s...", snap.ID)
		return m, tea.Batch(m.spinner.Tick, m.restoreSnapshot(snap.ID))
	}
	return m, nil
}

func (m *Model) updatePanelSizes() {
	listHeight := m.height - 7
	if m.noticeBar.IsVisible() {
		listHeight -= m.noticeBar.Height()
	}
	if listHeight < 5 {
		listHeight = 5
	}

	m.list.Width = m.width - 4
	m.list.Height = listHeight
	m.sourceView.SetSize(m.width, m.height-2)
	m.changesView.Width = m.width - 4
	m.changesView.Height = m.height - 6
	m.noticeBar.SetWidth(m.width - 4)
}

func (m *Model) View() string {
	switch m.screen {
	case ScreenPreview:
		return m.renderPreview()
	case ScreenChanges:
		return m.renderChanges()
	case ScreenDownload:
		return m.renderDownload()
	case ScreenConfirmDefaults:
		return m.renderConfirmDefaults()
	case ScreenSnapshots:
		return m.renderSnapshots()
	default:
		return m.renderMain()
	}
}

func (m *Model) renderMain() string {
	var b strings.Builder

	header := m.renderHeader()
	b.WriteString(header)
	b.WriteString("\n")

	switch m.screen {
	case ScreenLoading:
		// Loading screen with rotating tips
		var lines []string

		lines = append(lines, m.spinner.View()+" Loading context menu entries...")
		lines = append(lines, "")

		lines = append(lines, "Looking for entries in:")
		for _, root := range m.config.Roots {
			lines = append(lines, "  • "+root)
		}
		lines = append(lines, "")

		tips := []string{
			"💡 Use / to search entries by name",
			"💡 Space toggles, a saves the selection",
			"💡 Press v to view an entry's desktop file",
			"💡 Press d to review changes before applying",
			"💡 Press n to download new service menus",
			"💡 Press D to restore the default selection",
		}
		tipIndex := int(time.Now().Unix()/3) % len(tips)
		lines = append(lines, tips[tipIndex])

		loadContent := strings.Join(lines, "\n")

		loadBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.Primary).
			Padding(1, 3).
			Render(loadContent)

		boxHeight := lipgloss.Height(loadBox)
		boxWidth := lipgloss.Width(loadBox)

		availableHeight := m.height - 6
		availableWidth := m.width - 2

		topPad := (availableHeight - boxHeight) / 2
		if topPad < 0 {
			topPad = 0
		}
		leftPad := (availableWidth - boxWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}

		var loadOutput strings.Builder
		for i := 0; i < topPad; i++ {
			loadOutput.WriteString("\n")
		}
		for _, line := range strings.Split(loadBox, "\n") {
			loadOutput.WriteString(strings.Repeat(" ", leftPad))
			loadOutput.WriteString(line)
			loadOutput.WriteString("\n")
		}

		b.WriteString(loadOutput.String())

	case ScreenHelp:
		b.WriteString(m.helpVP.View())

	default:
		b.WriteString(m.list.View())
		if m.noticeBar.IsVisible() {
			b.WriteString("\n")
			b.WriteString(m.noticeBar.View())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderHeader() string {
	title := ui.TitleStyle.Render("🗂  Context Menu")
	ver := ui.VersionStyle.Render("v" + version)

	root := ""
	if len(m.config.Roots) > 0 {
		root = ui.MutedStyle.Render("  " + m.config.Roots[0])
	}

	return ui.HeaderStyle.Render(title + "  " + ver + root)
}

func (m *Model) renderStatusBar() string {
	checked := m.services.CheckedCount()
	total := m.services.Len()

	plugins := 0
	for _, row := range m.services.Rows() {
		if row.Kind == models.KindVersionControl && row.Checked {
			plugins++
		}
	}

	var stats []string
	stats = append(stats, fmt.Sprintf("Entries: %d/%d", checked, total))
	if plugins > 0 {
		stats = append(stats, fmt.Sprintf("Plugins: %d", plugins))
	}
	if m.dirty {
		stats = append(stats, ui.WarningNotifyStyle.Render("● unsaved"))
	}

	// Style status message based on content
	styledStatus := ui.StatusTextStyle.Render(m.status)
	if strings.HasPrefix(m.status, "✓") {
		styledStatus = ui.RenderNotification("success", strings.TrimPrefix(m.status, "✓ "))
	} else if strings.HasPrefix(m.status, "Error") {
		styledStatus = ui.RenderNotification("error", m.status)
	} else if strings.Contains(m.status, "cancelled") || strings.Contains(m.status, "failed") {
		styledStatus = ui.RenderNotification("warning", m.status)
	}

	return ui.StatusBarStyle.Render(
		styledStatus + "  •  " + strings.Join(stats, "  •  "),
	)
}

func (m *Model) renderHelpBar() string {
	switch m.screen {
	case ScreenLoading:
		items := []string{
			ui.RenderHelpItem("q", "quit"),
		}
		return ui.HelpBarStyle.Render("⏳ Loading... " + strings.Join(items, "  "))

	case ScreenHelp:
		scrollPct := fmt.Sprintf("%d%%", int(m.helpVP.ScrollPercent()*100))
		items := []string{
			ui.RenderHelpItem("↑↓/j/k", "scroll"),
			ui.RenderHelpItem("PgUp/PgDn", "page"),
			ui.RenderHelpItem("esc/?", "close"),
			ui.RenderHelpItem(scrollPct, ""),
		}
		return ui.HelpBarStyle.Render(strings.Join(items, "  "))
	}

	// Search mode gets the input inline
	if m.searchMode {
		items := []string{
			ui.RenderHelpItem("↑↓", "navigate"),
			ui.RenderHelpItem("enter", "confirm"),
			ui.RenderHelpItem("esc", "cancel"),
		}
		return ui.HelpBarStyle.Render("🔍 " + m.textInput.View() + "  " + strings.Join(items, "  "))
	}

	// Show search filter hint if search is active
	if m.searchQuery != "" {
		items := []string{
			ui.RenderHelpItem("esc", "clear"),
			ui.RenderHelpItem("space", "toggle"),
			ui.RenderHelpItem("a", "apply"),
			ui.RenderHelpItem("?", "help"),
		}
		return ui.HelpBarStyle.Render("🔍 \"" + m.searchQuery + "\"  " + strings.Join(items, "  "))
	}

	var items []string
	if m.noticeBar.IsVisible() {
		items = append(items, ui.RenderHelpItem("x", "don't show again"))
		items = append(items, ui.RenderHelpItem("esc", "dismiss"))
	}
	if m.dirty {
		items = append(items,
			ui.RenderHelpItem("a", "apply"),
			ui.RenderHelpItem("d", "changes"),
			ui.RenderHelpItem("space", "toggle"),
			ui.RenderHelpItem("/", "search"),
			ui.RenderHelpItem("?", "help"),
		)
	} else {
		items = append(items,
			ui.RenderHelpItem("space", "toggle"),
			ui.RenderHelpItem("/", "search"),
			ui.RenderHelpItem("v", "view"),
			ui.RenderHelpItem("n", "download"),
			ui.RenderHelpItem("D", "defaults"),
			ui.RenderHelpItem("?", "help"),
		)
	}

	return ui.HelpBarStyle.Render(strings.Join(items, "  "))
}

func (m *Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render("⌨️  Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(ui.MutedStyle.Render("  ─── ⚡ Selections ───"))
	b.WriteString("\n")
	selBindings := []struct {
		key  string
		desc string
	}{
		{"space/enter", "Toggle the entry under the cursor"},
		{"a", "Apply: save the selection"},
		{"d", "Review pending changes before applying"},
		{"D", "Restore the default selection"},
		{"r", "Reload the list (drops unapplied toggles)"},
	}
	for _, bind := range selBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  ─── 🧭 Navigation ───"))
	b.WriteString("\n")
	navBindings := []struct {
		key  string
		desc string
	}{
		{"/", "Search entries by name"},
		{"↑/k ↓/j", "Move cursor up/down"},
		{"PgUp/PgDn", "Scroll page"},
		{"Home/End", "Jump to first/last"},
		{"esc", "Dismiss notice, clear search"},
	}
	for _, bind := range navBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  ─── 📄 Entries ───"))
	b.WriteString("\n")
	entryBindings := []struct {
		key  string
		desc string
	}{
		{"v", "View the entry's desktop file"},
		{"e", "Open the entry's file in an editor"},
		{"n", "Download new services from the sources"},
		{"S", "Restore a configuration snapshot"},
	}
	for _, bind := range entryBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  ─── 🔖 List markers ───"))
	b.WriteString("\n")
	markerBindings := []struct {
		key  string
		desc string
	}{
		{"▸", "Service menu or file item action"},
		{"⎇", "Version control plugin (needs a restart)"},
		{"✗", "Built-in Delete command"},
		{"⇄", "Built-in 'Copy To' / 'Move To' commands"},
	}
	for _, bind := range markerBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  ─── ⚙️ General ───"))
	b.WriteString("\n")
	genBindings := []struct {
		key  string
		desc string
	}{
		{"?", "Toggle this help"},
		{"q/Ctrl+c", "Quit"},
	}
	for _, bind := range genBindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			ui.HelpKeyStyle.Width(14).Render(bind.key),
			ui.HelpDescStyle.Render(bind.desc),
		))
	}

	b.WriteString("\n")
	b.WriteString(ui.MutedStyle.Render("  Version control plugins only take effect after the file\n  manager restarts; a notice points this out after apply."))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderPreview() string {
	var b strings.Builder

	header := m.renderHeader()
	b.WriteString(header)
	b.WriteString("\n")

	b.WriteString(m.sourceView.View())
	b.WriteString("\n")

	helpItems := []string{
		ui.RenderHelpItem("j/k", "scroll"),
		ui.RenderHelpItem("PgUp/Dn", "page"),
		ui.RenderHelpItem("Home/End", "top/bottom"),
		ui.RenderHelpItem("q/Esc", "close"),
	}
	b.WriteString(ui.HelpBarStyle.Render(strings.Join(helpItems, "  ")))

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderChanges() string {
	var b strings.Builder

	header := m.renderHeader()
	b.WriteString(header)
	b.WriteString("\n")

	b.WriteString(m.changesView.View())
	b.WriteString("\n")

	helpItems := []string{
		ui.RenderHelpItem("a", "apply"),
		ui.RenderHelpItem("n/N", "hunk"),
		ui.RenderHelpItem("h", "highlight"),
		ui.RenderHelpItem("q/Esc", "close"),
	}
	b.WriteString(ui.HelpBarStyle.Render(strings.Join(helpItems, "  ")))

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderDownload() string {
	var b strings.Builder

	header := m.renderHeader()
	b.WriteString(header)
	b.WriteString("\n")

	if m.downloading {
		var lines []string
		lines = append(lines, m.spinner.View()+" Fetching configured sources...")
		lines = append(lines, "")
		lines = append(lines, ui.MutedStyle.Render("Cloning and updating repositories can take a moment."))

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.Primary).
			Padding(1, 3).
			Render(strings.Join(lines, "\n"))

		content := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height - 6).
			Align(lipgloss.Center, lipgloss.Center).
			Render(box)
		b.WriteString(content)
	} else {
		var lines []string
		lines = append(lines, ui.PanelTitleStyle.Render("Download results"))
		lines = append(lines, "")

		if len(m.downloadResults) == 0 {
			lines = append(lines, "No sources configured.")
			lines = append(lines, "")
			lines = append(lines, ui.MutedStyle.Render("Add one with: svcmenu sources add <name> <repo-url>"))
		} else {
			for _, r := range m.downloadResults {
				switch {
				case r.Err != nil:
					lines = append(lines, ui.RenderNotification("error", fmt.Sprintf("%s: %v", r.Source.Name, r.Err)))
				case r.Updated:
					lines = append(lines, ui.RenderNotification("success", fmt.Sprintf("%s: %d entries installed", r.Source.Name, len(r.Installed))))
				default:
					lines = append(lines, ui.MutedStyle.Render(fmt.Sprintf("• %s: up to date", r.Source.Name)))
				}
			}
		}

		panel := ui.PanelStyle.Width(m.width - 4).Render(strings.Join(lines, "\n"))
		b.WriteString(panel)
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	if m.downloading {
		b.WriteString(ui.HelpBarStyle.Render("📥 Downloading... " + ui.RenderHelpItem("q", "quit")))
	} else {
		helpItems := []string{
			ui.RenderHelpItem("esc", "close"),
			ui.RenderHelpItem("q", "quit"),
		}
		b.WriteString(ui.HelpBarStyle.Render(strings.Join(helpItems, "  ")))
	}

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderConfirmDefaults() string {
	var b strings.Builder

	header := m.renderHeader()
	b.WriteString(header)
	b.WriteString("\n")

	content := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 4).
		Align(lipgloss.Center, lipgloss.Center).
		Render(m.confirmDialog.View())
	b.WriteString(content)

	return ui.AppStyle.Render(b.String())
}

func (m *Model) renderSnapshots() string {
	var b strings.Builder

	header := m.renderHeader()
	b.WriteString(header)
	b.WriteString("\n")

	content := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 4).
		Align(lipgloss.Center, lipgloss.Center).
		Render(m.snapshotDialog.View())
	b.WriteString(content)

	return ui.AppStyle.Render(b.String())
}

// runTUI starts the interactive list. Wired into the root command from here
// so the cmd package stays free of the UI.
func runTUI(debug bool) error {
	debugMode = debug
	if debug {
		fmt.Fprintln(os.Stderr, "[DEBUG] Debug mode enabled")
	}

	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func main() {
	cmd.SetVersion(fmt.Sprintf("%s (built %s)", version, buildTime))
	cmd.SetTUIRunner(runTUI)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
