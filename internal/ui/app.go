package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ponderhq/ponder/internal/archive"
	"github.com/ponderhq/ponder/internal/config"
	"github.com/ponderhq/ponder/internal/notify"
	"github.com/ponderhq/ponder/internal/share"
	"github.com/ponderhq/ponder/internal/store"
	"github.com/ponderhq/ponder/internal/theme"
	"github.com/ponderhq/ponder/internal/thought"
)

type screen int

const (
	screenDaily screen = iota
	screenArchive
	screenHelp
)

const statusTTL = 3 * time.Second

type Model struct {
	// layout
	width, height int
	screen        screen
	backScreen    screen // where Esc from help returns

	// configuration & styles
	cfg  config.Config
	pref theme.Preference
	st   Styles

	// content
	src     *store.Store
	records []thought.Thought
	loadErr error
	loading bool

	// daily view
	now       time.Time
	countdown string
	sel       thought.Selector

	// archive view
	query     textinput.Model
	activeTag string // "" means All
	tags      []string
	visible   []thought.Thought
	tagCursor int // 0 is the All chip, i+1 is tags[i]
	cursor    int
	scroll    int

	// transient status line
	status      string
	statusUntil time.Time

	// reload fan-in from the content file watcher
	reload chan struct{}
}

func Run(cfg config.Config) error {
	m := New(cfg)

	var cancel context.CancelFunc
	if cfg.Source != "" && !store.IsURL(cfg.Source) {
		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())
		ch := make(chan struct{}, 1)
		m.reload = ch
		go func() {
			_ = store.Watch(ctx, cfg.Source, func() {
				select {
				case ch <- struct{}{}:
				default:
				}
			})
		}()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()
	if cancel != nil {
		cancel()
	}
	return runErr
}

func New(cfg config.Config) Model {
	q := textinput.New()
	q.Placeholder = "Search text and reflections…"
	q.CharLimit = 128
	q.Width = 40
	q.Prompt = "/ "

	pref := cfg.ThemePreference()
	now := time.Now()

	return Model{
		screen:    screenDaily,
		cfg:       cfg,
		pref:      pref,
		st:        StylesFor(pref),
		src:       store.New(),
		loading:   true,
		now:       now,
		countdown: thought.Countdown(thought.UntilRollover(now)),
		query:     q,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickNow(), m.loadRecordsCmd(), m.waitForChangeCmd())
}

// ---------- messages & commands ----------

type tickMsg struct{ now time.Time }

type recordsLoadedMsg struct {
	records []thought.Thought
	err     error
}

type storeChangedMsg struct{}

type sharedMsg struct{ err error }

func tickNow() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{now: time.Now()} })
}

func (m Model) loadRecordsCmd() tea.Cmd {
	src, source := m.src, m.cfg.Source
	return func() tea.Msg {
		records, err := src.Load(source)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (m Model) waitForChangeCmd() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	ch := m.reload
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}

func shareCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return sharedMsg{err: share.Copy(text)}
	}
}

// ---------- update ----------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.now = msg.now
		m.countdown = thought.Countdown(thought.UntilRollover(m.now))
		if len(m.records) > 0 && m.sel.Roll(m.now, m.cfg.EpochTime()) {
			if m.cfg.Notifications.Enabled && m.cfg.Notifications.Rollover {
				title, body := notify.FormatRollover(m.sel.AnchorDay)
				_ = notify.Info(title, body)
			}
		}
		if m.status != "" && m.now.After(m.statusUntil) {
			m.status = ""
		}
		return m, tickNow()

	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		m.records = msg.records
		m.sel = thought.NewSelector(len(m.records), m.now, m.cfg.EpochTime())
		m.tags = archive.Tags(m.records)
		if m.tagCursor > len(m.tags) {
			m.tagCursor = 0
		}
		if !tagKnown(m.tags, m.activeTag) {
			m.activeTag = ""
		}
		m.refilter()
		return m, nil

	case storeChangedMsg:
		m.setStatus("Content changed, reloading…")
		return m, tea.Batch(m.loadRecordsCmd(), m.waitForChangeCmd())

	case sharedMsg:
		if msg.err != nil {
			m.setStatus("Copy failed: " + msg.err.Error())
		} else {
			m.setStatus("Copied to clipboard")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = m.now.Add(statusTTL)
}

func tagKnown(tags []string, tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// refilter recomputes the visible subsequence from scratch. Runs on every
// keystroke and tag toggle.
func (m *Model) refilter() {
	m.visible = archive.Filter(m.records, m.activeTag, m.query.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
	m.scroll = 0
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search input swallows printable keys while focused.
	if m.screen == screenArchive && m.query.Focused() {
		switch msg.String() {
		case "esc":
			m.query.Blur()
			return m, nil
		case "enter":
			m.query.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		m.refilter()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		if m.screen == screenHelp {
			m.screen = m.backScreen
		} else {
			m.backScreen = m.screen
			m.screen = screenHelp
		}
		return m, nil
	case "a":
		m.screen = screenArchive
		return m, nil
	case "d":
		m.screen = screenDaily
		return m, nil
	case "T":
		m.pref = m.pref.Next()
		m.st = StylesFor(m.pref)
		m.cfg.Theme = m.pref.String()
		if err := config.Save(m.cfg); err != nil {
			m.setStatus("Theme not saved: " + err.Error())
		} else {
			m.setStatus("Theme: " + m.pref.String())
		}
		return m, nil
	}

	switch m.screen {
	case screenDaily:
		return m.handleDailyKey(msg)
	case screenArchive:
		return m.handleArchiveKey(msg)
	case screenHelp:
		if msg.String() == "esc" {
			m.screen = m.backScreen
		}
	}
	return m, nil
}

func (m Model) handleDailyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loadErr != nil {
		if msg.String() == "r" {
			m.loading = true
			m.setStatus("Retrying…")
			return m, m.loadRecordsCmd()
		}
		return m, nil
	}
	if len(m.records) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "t":
		m.sel.GoToday()
	case "y":
		m.sel.GoYesterday()
	case "x":
		m.sel.GoRandom()
	case "s", "c":
		rec := m.records[m.sel.Index]
		return m, shareCmd(share.Summary(rec, m.sel.Label()))
	}
	return m, nil
}

func (m Model) handleArchiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.query.Focus()
		return m, textinput.Blink
	case "esc":
		// clear everything: query, tag, selection
		m.query.SetValue("")
		m.activeTag = ""
		m.tagCursor = 0
		m.refilter()
		return m, nil
	case "left", "h":
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case "right", "l":
		if m.tagCursor < len(m.tags) {
			m.tagCursor++
		}
	case "enter", " ":
		m.toggleTagAtCursor()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	}
	return m, nil
}

// toggleTagAtCursor applies the chip semantics: All always clears, the
// active tag toggles off, any other tag replaces the active one.
func (m *Model) toggleTagAtCursor() {
	if m.tagCursor == 0 {
		m.activeTag = ""
	} else {
		tag := m.tags[m.tagCursor-1]
		if tag == m.activeTag {
			m.activeTag = ""
		} else {
			m.activeTag = tag
		}
	}
	m.refilter()
}

// ---------- view ----------

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	top := m.renderTopBar()
	status := m.renderStatusBar()

	innerH := m.height - lipgloss.Height(top) - lipgloss.Height(status)
	if innerH < 4 {
		innerH = 4
	}

	var body string
	switch m.screen {
	case screenArchive:
		body = m.renderArchive(innerH)
	case screenHelp:
		body = m.renderHelp()
	default:
		body = m.renderDaily()
	}
	body = lipgloss.Place(m.width, innerH, lipgloss.Center, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left, top, body, status)
}

func (m Model) renderTopBar() string {
	name := "Today"
	switch m.screen {
	case screenArchive:
		name = "Archive"
	case screenHelp:
		name = "Help"
	}
	right := m.now.Format("Mon Jan 02")
	title := fmt.Sprintf("Ponder • %s  |  %s", name, right)
	return m.st.TopBar.Render(title)
}

func (m Model) renderStatusBar() string {
	hints := "t today • y yesterday • x random • s share • a archive • T theme • ? help • q quit"
	if m.screen == screenArchive {
		hints = "/ search • ←/→ tags • enter toggle • esc clear • d daily • q quit"
	}
	if m.status != "" {
		hints = m.status
	}
	return m.st.StatusBar.Render(hints)
}

func (m Model) renderDaily() string {
	if m.loading {
		return m.st.Hint.Render("Loading thoughts…")
	}
	if m.loadErr != nil {
		return m.st.Border.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.st.Error.Render("Could not load thoughts"),
			"",
			m.st.Value.Render(m.loadErr.Error()),
			"",
			m.st.Hint.Render("r retry • q quit"),
		))
	}

	rec := m.records[m.sel.Index]

	lines := []string{
		m.st.Title.Render(m.sel.Label()),
		"",
		m.st.Value.Render(wrap(rec.Text, m.boxWidth())),
	}
	if rec.Reflection != "" {
		lines = append(lines, "", m.st.Label.Render(wrap(rec.Reflection, m.boxWidth())))
	}
	if len(rec.Tags) > 0 {
		lines = append(lines, "", m.st.Tag.Render("#"+strings.Join(rec.Tags, " #")))
	}
	lines = append(lines, "",
		m.st.Countdown.Render("Next thought in "+m.countdown),
	)
	return m.st.Border.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) boxWidth() int {
	w := m.width - 12
	if w < 24 {
		w = 24
	}
	if w > 72 {
		w = 72
	}
	return w
}

func (m Model) renderArchive(innerH int) string {
	if m.loading {
		return m.st.Hint.Render("Loading thoughts…")
	}
	if m.loadErr != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.st.Error.Render("Archive unavailable"),
			m.st.Value.Render(m.loadErr.Error()),
		)
	}

	search := m.query.View()
	chips := m.renderChips()
	count := m.st.Hint.Render(fmt.Sprintf("%d of %d thoughts", len(m.visible), len(m.records)))

	listH := innerH - lipgloss.Height(search) - lipgloss.Height(chips) - lipgloss.Height(count) - 1
	if listH < 1 {
		listH = 1
	}
	list := m.renderList(listH)

	return lipgloss.JoinVertical(lipgloss.Left, search, chips, count, "", list)
}

func (m Model) renderChips() string {
	chip := func(label string, active, atCursor bool) string {
		st := m.st.Tag
		if active {
			st = m.st.TagActive
		}
		s := st.Render(label)
		if atCursor {
			s = m.st.Value.Render("[") + s + m.st.Value.Render("]")
		}
		return s
	}

	parts := []string{chip("All", m.activeTag == "", m.tagCursor == 0)}
	for i, tag := range m.tags {
		parts = append(parts, chip(tag, tag == m.activeTag, m.tagCursor == i+1))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderList(listH int) string {
	if len(m.visible) == 0 {
		return m.st.Hint.Render("No thoughts match.")
	}

	// keep the cursor inside the window
	scroll := m.scroll
	if m.cursor < scroll {
		scroll = m.cursor
	}
	if m.cursor >= scroll+listH {
		scroll = m.cursor - listH + 1
	}

	var rows []string
	for i := scroll; i < len(m.visible) && i < scroll+listH; i++ {
		rec := m.visible[i]
		line := fmt.Sprintf("Day %d  %s", rec.ID, truncate(rec.Text, m.width-20))
		if i == m.cursor {
			rows = append(rows, m.st.RowActive.Render(line))
		} else {
			rows = append(rows, m.st.Row.Render(line))
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderHelp() string {
	rows := []string{
		m.st.Title.Render("Keys"),
		"",
		m.st.Value.Render("t / y / x") + m.st.Hint.Render("   today, yesterday, random"),
		m.st.Value.Render("s or c") + m.st.Hint.Render("      share (clipboard)"),
		m.st.Value.Render("a / d") + m.st.Hint.Render("       archive / daily view"),
		m.st.Value.Render("/") + m.st.Hint.Render("           search the archive"),
		m.st.Value.Render("← →, enter") + m.st.Hint.Render("  pick and toggle a tag"),
		m.st.Value.Render("T") + m.st.Hint.Render("           cycle theme (system, light, dark)"),
		m.st.Value.Render("r") + m.st.Hint.Render("           retry a failed load"),
		m.st.Value.Render("q") + m.st.Hint.Render("           quit"),
		"",
		m.st.Hint.Render("esc or ? to close"),
	}
	return m.st.Border.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func truncate(s string, max int) string {
	if max < 8 {
		max = 8
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
