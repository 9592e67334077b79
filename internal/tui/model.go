// Package tui implements the interactive log viewer. The model keeps a
// bounded window of parsed lines over the open file and extends it as
// the viewport reaches either edge, so multi-gigabyte files stay cheap
// to browse.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uelog/uelog/internal/domain"
	"github.com/uelog/uelog/internal/output"
	"github.com/uelog/uelog/internal/session"
)

const (
	// loadStep is how many lines one edge extension pulls in
	loadStep = 1000
	// maxWindow caps the loaded window; the far side is trimmed past this
	maxWindow = 10000
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle  = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
)

// Model represents the viewer state
type Model struct {
	sess  *session.Session
	index *domain.FileIndex
	path  string

	entries     []domain.LogEntry
	windowStart int // line number of entries[0]

	viewport  viewport.Model
	textinput textinput.Model
	width     int
	height    int
	ready     bool

	searching   bool
	searchQuery string
	matchLine   int // line of the last search hit, 0 = none
	minPriority int
	statusMsg   string
}

// New creates a viewer over an already-open session
func New(sess *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Search (regex)..."
	ti.CharLimit = 200
	ti.Width = 40

	m := Model{
		sess:        sess,
		minPriority: domain.LogLevelVeryVerbose.Priority(),
	}
	if idx, ok := sess.Index(); ok {
		m.index = idx
		m.path = idx.FilePath
	}
	m.textinput = ti
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.textinput.Blur()
			case "enter":
				m.searching = false
				m.textinput.Blur()
				m.searchQuery = m.textinput.Value()
				m.matchLine = 0
				m.jumpToMatch(1)
			default:
				m.textinput, cmd = m.textinput.Update(msg)
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.searching = true
			m.textinput.Focus()
			return m, textinput.Blink
		case "esc":
			if m.searchQuery != "" {
				m.searchQuery = ""
				m.textinput.SetValue("")
				m.matchLine = 0
				m.statusMsg = ""
				m.refresh()
			}
		case "n":
			if m.searchQuery != "" {
				m.jumpToMatch(m.matchLine + 1)
			}
		case "1":
			m.minPriority = domain.LogLevelVeryVerbose.Priority()
			m.refresh()
		case "2":
			m.minPriority = domain.LogLevelVerbose.Priority()
			m.refresh()
		case "3":
			m.minPriority = domain.LogLevelDisplay.Priority()
			m.refresh()
		case "4":
			m.minPriority = domain.LogLevelWarning.Priority()
			m.refresh()
		case "5":
			m.minPriority = domain.LogLevelError.Priority()
			m.refresh()
		case "g", "home":
			m.loadWindow(1)
			m.viewport.GotoTop()
		case "G", "end":
			if m.index != nil {
				m.loadWindow(m.index.TotalLines - loadStep + 1)
			}
			m.viewport.GotoBottom()
		case "j", "down":
			m.viewport.LineDown(1)
		case "k", "up":
			m.viewport.LineUp(1)
		case "ctrl+d", "pgdown":
			m.viewport.HalfViewDown()
		case "ctrl+u", "pgup":
			m.viewport.HalfViewUp()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 1
		viewportHeight := m.height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
			m.loadWindow(1)
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
			m.refresh()
		}
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
		m.extendAtEdges()
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderHeader() + "\n" + m.viewport.View() + "\n" + m.renderFooter()
}

func (m *Model) renderHeader() string {
	title := fmt.Sprintf("uelog: %s", m.path)
	if m.index != nil {
		title += fmt.Sprintf(" (%d lines)", m.index.TotalLines)
	}
	header := titleStyle.Width(m.width).Render(title)

	var info string
	if m.index != nil {
		errs := m.index.LevelCounts[domain.LogLevelError]
		warns := m.index.LevelCounts[domain.LogLevelWarning]
		info = fmt.Sprintf("Errors: %d | Warnings: %d | Window: %d-%d",
			errs, warns, m.windowStart, m.windowStart+len(m.entries)-1)
	}
	if m.searchQuery != "" {
		info += fmt.Sprintf(" | Search: %q", m.searchQuery)
	}
	if m.statusMsg != "" {
		info += " | " + m.statusMsg
	}
	return header + "\n" + statusStyle.Width(m.width).Render(info)
}

func (m *Model) renderFooter() string {
	if m.searching {
		return m.textinput.View()
	}
	help := "q:quit /:search n:next 1-5:level g/G:top/bottom j/k:scroll esc:clear"
	return statusStyle.Width(m.width).Render(help)
}

// loadWindow replaces the loaded window so it starts near the given line
func (m *Model) loadWindow(startLine int) {
	if m.index == nil {
		return
	}
	if startLine < 1 {
		startLine = 1
	}
	endLine := startLine + loadStep - 1

	chunk, err := m.sess.Chunk(startLine, endLine)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.entries = chunk.Entries
	m.windowStart = chunk.StartLine
	m.refresh()
}

// extendAtEdges pulls in more lines when the viewport touches either end
// of the loaded window
func (m *Model) extendAtEdges() {
	if m.index == nil || len(m.entries) == 0 {
		return
	}

	if m.viewport.AtTop() && m.windowStart > 1 {
		newStart := m.windowStart - loadStep
		if newStart < 1 {
			newStart = 1
		}
		chunk, err := m.sess.Chunk(newStart, m.windowStart-1)
		if err != nil {
			m.statusMsg = err.Error()
			return
		}
		added := len(chunk.Entries)
		m.entries = append(chunk.Entries, m.entries...)
		m.windowStart = chunk.StartLine
		if len(m.entries) > maxWindow {
			m.entries = m.entries[:maxWindow]
		}
		m.refresh()
		// Keep the previously visible line in place
		m.viewport.SetYOffset(m.viewport.YOffset + added)
		return
	}

	windowEnd := m.windowStart + len(m.entries) - 1
	if m.viewport.AtBottom() && windowEnd < m.index.TotalLines {
		chunk, err := m.sess.Chunk(windowEnd+1, windowEnd+loadStep)
		if err != nil {
			m.statusMsg = err.Error()
			return
		}
		m.entries = append(m.entries, chunk.Entries...)
		if len(m.entries) > maxWindow {
			trim := len(m.entries) - maxWindow
			m.entries = m.entries[trim:]
			m.windowStart += trim
			m.viewport.SetYOffset(m.viewport.YOffset - trim)
		}
		m.refresh()
	}
}

// jumpToMatch searches forward from the given line and recenters the
// window on the first hit
func (m *Model) jumpToMatch(fromLine int) {
	opts := domain.DefaultSearchOptions(m.searchQuery)
	opts.StartLine = fromLine
	results, err := m.sess.SearchNext(fromLine, 1, opts)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	if len(results) == 0 {
		m.statusMsg = "no more matches"
		return
	}

	m.matchLine = results[0].LineNumber
	m.statusMsg = fmt.Sprintf("match at line %d", m.matchLine)

	start := m.matchLine - loadStep/2
	if start < 1 {
		start = 1
	}
	m.loadWindow(start)
	m.viewport.SetYOffset(m.visibleOffset(m.matchLine))
}

// visibleOffset maps a line number to its row inside the rendered
// content, accounting for the level filter
func (m *Model) visibleOffset(lineNumber int) int {
	row := 0
	for i := range m.entries {
		if m.entries[i].LineNumber >= lineNumber {
			break
		}
		if m.visible(&m.entries[i]) {
			row++
		}
	}
	return row
}

func (m *Model) visible(entry *domain.LogEntry) bool {
	if m.minPriority == domain.LogLevelVeryVerbose.Priority() {
		return true
	}
	// Continuations follow their parent's fate only loosely; keep them
	// visible so multi-line stack traces stay intact
	if entry.IsContinuation {
		return true
	}
	return entry.Level.Priority() >= m.minPriority
}

// refresh rebuilds the viewport content from the loaded window
func (m *Model) refresh() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for i := range m.entries {
		if !m.visible(&m.entries[i]) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.formatLine(&m.entries[i]))
	}
	m.viewport.SetContent(b.String())
}

func (m *Model) formatLine(entry *domain.LogEntry) string {
	num := output.Styles.LineNumber.Render(fmt.Sprintf("%7d", entry.LineNumber))

	if entry.IsContinuation || entry.Category == "" {
		return num + "  " + output.Styles.Unknown.Render(m.truncate(entry.Raw))
	}

	line := num + "  " + output.LevelIndicator(string(entry.Level))
	if entry.Timestamp != "" {
		line += " " + output.Styles.Timestamp.Render(entry.Timestamp)
	}
	line += " " + output.Styles.Category.Render(entry.Category) + ":"

	msg := m.truncate(entry.Message)
	if m.searchQuery != "" && entry.LineNumber == m.matchLine {
		msg = output.Styles.Match.Render(msg)
	} else {
		msg = output.LevelStyle(string(entry.Level)).Render(msg)
	}
	return line + " " + msg
}

func (m *Model) truncate(s string) string {
	max := m.width - 12
	if max < 20 {
		max = 20
	}
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
