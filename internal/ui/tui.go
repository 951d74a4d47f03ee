// Package ui provides the optional terminal agenda viewer.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/agenda-go/internal/agenda"
	"github.com/nibzard/agenda-go/internal/report"
	"github.com/nibzard/agenda-go/internal/utils"
)

// DefaultInterval is how often the viewer reloads its sources.
const DefaultInterval = 5 * time.Second

// Loader produces a fresh report. It is called on start, on every tick and
// when the user asks for a reload.
type Loader func(ctx context.Context) (*report.Report, error)

// Options configures the viewer.
type Options struct {
	// Long starts the viewer in long format.
	Long bool
	// Today is used to highlight overdue deadlines.
	Today int
	// Interval between automatic reloads. Zero uses DefaultInterval.
	Interval time.Duration
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	footerStyle  = lipgloss.NewStyle().Faint(true)

	priorityStyles = map[byte]lipgloss.Style{
		'A': lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		'B': lipgloss.NewStyle(),
		'C': lipgloss.NewStyle().Faint(true),
	}
)

// Run starts the viewer. It requires stdout to be a terminal.
func Run(ctx context.Context, load Loader, opts Options) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newModel(ctx, load, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type model struct {
	ctx      context.Context
	load     Loader
	interval time.Duration
	today    int

	rep      *report.Report
	loadErr  error
	loadedAt time.Time

	long     bool
	filter   byte // priority letter, 0 for none
	showHelp bool
}

type tickMsg time.Time

type reportMsg struct {
	rep *report.Report
	err error
	at  time.Time
}

func newModel(ctx context.Context, load Loader, opts Options) *model {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &model{
		ctx:      ctx,
		load:     load,
		interval: interval,
		today:    opts.Today,
		long:     opts.Long,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd(m.interval))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			return m, m.loadCmd()
		case "l":
			m.long = !m.long
		case "h", "?":
			m.showHelp = !m.showHelp
		case "a", "b", "c":
			m.filter = strings.ToUpper(key)[0]
		case "0":
			m.filter = 0
		}
	case tickMsg:
		return m, tea.Batch(m.loadCmd(), tickCmd(m.interval))
	case reportMsg:
		m.loadedAt = msg.at
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		m.rep = msg.rep
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Agenda") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		m.writeFooter(&b)
		return b.String()
	}

	if m.filter != 0 {
		fmt.Fprintf(&b, "Filter: priority %c (0 to clear)\n\n", m.filter)
	}

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error loading agenda:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
	}
	if m.rep == nil {
		if m.loadErr == nil {
			b.WriteString("Loading...\n\n")
		}
		m.writeFooter(&b)
		return b.String()
	}

	writeStats(&b, m.rep.Stats)
	m.writeTasks(&b)
	writeProblems(&b, m.rep)
	m.writeFooter(&b)
	return b.String()
}

// visible returns the records that pass the priority filter.
func (m *model) visible() []agenda.DisplayRecord {
	if m.rep == nil {
		return nil
	}
	if m.filter == 0 {
		return m.rep.Records
	}
	out := make([]agenda.DisplayRecord, 0, len(m.rep.Records))
	for _, rec := range m.rep.Records {
		if rec.PriorityLetter == m.filter {
			out = append(out, rec)
		}
	}
	return out
}

func (m *model) writeTasks(b *strings.Builder) {
	b.WriteString(headingStyle.Render("Next up") + "\n\n")
	records := m.visible()
	if len(records) == 0 {
		b.WriteString("  Nothing to do.\n\n")
		return
	}
	format := m.rep.Format(m.long)
	for _, rec := range records {
		b.WriteString("  " + m.renderRecord(rec, format) + "\n")
	}
	b.WriteString("\n")
}

func (m *model) renderRecord(rec agenda.DisplayRecord, format report.Format) string {
	style, ok := priorityStyles[rec.PriorityLetter]
	if !ok {
		style = lipgloss.NewStyle()
	}
	if rec.DueDate != "" && rec.DueDate < utils.FormatDay(m.today) {
		style = overdueStyle
	}
	return style.Render(format.Line(rec))
}

func writeStats(b *strings.Builder, s agenda.Stats) {
	fmt.Fprintf(b, "  Tasks: %d  Ready: %d  Blocked: %d  Done: %d\n\n", s.Total, s.Ready, s.Blocked, s.Done)
}

func writeProblems(b *strings.Builder, rep *report.Report) {
	if len(rep.ParseErrors) == 0 && len(rep.Warnings) == 0 {
		return
	}
	b.WriteString(headingStyle.Render("Problems") + "\n\n")
	for _, err := range rep.ParseErrors {
		b.WriteString("  " + errorStyle.Render(err.Error()) + "\n")
	}
	for _, w := range rep.Warnings {
		b.WriteString("  " + w + "\n")
	}
	b.WriteString("\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString(headingStyle.Render("Keyboard Shortcuts") + "\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Reload task files\n")
	b.WriteString("  l            Toggle long format\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  a, b, c      Show only priority A, B or C\n")
	b.WriteString("  0            Clear filter\n\n")
}

func (m *model) writeFooter(b *strings.Builder) {
	line := fmt.Sprintf("Press h for help | q to quit | Reloading every %s", m.interval)
	if !m.loadedAt.IsZero() {
		line += " | Loaded " + m.loadedAt.Format("15:04:05")
	}
	b.WriteString(footerStyle.Render(line) + "\n")
}

func (m *model) loadCmd() tea.Cmd {
	ctx, load := m.ctx, m.load
	return func() tea.Msg {
		rep, err := load(ctx)
		return reportMsg{rep: rep, err: err, at: time.Now()}
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
