package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressBar reports determinate progress while the generator writes
// template files.
type ProgressBar interface {
	// Increment advances the progress by n.
	Increment(n int)
	// SetTitle updates the label shown next to the bar.
	SetTitle(title string)
	// Done completes the bar and releases its resources.
	Done()
}

// Progress creates progress bars appropriate for the current mode.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
}

// progressImpl implements Progress.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to w. In headless mode (or with
// colors disabled) bars degrade to plain log lines.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return &logProgressBar{title: title, total: total, writer: p.writer}
	}
	return newTeaProgressBar(p.theme, title, total)
}

// --- bubbletea bar ---

type barIncrMsg int
type barTitleMsg string
type barDoneMsg struct{}

// barModel is the bubbletea Model for the animated progress bar.
type barModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newBarModel(theme *Theme, title string, total int) barModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	return barModel{bar: bar, title: title, total: total}
}

func (m barModel) Init() tea.Cmd { return nil }

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case barIncrMsg:
		m.current += int(msg)
		if m.current > m.total {
			m.current = m.total
		}
		return m, nil
	case barTitleMsg:
		m.title = string(msg)
		return m, nil
	case barDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m barModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + fmt.Sprintf(" [%d/%d] %s\n", m.current, m.total, m.title)
}

// teaProgressBar runs the bar model in a background tea program.
type teaProgressBar struct {
	program *tea.Program
	once    sync.Once
}

func newTeaProgressBar(theme *Theme, title string, total int) *teaProgressBar {
	p := tea.NewProgram(newBarModel(theme, title, total))
	b := &teaProgressBar{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return b
}

func (b *teaProgressBar) Increment(n int) {
	b.program.Send(barIncrMsg(n))
}

func (b *teaProgressBar) SetTitle(title string) {
	b.program.Send(barTitleMsg(title))
}

func (b *teaProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(barDoneMsg{})
		b.program.Wait()
	})
}

// --- log bar ---

// logProgressBar writes one log line per increment. Safe without a TTY.
type logProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
}

func (b *logProgressBar) Increment(n int) {
	b.current += n
	if b.current > b.total {
		b.current = b.total
	}
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

func (b *logProgressBar) SetTitle(title string) {
	b.title = title
}

func (b *logProgressBar) Done() {
	b.current = b.total
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// NopProgress returns a Progress whose bars do nothing. Used by tests and
// the preview path.
func NopProgress() Progress { return nopProgress{} }

type nopProgress struct{}

func (nopProgress) Start(string, int) ProgressBar { return nopBar{} }

type nopBar struct{}

func (nopBar) Increment(int)   {}
func (nopBar) SetTitle(string) {}
func (nopBar) Done()           {}
