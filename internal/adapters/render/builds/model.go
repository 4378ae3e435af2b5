package builds

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avenk/nixdev-cli/internal/application"
	"github.com/avenk/nixdev-cli/internal/domain"
)

var ErrUnexpectedWatchModel = errors.New("unexpected final bubbletea model type")

type tickMsg time.Time

type snapshotMsg struct {
	snapshot domain.BuildSnapshot
	err      error
}

type watchModel struct {
	ctx   context.Context
	svc   *application.WatchService
	delay time.Duration

	width  int
	height int

	spinner  spinner.Model
	snapshot domain.BuildSnapshot
	scanned  bool
	err      error

	styles styles
}

func newWatchModel(ctx context.Context, svc *application.WatchService, delay time.Duration) watchModel {
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return watchModel{
		ctx:     ctx,
		svc:     svc,
		delay:   delay,
		spinner: s,
		styles:  newStyles(),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scan())
}

// scan runs under the watch context so quitting cancels an in-flight ps.
func (m watchModel) scan() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.svc.Snapshot(m.ctx)
		return snapshotMsg{snapshot: snapshot, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.scanned = true
		m.snapshot = msg.snapshot
		m.err = msg.err
		if m.err != nil {
			return m, tea.Quit
		}
		return m, tea.Tick(m.delay, func(t time.Time) tea.Msg { return tickMsg(t) })
	case tickMsg:
		return m, m.scan()
	case spinner.TickMsg:
		if m.scanned {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m watchModel) View() string {
	if m.err != nil {
		return ""
	}
	if !m.scanned {
		return m.spinner.View() + " Scanning nix builds..."
	}

	// Reserve the last terminal row for the footer.
	bodyHeight := 0
	if m.height > 0 {
		bodyHeight = m.height - 1
	}

	body := renderView(m.snapshot, m.width, bodyHeight, m.styles)
	return body + "\n" + m.styles.footer.Render("q to quit")
}

// Watch runs the live refresh loop until the user quits or a scan fails.
func Watch(ctx context.Context, svc *application.WatchService, delay time.Duration, output io.Writer) error {
	p := tea.NewProgram(
		newWatchModel(ctx, svc, delay),
		tea.WithOutput(output),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	final, ok := finalModel.(watchModel)
	if !ok {
		return ErrUnexpectedWatchModel
	}

	return final.err
}

// Render produces one static frame, for --once mode and for piping.
func Render(snapshot domain.BuildSnapshot) (string, error) {
	p := tea.NewProgram(
		newOnceModel(snapshot),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(onceModel)
	if !ok {
		return "", ErrUnexpectedWatchModel
	}

	return rendered.View(), nil
}

type renderReadyMsg struct{}

type onceModel struct {
	snapshot domain.BuildSnapshot
	styles   styles
	output   string
}

func newOnceModel(snapshot domain.BuildSnapshot) onceModel {
	return onceModel{
		snapshot: snapshot,
		styles:   newStyles(),
	}
}

func (m onceModel) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m onceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.snapshot, 0, 0, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m onceModel) View() string {
	return m.output
}
