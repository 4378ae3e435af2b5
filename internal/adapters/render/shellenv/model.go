package shellenv

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avenk/nixdev-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	descriptor domain.Descriptor
	styles     styles
	output     string
}

func newModel(descriptor domain.Descriptor) model {
	return model{
		descriptor: descriptor,
		styles:     newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.descriptor, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(descriptor domain.Descriptor) (string, error) {
	p := tea.NewProgram(
		newModel(descriptor),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
