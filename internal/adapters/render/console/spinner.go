package console

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type actionDoneMsg struct {
	err error
}

type spinnerModel struct {
	spinner spinner.Model
	label   string
	action  tea.Cmd
	err     error
	done    bool
}

func newSpinnerModel(label string, action tea.Cmd) spinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(newStyles().busy),
	)

	return spinnerModel{
		spinner: s,
		label:   label,
		action:  action,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.action)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case actionDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// RunWithSpinner shows label with a spinner on output until action returns.
func RunWithSpinner(ctx context.Context, output io.Writer, label string, action func(context.Context) error) error {
	actionCmd := func() tea.Msg {
		return actionDoneMsg{err: action(ctx)}
	}

	p := tea.NewProgram(
		newSpinnerModel(label, actionCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(spinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
