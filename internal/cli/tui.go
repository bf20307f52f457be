package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"dayflow/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Habits, ctx.Tasks, ctx.Now), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
