package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("uživatel ukončil aplikaci")

// TUI owns the bubbletea program for the portal client.
type TUI struct {
	program *tea.Program
}

func New(root RootModel) *TUI {
	return &TUI{program: tea.NewProgram(root, tea.WithAltScreen())}
}

// Send forwards a message into the running UI loop. The client
// application uses it to pump session snapshots from the observer.
func (t *TUI) Send(msg tea.Msg) {
	t.program.Send(msg)
}

// Run blocks until the user leaves the program. A deliberate Ctrl+C
// exit is reported as ErrUserQuit so the caller can skip the error log.
func (t *TUI) Run() error {
	finalModel, err := t.program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
