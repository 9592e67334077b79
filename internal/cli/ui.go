package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uelog/uelog/internal/session"
	"github.com/uelog/uelog/internal/tui"
)

// UICmd launches an interactive viewer for a log file
type UICmd struct {
	File string `arg:"" required:"" help:"Log file to view"`
}

// Run executes the ui command
func (c *UICmd) Run(globals *Globals) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	sess := session.New(globals.Log)
	defer sess.Close()

	globals.Debug("Indexing %s for interactive view", c.File)
	if _, err := sess.Open(c.File); err != nil {
		return outputError(globals, err)
	}

	model := tui.New(sess)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer error: %w", err)
	}

	return nil
}
