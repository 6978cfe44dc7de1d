package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/wlcinput/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgramConfig holds configuration for running a UI program
type ProgramConfig struct {
	AltScreen    bool
	Input        io.Reader // nil means the terminal
	Output       io.Writer // nil means the terminal
	QuitDeadline time.Duration
}

// DefaultProgramConfig returns default configuration
func DefaultProgramConfig() ProgramConfig {
	return ProgramConfig{
		AltScreen:    true,
		QuitDeadline: 2 * time.Second,
	}
}

// ProgramRunner runs a Bubble Tea program until it exits or its context is
// cancelled
type ProgramRunner struct {
	config  ProgramConfig
	program *tea.Program
	done    chan struct{}
}

// NewProgramRunner creates a new program runner
func NewProgramRunner(config ProgramConfig) *ProgramRunner {
	if config.QuitDeadline <= 0 {
		config.QuitDeadline = 2 * time.Second
	}
	return &ProgramRunner{
		config: config,
		done:   make(chan struct{}),
	}
}

// Run starts the program with model and blocks until it exits
func (r *ProgramRunner) Run(ctx context.Context, model tea.Model) error {
	defer close(r.done)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.config.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if r.config.Input != nil {
		opts = append(opts, tea.WithInput(r.config.Input))
	}
	if r.config.Output != nil {
		opts = append(opts, tea.WithOutput(r.config.Output))
	}

	r.program = tea.NewProgram(model, opts...)

	errCh := make(chan error, 1)
	go func() {
		_, err := r.program.Run()
		errCh <- err
	}()

	select {
	case err := <-errCh:
		return programError(ctx, err)
	case <-ctx.Done():
		r.program.Quit()
		select {
		case err := <-errCh:
			return programError(ctx, err)
		case <-time.After(r.config.QuitDeadline):
			logger.Warn("UI did not quit in time, killing it")
			r.program.Kill()
			<-errCh
			return nil
		}
	}
}

// programError drops the error Bubble Tea reports for a cancelled context
func programError(ctx context.Context, err error) error {
	if err == nil || ctx.Err() != nil {
		return nil
	}
	return fmt.Errorf("ui program: %w", err)
}

// Send sends a message to the running program
func (r *ProgramRunner) Send(msg tea.Msg) {
	if r.program != nil {
		r.program.Send(msg)
	}
}

// Quit asks the program to exit
func (r *ProgramRunner) Quit() {
	if r.program != nil {
		r.program.Quit()
	}
}

// Done returns a channel that's closed when the program exits
func (r *ProgramRunner) Done() <-chan struct{} {
	return r.done
}
