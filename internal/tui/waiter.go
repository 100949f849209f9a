package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/station-farmer/internal/workers"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// CountdownWaiter waits for the next pass while rendering a live countdown.
type CountdownWaiter struct {
	in  io.Reader
	out io.Writer
}

// NewCountdownWaiter returns a waiter reading keys from in and rendering to
// out.
func NewCountdownWaiter(in io.Reader, out io.Writer) *CountdownWaiter {
	return &CountdownWaiter{in: in, out: out}
}

// Wait implements [workers.Waiter]. It returns [ErrInterrupted] when the user
// quits the countdown.
func (w *CountdownWaiter) Wait(ctx context.Context, until time.Time) error {
	d := time.Until(until)
	if d <= 0 {
		return nil
	}

	p := tea.NewProgram(newCountdownModel(d),
		tea.WithContext(ctx),
		tea.WithInput(w.in),
		tea.WithOutput(w.out),
	)
	final, err := p.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return ErrInterrupted
		}
		return fmt.Errorf("countdown: %w", err)
	}

	if m, ok := final.(countdownModel); ok && m.interrupted {
		return ErrInterrupted
	}
	return nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SelectWaiter returns a countdown waiter when both stdin and stdout are
// terminals and fallback otherwise.
func SelectWaiter(fallback workers.Waiter) workers.Waiter {
	if IsTerminal(os.Stdin) && IsTerminal(os.Stdout) {
		return NewCountdownWaiter(os.Stdin, os.Stdout)
	}
	return fallback
}
