package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/station-farmer/internal/utils"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// countdownModel shows the time left until the next pass, once per second.
type countdownModel struct {
	timer timer.Model

	done        bool
	interrupted bool
}

func newCountdownModel(d time.Duration) countdownModel {
	return countdownModel{timer: timer.NewWithInterval(d.Round(time.Second), time.Second)}
}

func (m countdownModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m countdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		if msg.ID != m.timer.ID() {
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.interrupted = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m countdownModel) View() string {
	if m.done || m.interrupted {
		return ""
	}

	left := m.timer.Timeout
	return countdownStyle.Render(fmt.Sprintf("Wait %d seconds to continue loop (%s)", int(left.Seconds()), utils.FormatRemaining(left))) +
		"\n" + helpStyle.Render("q: quit") + "\n"
}
