package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/station-farmer/models"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── countdownModel ───────────────────────────────────────────────────────────

func TestCountdownModel_View(t *testing.T) {
	m := newCountdownModel(3 * time.Second)

	view := m.View()

	assert.Contains(t, view, "Wait 3 seconds to continue loop")
	assert.Contains(t, view, "00h 00m 03s")
}

func TestCountdownModel_TickDecrements(t *testing.T) {
	m := newCountdownModel(3 * time.Second)

	updated, cmd := m.Update(timer.TickMsg{ID: m.timer.ID()})
	require.NotNil(t, cmd)

	assert.Contains(t, updated.View(), "Wait 2 seconds")
}

func TestCountdownModel_TickForOtherTimerIsIgnored(t *testing.T) {
	m := newCountdownModel(3 * time.Second)

	updated, _ := m.Update(timer.TickMsg{ID: m.timer.ID() + 1000})

	assert.Contains(t, updated.View(), "Wait 3 seconds")
}

func TestCountdownModel_TimeoutQuits(t *testing.T) {
	m := newCountdownModel(time.Second)

	updated, cmd := m.Update(timer.TimeoutMsg{ID: m.timer.ID()})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	cm := updated.(countdownModel)
	assert.True(t, cm.done)
	assert.False(t, cm.interrupted)
	assert.Empty(t, cm.View())
}

func TestCountdownModel_QuitKey(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		t.Run(k.String(), func(t *testing.T) {
			m := newCountdownModel(time.Minute)

			updated, cmd := m.Update(k)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.True(t, updated.(countdownModel).interrupted)
		})
	}
}

func TestCountdownModel_OtherKeysIgnored(t *testing.T) {
	m := newCountdownModel(time.Minute)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Nil(t, cmd)
	assert.False(t, updated.(countdownModel).interrupted)
}

// ── CountdownWaiter ──────────────────────────────────────────────────────────

func TestCountdownWaiter_PastDeadline(t *testing.T) {
	w := NewCountdownWaiter(strings.NewReader(""), &bytes.Buffer{})

	err := w.Wait(context.Background(), time.Now().Add(-time.Second))

	assert.NoError(t, err)
}

func TestCountdownWaiter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := NewCountdownWaiter(strings.NewReader(""), &bytes.Buffer{})

	err := w.Wait(ctx, time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, context.Canceled)
}

// ── Banner ───────────────────────────────────────────────────────────────────

func TestRenderBanner(t *testing.T) {
	out := RenderBanner(models.NewBuildInfo("sharded", "v1.2.0", "", "abc123"))

	assert.Contains(t, out, "TonStation farmer")
	assert.Contains(t, out, "sharded")
	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "abc123")
}
