package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewLogger_GlobalLevelIsDebug verifies that NewLogger sets the global
// zerolog level to Debug.
func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("level-role")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNop_NotNil verifies that Nop returns a non-nil *Logger.
func TestNop_NotNil(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_NotNil verifies that GetChildLogger returns a non-nil *Logger.
func TestGetChildLogger_NotNil(t *testing.T) {
	parent := NewLogger("parent")
	child := parent.GetChildLogger()
	require.NotNil(t, child)
}

// TestGetChildLogger_IsIndependent verifies that the child logger is a
// distinct instance from the parent.
func TestGetChildLogger_IsIndependent(t *testing.T) {
	parent := NewLogger("parent")
	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	// пишем через child, буфер общий
	child.Logger = child.Output(&buf)
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

// TestWithAccount_AddsFields verifies that account-scoped loggers tag entries
// with the account number and the proxy IP.
func TestWithAccount_AddsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("farmer")
	parent.Logger = parent.Output(&buf)

	l := parent.WithAccount(3, "203.0.113.7")
	l.Info().Msg("login successful")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(3), entry[AccountField])
	assert.Equal(t, "203.0.113.7", entry[IPField])
	assert.Equal(t, "farmer", entry["role"])
}

// TestWithAccount_OmitsEmptyIP verifies that the ip field is absent for direct
// (unproxied) accounts.
func TestWithAccount_OmitsEmptyIP(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("farmer")
	parent.Logger = parent.Output(&buf)

	parent.WithAccount(1, "").Info().Msg("direct")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasIP := entry[IPField]
	assert.False(t, hasIP)
}

// TestWithContext_RoundTrip verifies that a logger attached with WithContext
// is returned by FromContext.
func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}
	ctx := l.WithAccount(7, "").WithContext(context.Background())

	FromContext(ctx).Warn().Msg("from ctx")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(7), entry[AccountField])
	assert.Equal(t, "warn", entry["level"])
}

// TestNewConsoleLogger_HumanReadable verifies that the console logger renders
// plain text rather than JSON.
func TestNewConsoleLogger_HumanReadable(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger("farmer")
	require.NotNil(t, l)
	l.Logger = l.Output(zerolog.ConsoleWriter{Out: &buf, NoColor: true})

	l.WithAccount(2, "198.51.100.1").Error().Msg("login failed")

	out := buf.String()
	assert.Contains(t, out, "login failed")
	assert.Contains(t, out, "account=2")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}

// ── FromContextOr ────────────────────────────────────────────────────────────

func TestFromContextOr(t *testing.T) {
	fallback := Nop()

	// пустой контекст: возвращается запасной логгер
	assert.Same(t, fallback, FromContextOr(context.Background(), fallback))

	// отключённый логгер в контексте тоже не используется
	assert.Same(t, fallback, FromContextOr(zerolog.Nop().WithContext(context.Background()), fallback))

	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str(PassField, "p1").Logger()
	got := FromContextOr(attached.WithContext(context.Background()), fallback)
	require.NotSame(t, fallback, got)

	got.Info().Msg("from ctx")
	assert.Contains(t, buf.String(), `"pass_id":"p1"`)
}
