package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typednotes/livemd/internal/ui"
)

func TestNewStyles_Dark(t *testing.T) {
	styles := ui.NewStyles("dark", true)
	require.NotNil(t, styles)

	assert.True(t, styles.Strong.GetBold())
	assert.True(t, styles.Em.GetItalic())
	assert.Equal(t, lipgloss.Color("12"), styles.H1.GetForeground())
}

func TestNewStyles_Light(t *testing.T) {
	styles := ui.NewStyles("light", true)
	require.NotNil(t, styles)

	assert.Equal(t, lipgloss.Color("4"), styles.H1.GetForeground())
	assert.Equal(t, lipgloss.Color("2"), styles.TokString.GetForeground())
}

func TestNewStyles_UnknownThemeFallsBackToDark(t *testing.T) {
	styles := ui.NewStyles("solarized", true)

	assert.Equal(t, lipgloss.Color("12"), styles.H1.GetForeground())
}

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := ui.NewStyles("dark", false)
	require.NotNil(t, styles)

	// No-color styles must pass text through unmodified.
	text := "test"
	assert.Equal(t, text, styles.Strong.Render(text))
	assert.Equal(t, text, styles.H1.Render(text))
	assert.Equal(t, text, styles.ForClass("md-em").Render(text))
}

func TestForClass_KnownClasses(t *testing.T) {
	styles := ui.NewStyles("dark", true)

	assert.True(t, styles.ForClass("md-strong").GetBold())
	assert.True(t, styles.ForClass("md-em").GetItalic())
	assert.True(t, styles.ForClass("md-strike").GetStrikethrough())
	assert.True(t, styles.ForClass("md-link").GetUnderline())
	assert.True(t, styles.ForClass("tok-comment").GetItalic())
	assert.True(t, styles.ForClass("md-h3").GetBold())
}

func TestForClass_MultiClassUsesFirstKnown(t *testing.T) {
	styles := ui.NewStyles("dark", true)

	got := styles.ForClass("md-code-block md-code-block-first")
	assert.Equal(t, styles.CodeBlock.GetForeground(), got.GetForeground())
}

func TestForClass_UnknownRendersPlain(t *testing.T) {
	styles := ui.NewStyles("dark", false)

	assert.Equal(t, "plain", styles.ForClass("md-mystery").Render("plain"))
	assert.Equal(t, "plain", styles.ForClass("").Render("plain"))
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ui.IsColorEnabled("always", &buf))
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, ui.IsColorEnabled("never", os.Stdout))
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	// bytes.Buffer is not a TTY
	var buf bytes.Buffer
	assert.False(t, ui.IsColorEnabled("auto", &buf))
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	// Even with a TTY, NO_COLOR should disable colors
	assert.False(t, ui.IsColorEnabled("auto", os.Stdout))
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, ui.IsColorEnabled("", &buf))
	assert.False(t, ui.IsColorEnabled("unknown", &buf))
}
