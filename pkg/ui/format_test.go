package ui_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termctl/pkg/errors"
	"github.com/arthur-debert/termctl/pkg/terminal"
	"github.com/arthur-debert/termctl/pkg/ui"
)

// redirectStdout rebinds stdout to the write end of an os.Pipe for the
// duration of the test, the way a shell redirection would.
func redirectStdout(t *testing.T) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	t.Cleanup(func() {
		os.Stdout = orig
		_ = r.Close()
		_ = w.Close()
	})
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		name     string
		format   ui.Format
		expected string
	}{
		{
			name:     "auto format",
			format:   ui.FormatAuto,
			expected: "auto",
		},
		{
			name:     "terminal format",
			format:   ui.FormatTerminal,
			expected: "term",
		},
		{
			name:     "text format",
			format:   ui.FormatText,
			expected: "text",
		},
		{
			name:     "json format",
			format:   ui.FormatJSON,
			expected: "json",
		},
		{
			name:     "unknown format",
			format:   ui.Format(999),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{
			name:     "parse auto",
			input:    "auto",
			expected: ui.FormatAuto,
		},
		{
			name:     "parse empty string as auto",
			input:    "",
			expected: ui.FormatAuto,
		},
		{
			name:     "parse term",
			input:    "term",
			expected: ui.FormatTerminal,
		},
		{
			name:     "parse terminal",
			input:    "terminal",
			expected: ui.FormatTerminal,
		},
		{
			name:     "parse text",
			input:    "text",
			expected: ui.FormatText,
		},
		{
			name:     "parse plain",
			input:    "plain",
			expected: ui.FormatText,
		},
		{
			name:     "parse json",
			input:    "json",
			expected: ui.FormatJSON,
		},
		{
			name:     "parse uppercase",
			input:    "TERM",
			expected: ui.FormatTerminal,
		},
		{
			name:    "parse invalid format",
			input:   "yaml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, format)
			}
		})
	}
}

func TestDetectFormatRedirected(t *testing.T) {
	// A redirected stream never gets styling, whatever the environment.
	redirectStdout(t)

	assert.Equal(t, ui.FormatText, ui.DetectFormat(terminal.Stdout))
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, ui.FormatText, ui.DetectFormat(terminal.Stdout))
	assert.Equal(t, ui.FormatText, ui.DetectFormat(terminal.Stderr))
}

func TestDetectFormatPerPipe(t *testing.T) {
	// Redirecting stdout must not change what stderr resolves to.
	before := ui.DetectFormat(terminal.Stderr)

	redirectStdout(t)

	assert.Equal(t, ui.FormatText, ui.DetectFormat(terminal.Stdout))
	assert.Equal(t, before, ui.DetectFormat(terminal.Stderr))
}

func TestResolve(t *testing.T) {
	redirectStdout(t)

	t.Run("auto resolves through detection", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, terminal.Stdout))
	})

	t.Run("explicit formats pass through", func(t *testing.T) {
		assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatTerminal, terminal.Stdout))
		assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatText, terminal.Stdout))
		assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, terminal.Stdout))
	})
}
