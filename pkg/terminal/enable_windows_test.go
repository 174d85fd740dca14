//go:build windows
// +build windows

package terminal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termctl/pkg/errors"
	"github.com/arthur-debert/termctl/pkg/terminal"
)

func TestEnableANSIOnPipeReportsHandleUnavailable(t *testing.T) {
	// A pipe handle is not a console, so the console rejects it when
	// its mode is queried. That is the expected shape of redirected
	// output, not a failure of the console API.
	redirectPipe(t, terminal.Stdout)

	err := terminal.EnableANSI(terminal.Stdout)
	require.Error(t, err)

	var enableErr *terminal.EnableError
	require.ErrorAs(t, err, &enableErr)
	assert.Equal(t, terminal.Stdout, enableErr.Pipe)
	assert.Equal(t, errors.ErrHandleUnavailable, enableErr.Code)
	assert.Error(t, enableErr.Err)
}

func TestEnableANSIOnConsoleIdempotent(t *testing.T) {
	if !terminal.IsTerminal(terminal.Stdout) {
		t.Skip("stdout is not a console")
	}

	require.NoError(t, terminal.EnableANSI(terminal.Stdout))
	require.NoError(t, terminal.EnableANSI(terminal.Stdout))
}
