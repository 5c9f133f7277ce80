package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwsohn/simpleopts"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		require.NoError(t, run(&out, []string{"app", "-t", "-f", "42", "file.txt"}))
		require.Contains(t, out.String(), "# No parameter option list\n[-t]\n")
		require.Contains(t, out.String(), "# Single parameter option list\n[-f]\n")
		require.Contains(t, out.String(), "# Option values\n-f: \"42\"\n-t: <present>\n")
		require.Contains(t, out.String(), "# Aliases\n--foobar: -f\n--toggle: -t\n")
		require.Contains(t, out.String(), "# Arguments\n[file.txt]\n")
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		require.NoError(t, run(&out, []string{"app"}))
		require.Contains(t, out.String(), "Usage: application [options] ... [files] ...\n")
		require.Contains(t, out.String(), "# Arguments\n[]\n")
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		err := run(&out, []string{"app", "--foobar"})
		require.ErrorIs(t, err, simpleopts.ErrMissingParameter)
		require.Contains(t, out.String(), "Error: option --foobar has no parameter\n")
	})
}
