package simpleopts

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParser_PrintDefaults(t *testing.T) {
	t.Parallel()
	p := newTestParser(t)
	require.NoError(t, p.OptionUsage("-t", "No parameter option example"))
	require.NoError(t, p.OptionUsage("-f", "Single parameter option example\nsecond line"))
	require.NoError(t, p.SingleParameterOption("--name"))

	out := captureOutput(p, p.PrintDefaults)
	require.Equal(t,
		"  -t, --toggle\n"+
			"    \tNo parameter option example\n"+
			"  -f, --foobar <value>\n"+
			"    \tSingle parameter option example\n"+
			"    \tsecond line\n"+
			"  --name <value>\n",
		out,
	)
}

func TestParser_DefaultUsage(t *testing.T) {
	t.Parallel()

	t.Run("named", func(t *testing.T) {
		t.Parallel()
		p := NewParser("app", flag.ContinueOnError)
		require.NoError(t, p.NoParameterOption("-v"))
		require.NoError(t, p.Alias("-v", "--verbose"))
		require.NoError(t, p.OptionUsage("-v", "verbose output"))

		out := captureOutput(p, func() {
			require.NoError(t, p.Parse([]string{"app"}))
		})
		require.Equal(t, "Usage of app:\n  -v, --verbose\n    \tverbose output\n", out)
	})

	t.Run("unnamed", func(t *testing.T) {
		t.Parallel()
		p := NewParser("", flag.ContinueOnError)
		out := captureOutput(p, func() {
			require.NoError(t, p.Parse([]string{""}))
		})
		require.Equal(t, "Usage:\n", out)
	})
}
