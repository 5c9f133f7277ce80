package cmdargs

import (
	"testing"

	"github.com/jwsohn/simpleopts/stdutil"
	"github.com/stretchr/testify/require"
)

func getTestArgs(args ...string) Args {
	// t - known no-parameter option
	// f - known single-parameter option
	return NewArgs(args).
		WithKnownOptions(stdutil.FormalOptionNames{
			"-t": true,
			"-f": false,
		}).
		WithAliases(map[string]string{
			"--toggle": "-t",
			"--foobar": "-f",
		})
}

func collectTokens(args Args) (res []Token) {
	args.IterateTokens(func(token Token) bool {
		res = append(res, token)
		return true
	})
	return res
}

func TestArgs_IterateTokens(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected []Token
	}{
		{
			name: "empty",
		},
		{
			name: "options_and_positional",
			args: []string{"-t", "-f", "42", "file.txt"},
			expected: []Token{
				{Arg: "-t", Name: "-t", Role: RoleOption | RoleKnown},
				{Arg: "-f", Name: "-f", Value: "42", Role: RoleOption | RoleKnown | RoleParameterized},
				{Arg: "file.txt", Role: RolePositional},
			},
		},
		{
			name: "aliases",
			args: []string{"a", "--toggle", "b", "--foobar", "x"},
			expected: []Token{
				{Arg: "a", Role: RolePositional},
				{Arg: "--toggle", Name: "-t", Role: RoleOption | RoleLong | RoleAliased | RoleKnown},
				{Arg: "b", Role: RolePositional},
				{
					Arg:   "--foobar",
					Name:  "-f",
					Value: "x",
					Role:  RoleOption | RoleLong | RoleAliased | RoleKnown | RoleParameterized,
				},
			},
		},
		{
			name: "value_missing_at_end",
			args: []string{"--foobar"},
			expected: []Token{
				{
					Arg:  "--foobar",
					Name: "-f",
					Role: RoleOption | RoleLong | RoleAliased | RoleKnown | RoleParameterized | RoleValueMissing,
				},
			},
		},
		{
			name: "value_looks_like_option",
			args: []string{"-f", "-t", "file"},
			expected: []Token{
				{
					Arg:   "-f",
					Name:  "-f",
					Value: "-t",
					Role:  RoleOption | RoleKnown | RoleParameterized | RoleValueMissing,
				},
				{Arg: "-t", Name: "-t", Role: RoleOption | RoleKnown},
				{Arg: "file", Role: RolePositional},
			},
		},
		{
			name: "unknown",
			args: []string{"-x", "--unknown", "-", ""},
			expected: []Token{
				{Arg: "-x", Name: "-x", Role: RoleOption},
				{Arg: "--unknown", Name: "--unknown", Role: RoleOption | RoleLong},
				{Arg: "-", Name: "-", Role: RoleOption},
				{Arg: "", Role: RolePositional},
			},
		},
		{
			name: "empty_value",
			args: []string{"-f", ""},
			expected: []Token{
				{Arg: "-f", Name: "-f", Value: "", Role: RoleOption | RoleKnown | RoleParameterized},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, collectTokens(getTestArgs(tc.args...)))
		})
	}
}

func TestArgs_IterateTokensStop(t *testing.T) {
	t.Parallel()
	var seen []string
	getTestArgs("a", "-t", "b").IterateTokens(func(token Token) bool {
		seen = append(seen, token.Arg)
		return token.Role.Has(RolePositional)
	})
	require.Equal(t, []string{"a", "-t"}, seen)
}

func TestArgs_Positional(t *testing.T) {
	t.Parallel()
	require.Nil(t, getTestArgs().Positional())
	require.Equal(
		t,
		[]string{"a", "b", "c", "a"},
		getTestArgs("a", "-f", "val", "b", "--toggle", "c", "-x", "a").Positional(),
	)
}

func TestArgs_Resolve(t *testing.T) {
	t.Parallel()
	args := getTestArgs()

	name, isAliased := args.Resolve("--toggle")
	require.True(t, isAliased)
	require.Equal(t, "-t", name)

	name, isAliased = args.Resolve("--other")
	require.False(t, isAliased)
	require.Equal(t, "--other", name)

	// aliases apply to double-dashed tokens only
	name, isAliased = args.WithAliases(map[string]string{"-x": "-t"}).Resolve("-x")
	require.False(t, isAliased)
	require.Equal(t, "-x", name)
}

func TestArgs_WithCopies(t *testing.T) {
	t.Parallel()
	base := NewArgs(nil).WithKnownOptions(stdutil.FormalOptionNames{"-a": true})
	extended := base.WithKnownOptions(stdutil.FormalOptionNames{"-b": false})
	require.Len(t, base.knownNames, 1)
	require.Len(t, extended.knownNames, 2)

	withAlias := base.WithAliases(map[string]string{"--aa": "-a"})
	require.Nil(t, base.aliases)
	require.Equal(t, map[string]string{"--aa": "-a"}, withAlias.aliases)
}

func TestToken_LongAndAliasedRoles(t *testing.T) {
	t.Parallel()
	tokens := collectTokens(getTestArgs("-t", "--toggle", "--unknown", "-f", "--foobar"))
	require.Len(t, tokens, 5)

	require.False(t, tokens[0].Role.Has(RoleLong))
	require.False(t, tokens[0].Role.Has(RoleAliased))
	require.True(t, tokens[1].Role.Has(RoleLong))
	require.True(t, tokens[1].Role.Has(RoleAliased))
	require.True(t, tokens[2].Role.Has(RoleLong))
	require.False(t, tokens[2].Role.Has(RoleAliased))
	// option-like value is not consumed and gets classified on its own
	require.Equal(t, "--foobar", tokens[3].Value)
	require.True(t, tokens[3].Role.Has(RoleValueMissing))
	require.False(t, tokens[3].Role.Has(RoleLong))
	require.Equal(t, "-f", tokens[4].Name)
	require.True(t, tokens[4].Role.Has(RoleLong))
	require.True(t, tokens[4].Role.Has(RoleAliased))
}
