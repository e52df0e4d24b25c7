package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexplay/internal/playground"
	flexerrors "github.com/alexisbeaulieu97/flexplay/pkg/errors"
)

func runCSS(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"css"}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestCSSCommandDefaults(t *testing.T) {
	output, err := runCSS(t)
	require.NoError(t, err)

	require.Contains(t, output, "  display: flex;\n")
	require.Contains(t, output, "  padding: 0.7rem;\n")
	require.Contains(t, output, ".item-1 {\n  width: 60px;\n  height: auto;\n  padding: 0.75rem;\n")
	require.Contains(t, output, ".item-3 {")
}

func TestCSSCommandOverrides(t *testing.T) {
	output, err := runCSS(t,
		"--items", "4",
		"--select", "1",
		"--set", "flexDirection=column-reverse",
		"--set", "row_gap=2rem",
		"--set", "item.flex-grow=3",
		"--set", "order=-1",
	)
	require.NoError(t, err)

	require.Contains(t, output, "  flex-direction: column-reverse;\n")
	require.Contains(t, output, "  row-gap: 2rem;\n")
	require.Contains(t, output, ".item-4 {")
	require.Contains(t, output, ".item-2 {\n  width: auto;\n  height: 60px;\n  padding: 0.75rem;\n  flex-grow: 3;\n")
	require.Contains(t, output, "  order: -1;\n")
	require.Contains(t, output, ".item-1 {\n  width: auto;\n  height: 60px;\n  padding: 0.75rem;\n  flex-grow: 0;\n")
}

func TestCSSCommandClampsItems(t *testing.T) {
	output, err := runCSS(t, "--items", "40")
	require.NoError(t, err)

	require.Contains(t, output, ".item-12 {")
	require.NotContains(t, output, ".item-13 {")
}

func TestCSSCommandErrors(t *testing.T) {
	cases := []struct {
		name string
		set  string
		want string
	}{
		{name: "missing value separator", set: "gap", want: "expected name=value"},
		{name: "unknown scope", set: "wrapper.gap=1rem", want: "unknown scope"},
		{name: "unknown field", set: "colour=red", want: `unknown field "colour"`},
		{name: "item field in container scope", set: "container.order=1", want: `unknown container field "order"`},
		{name: "container field in item scope", set: "item.gap=1rem", want: `unknown item field "gap"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCSS(t, "--set", tc.set)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestApplySetScopes(t *testing.T) {
	session := playground.NewSession()

	require.NoError(t, applySet(session, " justify-content = space-between "))
	require.NoError(t, applySet(session, "ITEM.alignSelf=center"))

	require.Equal(t, playground.JustifySpaceBetween, session.Container().JustifyContent)
	require.Equal(t, playground.AlignSelfCenter, session.Item().AlignSelf)

	var unknown *flexerrors.UnknownFieldError
	require.ErrorAs(t, applySet(session, "nope=1"), &unknown)
	require.Equal(t, "nope", unknown.Name)
}

func TestCSSCommandDiff(t *testing.T) {
	output, err := runCSS(t, "--diff", "--set", "gap=2rem")
	require.NoError(t, err)

	require.Contains(t, output, "--- defaults.css\n+++ current.css\n")
	require.Contains(t, output, "-  gap: 0.5rem;\n")
	require.Contains(t, output, "+  gap: 2rem;\n")
	require.NotContains(t, output, "+  row-gap")
	require.True(t, strings.HasSuffix(output, "/* 1 addition, 1 deletion */\n"), output)
}

func TestCSSCommandDiffWithoutChanges(t *testing.T) {
	output, err := runCSS(t, "--diff", "--items", "5")
	require.NoError(t, err)

	require.Equal(t, "/* no changes from defaults */\n", output)
}
