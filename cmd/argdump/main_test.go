package main

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janert/prefixarg"
)

func TestRun_PrintsValues(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"alice", "-cou", "4", "-lev", "debug"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	require.Equal(t, []string{"Name", "string", "alice"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"Count", "int", "4"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"Timeout", "time.Duration", "30s"}, strings.Fields(lines[2]))
	require.Equal(t, []string{"Level", "slog.Level", "DEBUG"}, strings.Fields(lines[4]))
	require.Equal(t, []string{"Verbose", "bool", "false"}, strings.Fields(lines[5]))
}

func TestRun_MissingName(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, []string{"-count", "2"})
	require.ErrorIs(t, err, prefixarg.ErrRequiredArgumentMissing)
	require.Empty(t, out.String())

	var coder interface{ ExitCode() int }
	require.True(t, errors.As(err, &coder))
	require.Equal(t, 2, coder.ExitCode())
}

func TestRun_PositionalsSkipBound(t *testing.T) {
	t.Setenv("ARGDUMP_POSITIONALS", "skip-bound")
	out := &bytes.Buffer{}

	// Name is set by key, so "7" goes to Count
	err := run(out, []string{"-n", "bob", "7"})
	require.NoError(t, err)

	lines := strings.Split(out.String(), "\n")
	require.Equal(t, []string{"Name", "string", "bob"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"Count", "int", "7"}, strings.Fields(lines[1]))
}

func TestRun_BadValue(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"x", "-since", "yesterday"})
	require.ErrorIs(t, err, prefixarg.ErrTypeConversion)
	require.Contains(t, err.Error(), "Since")
}

func TestLevelFromEnv(t *testing.T) {
	require.Equal(t, slog.LevelDebug, levelFromEnv("debug"))
	require.Equal(t, slog.LevelWarn, levelFromEnv("WARN"))
	require.Equal(t, slog.LevelInfo, levelFromEnv(""))
	require.Equal(t, slog.LevelInfo, levelFromEnv("loud"))
}
