package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesToConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	l := New(Options{Dir: dir})
	require.Equal(t, filepath.Join(dir, "bapsolve.log"), l.LogFile)
	require.NotNil(t, l.Logger)
}

func TestNewDefaultsLevelOnInvalidInput(t *testing.T) {
	l := New(Options{Dir: t.TempDir(), Level: "bogus"})
	require.NotNil(t, l.Logger)
}

func TestWithRunTagsChildLogger(t *testing.T) {
	l := New(Options{Dir: t.TempDir()})
	child := l.WithRun("run-42")
	require.NotNil(t, child.Logger)
	require.Equal(t, l.LogFile, child.LogFile)
	require.NotSame(t, l.Logger, child.Logger)
}

func TestNewLogsToConsoleWhenRequested(t *testing.T) {
	l := New(Options{Dir: t.TempDir(), Console: true})
	l.Info("hello", "k", "v")
}
