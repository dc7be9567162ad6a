package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/amp-ds/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp invokes the CLI the way main does and returns stdout and stderr.
func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := run(append([]string{"datastructs"}, args...), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRun_Default(t *testing.T) { //nolint:paralleltest
	stdout, _, err := runApp(t, "run")
	require.NoError(t, err)

	assert.Equal(t, `Ordered tree:
20 30 40 50 70

Prefix trie:
contains("elma") = true
contains("muz") = false

Priority queue:
extract-min: 5
extract-min: 10
`, stdout)
}

func TestRun_ScenarioFile(t *testing.T) { //nolint:paralleltest
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tree:\n  insert: [3, 1, 2]\n"), 0o600))

	stdout, _, err := runApp(t, "run", "--scenario", path)
	require.NoError(t, err)
	assert.Equal(t, "Ordered tree:\n1 2 3\n", stdout)
}

func TestRun_BadScenarioFile(t *testing.T) { //nolint:paralleltest
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stack:\n  push: [1]\n"), 0o600))

	stdout, stderr, err := runApp(t, "--log-json", "run", "-f", path)
	require.Error(t, err)
	assert.Empty(t, stdout)

	// The annotated path shows up as its own log attribute.
	assert.Contains(t, stderr, `"path":"`+path+`"`)
}

func TestTree(t *testing.T) { //nolint:paralleltest
	stdout, _, err := runApp(t, "tree", "--", "5", "-3", "5", "0")
	require.NoError(t, err)
	assert.Equal(t, "Ordered tree:\n-3 0 5 5\n", stdout)

	stdout, _, err = runApp(t, "tree", "--structure", "2", "1", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "L 1")
	assert.Contains(t, stdout, "R 3")

	_, _, err = runApp(t, "tree", "1", "two")
	require.ErrorIs(t, err, errNotInteger)
}

func TestTrie(t *testing.T) { //nolint:paralleltest
	stdout, _, err := runApp(t, "trie", "-q", "elma", "-q", "elm", "elma", "armut")
	require.NoError(t, err)
	assert.Equal(t, "Prefix trie:\ncontains(\"elma\") = true\ncontains(\"elm\") = false\n", stdout)
}

func TestQueue(t *testing.T) { //nolint:paralleltest
	stdout, _, err := runApp(t, "queue", "10", "15", "5")
	require.NoError(t, err)
	assert.Equal(t, "Priority queue:\nextract-min: 5\nextract-min: 10\nextract-min: 15\n", stdout)

	stdout, stderr, err := runApp(t, "--log-level", "warn", "queue", "--extract", "2", "7")
	require.NoError(t, err)
	assert.Equal(t, "Priority queue:\nextract-min: 7\nextract-min: empty\n", stdout)
	assert.Contains(t, stderr, "priority queue ran dry")
}

func TestLogLevel(t *testing.T) { //nolint:paralleltest
	_, _, err := runApp(t, "--log-level", "loud", "run")
	require.ErrorIs(t, err, logger.ErrInvalidLogLevel)
}
