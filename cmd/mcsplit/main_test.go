package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	quiet = false
	verbose = false
	connected = false
	timeoutS = 0
}

func TestRunSearchPrintsSolutionsAndSummary(t *testing.T) {
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"../../testdata/two_edges_g0.txt", "../../testdata/two_edges_g1.txt"})

	require.NoError(t, rootCmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Solutions:                  2")
	assert.Contains(t, text, "Nodes:")
	assert.Contains(t, text, "CPU time (ms):")
}

func TestRunSearchQuietSuppressesPerSolutionLines(t *testing.T) {
	resetFlags()
	quiet = true
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"-q", "../../testdata/triangle.txt", "../../testdata/path3.txt"})

	require.NoError(t, rootCmd.Execute())

	text := out.String()
	assert.NotContains(t, text, "(0 0)")
	assert.Contains(t, text, "Solutions:                  12")
}

func TestRunSearchMissingFileReportsCannotOpen(t *testing.T) {
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"does-not-exist-0.txt", "does-not-exist-1.txt"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), "Cannot open file")
}
