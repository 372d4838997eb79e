package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "answer.txt", studentTranscript)
	reportPath := filepath.Join(dir, "report.json")
	_, _, err := executeCommand(t, "assess", "-t", path, "-o", reportPath)
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, "validate", "--json", reportPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")

	bad := writeFile(t, dir, "bad.json", `{"speechAnalysis": {}}`)
	stdout, _, err = executeCommand(t, "validate", "--json", bad)
	require.Error(t, err)
	assert.Contains(t, stdout, "Validation failed")

	schema := writeFile(t, dir, "schema.json", `{"type": "object", "required": ["name"]}`)
	_, _, err = executeCommand(t, "validate", "-j", bad, "-s", schema)
	require.Error(t, err)
	good := writeFile(t, dir, "good.json", `{"name": "x"}`)
	stdout, _, err = executeCommand(t, "validate", "-j", good, "-s", schema)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")
}
