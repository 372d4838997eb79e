package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions(t *testing.T) {
	stdout, _, err := executeCommand(t, "questions")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 19)
	assert.Equal(t, " 1. [daily-routine] Tell me about your typical day and daily routine.", lines[0])

	stdout, _, err = executeCommand(t, "questions", "--random")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 1)

	stdout, _, err = executeCommand(t, "questions", "--json")
	require.NoError(t, err)
	var list []map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &list))
	assert.Len(t, list, 19)
	assert.Equal(t, "motivation", list[18]["id"])
}
