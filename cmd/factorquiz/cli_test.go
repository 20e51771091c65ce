package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	localeFlag, verbose = "en", false
	questionsLimit, questionsSeed, questionsFormat = 0, 1, "text"
	reportPath, noBlend = "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestQuestionsCommand(t *testing.T) {
	out, err := execute(t, "questions", "--limit", "6", "--seed", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "#"))

	out, err = execute(t, "questions", "--limit", "4", "--format", "yaml", "--locale", "ko")
	require.NoError(t, err)
	var doc answerFile
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "ko", doc.Locale)
	assert.Len(t, doc.Questions, 4)

	_, err = execute(t, "questions", "--format", "xml")
	assert.Error(t, err)
}

func writeAnswers(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestScoreCommand(t *testing.T) {
	path := writeAnswers(t, `
locale: en
questions: [ei-01, sn-01, dividend-01, value-01]
answers:
  ei-01: 5
  dividend-01: 5
`)

	out, err := execute(t, "score", path, "--no-blend")
	require.NoError(t, err)
	assert.Contains(t, out, "Type: ESTJ (2/4 answered)")
	assert.Contains(t, out, "BASE")
	assert.Contains(t, out, "Dividend")

	csvPath := filepath.Join(t.TempDir(), "out.csv")
	_, err = execute(t, "score", path, "--report", csvPath)
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\ufeff"))
	assert.Contains(t, string(data), `"Dividend","100.0","10.0",`)

	dir := t.TempDir()
	_, err = execute(t, "score", path, "-o", dir)
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "factor-quiz-estj-"))
}

func TestScoreCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, "score", writeAnswers(t, "answers: {ei-01: 7}\n"))
	assert.ErrorContains(t, err, "answer out of range")

	_, err = execute(t, "score", writeAnswers(t, "questions: [nope]\n"))
	assert.ErrorContains(t, err, "unknown question")

	_, err = execute(t, "score", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
