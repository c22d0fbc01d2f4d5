package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arniber21/portfolio/internal/content"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		contentFile = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	setVersion("1.2.3")
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio 1.2.3\n", out)
}

func TestListCommandPrintsSection(t *testing.T) {
	out, err := runCLI(t, "list", "projects")
	require.NoError(t, err)
	portfolio, err := content.Default()
	require.NoError(t, err)
	for _, p := range portfolio.Projects {
		assert.Contains(t, out, p.Name)
	}
}

func TestListCommandRejectsUnknownSection(t *testing.T) {
	_, err := runCLI(t, "list", "hobbies")
	require.Error(t, err)
	assert.ErrorIs(t, err, content.ErrUnknownSection)
}

func TestListCommandReadsContentFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	data := `{"name":"Someone","links":[{"label":"GitHub","link":"https://github.com/someone"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	out, err := runCLI(t, "list", "links", "--content", path)
	require.NoError(t, err)
	assert.Contains(t, out, "GitHub")
	assert.Contains(t, out, "https://github.com/someone")
}

func TestThemeCommandSavesPreference(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"theme", "dark"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "THEME dark\n", out.String())

	data, err := os.ReadFile(filepath.Join(home, ".portfolio", "config.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"theme": "dark"`))

	out.Reset()
	rootCmd.SetArgs([]string{"theme"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "dark\n", out.String())
}

func TestThemeCommandMarksDefault(t *testing.T) {
	out, err := runCLI(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "system (default)\n", out)
}

func TestConfigureLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.log")
	closeLog, err := configureLogging(path, "debug")
	require.NoError(t, err)
	log.Debug("hello from test")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "component=cli")
}
