package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestRenderCommand_HTML(t *testing.T) {
	out, err := executeRoot(t, "render", "--variant", "warning", "--size", "lg", "--class", "extra-class", "Needs", "review")
	require.NoError(t, err)

	assert.Equal(t,
		`<span class="inline-flex items-center font-bold rounded-full bg-yellow-400 text-black px-3 py-1.5 text-base extra-class" `+
			`style="font-family: var(--font-code); box-shadow: var(--shadow-card);">Needs review</span>`+"\n",
		out,
	)
}

func TestRenderCommand_Defaults(t *testing.T) {
	withDefaults, err := executeRoot(t, "render", "Draft")
	require.NoError(t, err)

	unknown, err := executeRoot(t, "render", "--variant", "primary", "--size", "xl", "Draft")
	require.NoError(t, err)

	assert.Equal(t, withDefaults, unknown)
	assert.Contains(t, withDefaults, "bg-gray-500 text-white dark:bg-gray-700 dark:text-gray-300 px-2.5 py-1 text-sm")
}

func TestRenderCommand_Strict(t *testing.T) {
	_, err := executeRoot(t, "render", "--strict", "--variant", "primary", "Draft")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown variant "primary"`)
}

func TestRenderCommand_ANSI(t *testing.T) {
	out, err := executeRoot(t, "render", "--format", "ansi", "--variant", "success", "Active")
	require.NoError(t, err)

	assert.Contains(t, out, "Active")
	assert.NotContains(t, out, "<span")
}

func TestRenderCommand_EnvConfig(t *testing.T) {
	t.Setenv("BADGE_VARIANT", "info")

	out, err := executeRoot(t, "render", "Note")
	require.NoError(t, err)
	assert.Contains(t, out, "bg-blue-500 text-white")
}

func TestRenderCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badges.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
badges:
  - text: Active
    variant: success
  - text: Failed
    variant: error
    size: sm
`), 0o644))

	out, err := executeRoot(t, "render", "--file", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "bg-green-500")
	assert.Contains(t, lines[0], ">Active</span>")
	assert.Contains(t, lines[1], "bg-red-500 text-white px-2 py-0.5 text-xs")
}

func TestRenderCommand_MissingText(t *testing.T) {
	_, err := executeRoot(t, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing badge text")
}

func TestRenderCommand_UnknownFormat(t *testing.T) {
	_, err := executeRoot(t, "render", "--format", "pdf", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "pdf"`)
}
