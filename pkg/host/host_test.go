package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestPlacementFor(t *testing.T) {
	tests := []struct {
		name          string
		typ           RegisterType
		forceLinewise bool
		want          Placement
	}{
		{name: "charwise_inline", typ: Charwise, want: PlaceInline},
		{name: "linewise_below", typ: Linewise, want: PlaceLinesBelow},
		{name: "charwise_forced_below", typ: Charwise, forceLinewise: true, want: PlaceLinesBelow},
		{name: "linewise_forced_below", typ: Linewise, forceLinewise: true, want: PlaceLinesBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlacementFor(tt.typ, tt.forceLinewise))
		})
	}
}

func TestMemoryHost_RegisterGeneration(t *testing.T) {
	h := NewMemoryHost()

	h.SetRegister("yanked", Charwise)
	gen := h.Generation()

	// The engine's own write-back must not look like an external change.
	h.Write("written back", Charwise)
	assert.Equal(t, gen, h.Generation())

	h.SetRegister("yanked again", Linewise)
	assert.Equal(t, gen+1, h.Generation())

	text, typ := h.Read()
	assert.Equal(t, "yanked again", text)
	assert.Equal(t, Linewise, typ)
}

func TestMemoryHost_Document(t *testing.T) {
	h := NewMemoryHost("a", "b", "c")

	require.Equal(t, 3, h.LineCount())

	line, err := h.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "b", line)

	_, err = h.Line(3)
	require.Error(t, err)

	require.NoError(t, h.SetLine(2, "z"))
	assert.Equal(t, []string{"a", "b", "z"}, h.Lines)

	require.NoError(t, h.InsertLines(0, []string{"x", "y"}))
	assert.Equal(t, []string{"a", "x", "y", "b", "z"}, h.Lines)

	h.Cursor = 1
	require.NoError(t, h.PlaceTextAtCursor("!"))
	assert.Equal(t, "x!", h.Lines[1])
}

func TestMemoryHost_ScriptedPrompts(t *testing.T) {
	h := NewMemoryHost()
	h.Answers = []string{"+1"}
	h.Choices = []int{2}

	answer, err := h.Prompt("step?")
	require.NoError(t, err)
	assert.Equal(t, "+1", answer)

	_, err = h.Prompt("again?")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPromptCancelled))

	choice, err := h.Select("mode?", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 2, choice)

	_, err = h.Select("again?", []string{"a"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPromptCancelled))
}

func TestLineBuffer_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644))

	buf, err := LoadLineBuffer(path)
	require.NoError(t, err)
	assert.Equal(t, 3, buf.LineCount())

	require.NoError(t, buf.SetLine(1, "TWO"))
	require.NoError(t, buf.InsertLines(2, []string{"four"}))
	require.NoError(t, buf.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\nTWO\nthree\nfour\n", string(data))
}

func TestLineBuffer_NoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("solo"), 0o644))

	buf, err := LoadLineBuffer(path)
	require.NoError(t, err)
	require.Equal(t, 1, buf.LineCount())

	require.NoError(t, buf.Save())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "solo", string(data))
}

func TestLineBuffer_CursorAndSelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\n"), 0o644))

	buf, err := LoadLineBuffer(path)
	require.NoError(t, err)

	buf.SetCursor(99)
	assert.Equal(t, 2, buf.CursorLine())

	_, _, ok := buf.Selection()
	assert.False(t, ok)

	buf.SetSelection(0, 1)
	start, end, ok := buf.Selection()
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, end)

	buf.ClearSelection()
	_, _, ok = buf.Selection()
	assert.False(t, ok)
}
