package host

import (
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📄 LineBuffer is a file-backed Document used by the CLI binding. The whole
// file is held in memory as lines; Save writes it back in one pass. Undo and
// history stay with whatever host owns the file.
type LineBuffer struct {
	path     string
	lines    []string
	cursor   int
	selStart int
	selEnd   int
	hasSel   bool
	trailing bool // file ended with a newline
}

// LoadLineBuffer reads path into a buffer.
func LoadLineBuffer(path string) (*LineBuffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	text := string(data)
	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = strings.TrimSuffix(text, "\n")
	}
	lines := []string{}
	if text != "" || !trailing {
		lines = strings.Split(text, "\n")
	}

	return &LineBuffer{path: path, lines: lines, trailing: trailing}, nil
}

// Save writes the buffer back to its file.
func (b *LineBuffer) Save() error {
	text := strings.Join(b.lines, "\n")
	if b.trailing {
		text += "\n"
	}
	if err := os.WriteFile(b.path, []byte(text), 0o644); err != nil {
		return errors.Errorf("writing %s: %w", b.path, err)
	}
	return nil
}

// Path returns the backing file path.
func (b *LineBuffer) Path() string {
	return b.path
}

func (b *LineBuffer) Line(i int) (string, error) {
	if i < 0 || i >= len(b.lines) {
		return "", errors.Errorf("line %d out of range [0,%d)", i, len(b.lines))
	}
	return b.lines[i], nil
}

func (b *LineBuffer) SetLine(i int, text string) error {
	if i < 0 || i >= len(b.lines) {
		return errors.Errorf("line %d out of range [0,%d)", i, len(b.lines))
	}
	b.lines[i] = text
	return nil
}

func (b *LineBuffer) LineCount() int {
	return len(b.lines)
}

func (b *LineBuffer) InsertLines(i int, lines []string) error {
	if i < 0 || i > len(b.lines) {
		return errors.Errorf("insert position %d out of range [0,%d]", i, len(b.lines))
	}
	at := i + 1
	if at > len(b.lines) {
		at = len(b.lines)
	}
	b.lines = append(b.lines[:at], append(append([]string{}, lines...), b.lines[at:]...)...)
	return nil
}

// PlaceTextAtCursor appends text to the cursor line; the buffer does not
// track a column.
func (b *LineBuffer) PlaceTextAtCursor(text string) error {
	if len(b.lines) == 0 {
		b.lines = []string{text}
		return nil
	}
	if b.cursor < 0 || b.cursor >= len(b.lines) {
		return errors.Errorf("cursor line %d out of range [0,%d)", b.cursor, len(b.lines))
	}
	b.lines[b.cursor] += text
	return nil
}

func (b *LineBuffer) CursorLine() int {
	return b.cursor
}

// SetCursor moves the cursor, clamped to the buffer.
func (b *LineBuffer) SetCursor(i int) {
	if i < 0 {
		i = 0
	}
	if n := len(b.lines); n > 0 && i >= n {
		i = n - 1
	}
	b.cursor = i
}

func (b *LineBuffer) Selection() (int, int, bool) {
	return b.selStart, b.selEnd, b.hasSel
}

// SetSelection marks an inclusive line range as selected.
func (b *LineBuffer) SetSelection(start, end int) {
	b.selStart, b.selEnd, b.hasSel = start, end, true
}

// ClearSelection drops the selection.
func (b *LineBuffer) ClearSelection() {
	b.hasSel = false
}
