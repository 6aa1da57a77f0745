package host

import (
	"gitlab.com/tozd/go/errors"
)

// 🧪 MemoryHost is an in-process implementation of every collaborator
// contract: register, document, prompter and notifier. It backs the engine's
// own tests and lets the engine be embedded without a real editor host.
// Prompt answers are scripted through the Answers and Choices queues; an
// exhausted queue behaves as a cancelled prompt.
type MemoryHost struct {
	Lines  []string
	Cursor int

	SelStart int
	SelEnd   int
	HasSel   bool

	regText string
	regType RegisterType
	regGen  uint64

	Answers []string
	Choices []int

	Notices []Notice
}

// 📢 Notice is one recorded notification.
type Notice struct {
	Level   Level
	Message string
}

// NewMemoryHost creates a host over the given document lines.
func NewMemoryHost(lines ...string) *MemoryHost {
	return &MemoryHost{Lines: lines}
}

// SetRegister simulates the host overwriting the shared register, bumping
// the generation like an external change would.
func (h *MemoryHost) SetRegister(text string, typ RegisterType) {
	h.regText = text
	h.regType = typ
	h.regGen++
}

func (h *MemoryHost) Read() (string, RegisterType) {
	return h.regText, h.regType
}

// Write is the engine's own write-back: it does not bump the generation,
// mirroring how an editor distinguishes its own register writes from the
// user yanking new content.
func (h *MemoryHost) Write(text string, typ RegisterType) {
	h.regText = text
	h.regType = typ
}

func (h *MemoryHost) Generation() uint64 {
	return h.regGen
}

func (h *MemoryHost) Line(i int) (string, error) {
	if i < 0 || i >= len(h.Lines) {
		return "", errors.Errorf("line %d out of range [0,%d)", i, len(h.Lines))
	}
	return h.Lines[i], nil
}

func (h *MemoryHost) SetLine(i int, text string) error {
	if i < 0 || i >= len(h.Lines) {
		return errors.Errorf("line %d out of range [0,%d)", i, len(h.Lines))
	}
	h.Lines[i] = text
	return nil
}

func (h *MemoryHost) LineCount() int {
	return len(h.Lines)
}

func (h *MemoryHost) InsertLines(i int, lines []string) error {
	if i < 0 || i > len(h.Lines) {
		return errors.Errorf("insert position %d out of range [0,%d]", i, len(h.Lines))
	}
	at := i + 1
	if at > len(h.Lines) {
		at = len(h.Lines)
	}
	h.Lines = append(h.Lines[:at], append(append([]string{}, lines...), h.Lines[at:]...)...)
	return nil
}

// PlaceTextAtCursor appends text to the cursor line. The memory host does
// not track a column, so "after the cursor" degrades to end of line.
func (h *MemoryHost) PlaceTextAtCursor(text string) error {
	if len(h.Lines) == 0 {
		h.Lines = []string{text}
		return nil
	}
	if h.Cursor < 0 || h.Cursor >= len(h.Lines) {
		return errors.Errorf("cursor line %d out of range [0,%d)", h.Cursor, len(h.Lines))
	}
	h.Lines[h.Cursor] += text
	return nil
}

func (h *MemoryHost) CursorLine() int {
	return h.Cursor
}

func (h *MemoryHost) Selection() (int, int, bool) {
	return h.SelStart, h.SelEnd, h.HasSel
}

func (h *MemoryHost) Prompt(question string) (string, error) {
	if len(h.Answers) == 0 {
		return "", errors.WithStack(ErrPromptCancelled)
	}
	answer := h.Answers[0]
	h.Answers = h.Answers[1:]
	return answer, nil
}

func (h *MemoryHost) Select(question string, options []string) (int, error) {
	if len(h.Choices) == 0 {
		return 0, errors.WithStack(ErrPromptCancelled)
	}
	choice := h.Choices[0]
	h.Choices = h.Choices[1:]
	if choice < 0 || choice >= len(options) {
		return 0, errors.Errorf("choice %d out of range for %d options", choice, len(options))
	}
	return choice, nil
}

func (h *MemoryHost) Notify(level Level, msg string) {
	h.Notices = append(h.Notices, Notice{Level: level, Message: msg})
}
