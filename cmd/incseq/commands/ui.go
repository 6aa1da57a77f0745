package commands

import (
	"github.com/pterm/pterm"
	"github.com/walteh/incseq/pkg/host"
	"gitlab.com/tozd/go/errors"
)

// 🧰 cliRegister is the in-process shared register of the CLI binding. Yank
// models the host overwriting the content (bumping the generation the engine
// watches); Write is the engine's own write-back and leaves it alone.
type cliRegister struct {
	text string
	typ  host.RegisterType
	gen  uint64
}

func (r *cliRegister) Read() (string, host.RegisterType) {
	return r.text, r.typ
}

func (r *cliRegister) Write(text string, typ host.RegisterType) {
	r.text = text
	r.typ = typ
}

func (r *cliRegister) Generation() uint64 {
	return r.gen
}

// Yank replaces the register content from the host side.
func (r *cliRegister) Yank(text string, typ host.RegisterType) {
	r.text = text
	r.typ = typ
	r.gen++
}

// 🖥️ terminalUI implements the prompting and notification channels on top
// of pterm's interactive components.
type terminalUI struct{}

func (t *terminalUI) Prompt(question string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.Show(question)
	if err != nil {
		return "", errors.Errorf("%s: %w", question, host.ErrPromptCancelled)
	}
	return answer, nil
}

func (t *terminalUI) Select(question string, options []string) (int, error) {
	answer, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(question).
		Show()
	if err != nil {
		return 0, errors.Errorf("%s: %w", question, host.ErrPromptCancelled)
	}
	for i, opt := range options {
		if opt == answer {
			return i, nil
		}
	}
	return 0, errors.Errorf("%s: %w", question, host.ErrPromptCancelled)
}

func (t *terminalUI) Notify(level host.Level, msg string) {
	switch level {
	case host.LevelWarn:
		pterm.Warning.Println(msg)
	case host.LevelError:
		pterm.Error.Println(msg)
	default:
		pterm.Info.Println(msg)
	}
}
