package session

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/incseq/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// promptAnswers is the collected configuration of one initialization.
type promptAnswers struct {
	mode  Mode
	sign  int
	step  int
	scope Scope
}

var modeOptions = []string{
	"Paste incremented text",
	"Replace best match on current line",
	"Replace all matches across a range",
}

var scopeOptions = []string{
	"Whole file",
	"From a line, scanning down",
	"From a line, scanning up",
}

// collectConfig runs the prompt sequence in order: mode, then sign and step,
// then scope when the mode needs one and the trigger carries no explicit
// range. A matching profile pre-answers prompts. Any cancelled or malformed
// answer aborts the whole transition.
func (s *Session) collectConfig(ctx context.Context, ev TriggerEvent) (promptAnswers, error) {
	logger := zerolog.Ctx(ctx)
	var a promptAnswers

	mode, ok := profileMode(s.opts.Profile)
	if !ok {
		choice, err := s.opts.Prompter.Select("Mode", modeOptions)
		if err != nil {
			return a, errors.Errorf("mode prompt: %w", err)
		}
		mode = Mode(choice)
	}
	a.mode = mode

	if p := s.opts.Profile; p != nil && p.Step > 0 {
		a.sign = p.Sign
		if a.sign == 0 {
			a.sign = 1
		}
		a.step = p.Step
		logger.Debug().Str("glob", p.Glob).Int("sign", a.sign).Int("step", a.step).Msg("sign/step from profile")
	} else {
		answer, err := s.opts.Prompter.Prompt("Step (e.g. +1, -2, 10)")
		if err != nil {
			return a, errors.Errorf("step prompt: %w", err)
		}
		a.sign, a.step, err = parseSignStep(answer)
		if err != nil {
			return a, err
		}
	}

	if a.mode == ModeReplaceMulti && !ev.HasRange {
		scope, err := s.collectScope(ev)
		if err != nil {
			return a, err
		}
		a.scope = scope
	}

	return a, nil
}

// collectScope prompts for the multi-line scope configuration.
func (s *Session) collectScope(ev TriggerEvent) (Scope, error) {
	choice, err := s.opts.Prompter.Select("Scope", scopeOptions)
	if err != nil {
		return Scope{}, errors.Errorf("scope prompt: %w", err)
	}
	if choice == 0 {
		return Scope{Kind: ScopeWhole}, nil
	}

	answer, err := s.opts.Prompter.Prompt("Start line (empty for current)")
	if err != nil {
		return Scope{}, errors.Errorf("start line prompt: %w", err)
	}
	line := ev.Line
	if strings.TrimSpace(answer) != "" {
		// Line numbers are 1-based at the prompt boundary.
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil || n < 1 || n > s.opts.Document.LineCount() {
			return Scope{}, errors.Errorf("start line %q: %w", answer, ErrInvalidPromptInput)
		}
		line = n - 1
	}

	return Scope{Kind: ScopeFromLine, Line: line, Up: choice == 2}, nil
}

// parseSignStep parses a step answer of the form `[+|-]digits`.
func parseSignStep(answer string) (sign, step int, err error) {
	text := strings.TrimSpace(answer)
	sign = 1
	switch {
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	case strings.HasPrefix(text, "-"):
		sign = -1
		text = text[1:]
	}
	step, convErr := strconv.Atoi(text)
	if convErr != nil || step < 1 {
		return 0, 0, errors.Errorf("step %q: %w", answer, ErrInvalidPromptInput)
	}
	return sign, step, nil
}

// profileMode maps a profile's mode string onto a Mode.
func profileMode(p *config.Profile) (Mode, bool) {
	if p == nil {
		return 0, false
	}
	switch p.Mode {
	case "paste":
		return ModePaste, true
	case "replace-line":
		return ModeReplaceLine, true
	case "replace-multi":
		return ModeReplaceMulti, true
	}
	return 0, false
}
