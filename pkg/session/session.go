// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package session

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/walteh/incseq/pkg/config"
	"github.com/walteh/incseq/pkg/host"
	"github.com/walteh/incseq/pkg/match"
	"github.com/walteh/incseq/pkg/numeric"
	"github.com/walteh/incseq/pkg/sequence"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNothingToIncrement means the watched register was empty or had no
	// numeric run when a session tried to start.
	ErrNothingToIncrement = errors.Base("register has no number to increment")

	// ErrInvalidPromptInput means a configuration prompt was cancelled or
	// answered with something unparseable; the in-progress transition is
	// aborted.
	ErrInvalidPromptInput = errors.Base("invalid or cancelled prompt input")
)

// Mode selects which operation a trigger performs.
type Mode int

const (
	ModePaste Mode = iota
	ModeReplaceLine
	ModeReplaceMulti
)

func (m Mode) String() string {
	switch m {
	case ModePaste:
		return "paste"
	case ModeReplaceLine:
		return "replace-line"
	case ModeReplaceMulti:
		return "replace-multi"
	}
	return "unknown"
}

// ScopeKind selects how a multi-line replacement resolves its line range.
type ScopeKind int

const (
	// ScopeWhole covers every document line, ascending.
	ScopeWhole ScopeKind = iota
	// ScopeFromLine covers the lines from Line to one end of the document,
	// in the configured direction.
	ScopeFromLine
)

// 🗺️ Scope is the configured line range for ReplaceMulti. An explicit
// selection range on the trigger always overrides it.
type Scope struct {
	Kind ScopeKind
	Line int  // starting line for ScopeFromLine
	Up   bool // scan toward line 0 instead of toward the end
}

// State is the session lifecycle flag.
type State int

const (
	Uninitialized State = iota
	Active
)

// 🔔 TriggerEvent carries the document position a trigger originated from,
// plus the selection range when the host binding fired it over one.
type TriggerEvent struct {
	Line       int // line the cursor is on
	RangeStart int
	RangeEnd   int
	HasRange   bool
}

// ReportFunc receives the detailed report of a multi-line replacement when
// the configuration asks for one.
type ReportFunc func(match.Report)

// 🔧 Options wires a session to its host collaborators.
type Options struct {
	Register host.Register
	Document host.Document
	Prompter host.Prompter
	Notifier host.Notifier
	Config   *config.Config
	// Profile optionally pre-answers configuration prompts.
	Profile *config.Profile
	// Report optionally receives detailed multi-line reports.
	Report ReportFunc
}

// 🎮 Session is the mode state machine. There is exactly one live session
// per engine: it owns the counter, the configured scope and the snapshot of
// the watched register used for change detection. All handling is
// synchronous inside Trigger; recoverable failures are surfaced as a single
// notification and never corrupt the counter.
type Session struct {
	id    ulid.ULID
	state State
	mode  Mode
	scope Scope

	counter *sequence.Counter
	// registerRest preserves the lines of a multi-line register beyond the
	// first, untouched across write-backs.
	registerRest string
	registerType host.RegisterType
	snapshot     string
	snapshotGen  uint64

	// externalChange is set by the host's change-detection signal; the next
	// trigger treats the session as implicitly reset.
	externalChange bool

	opts Options
}

// 🏭 New creates an uninitialized session.
func New(opts Options) (*Session, error) {
	if opts.Register == nil {
		return nil, errors.Errorf("register is required")
	}
	if opts.Document == nil {
		return nil, errors.Errorf("document is required")
	}
	if opts.Prompter == nil {
		return nil, errors.Errorf("prompter is required")
	}
	if opts.Notifier == nil {
		return nil, errors.Errorf("notifier is required")
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	return &Session{
		id:   ulid.Make(),
		opts: opts,
	}, nil
}

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Mode returns the active mode; only meaningful while Active.
func (s *Session) Mode() Mode {
	return s.mode
}

// Counter exposes the sequence counter; nil while Uninitialized.
func (s *Session) Counter() *sequence.Counter {
	return s.counter
}

// 🔄 Reset unconditionally returns the session to Uninitialized.
func (s *Session) Reset() {
	s.state = Uninitialized
	s.counter = nil
	s.registerRest = ""
	s.snapshot = ""
	s.externalChange = false
}

// 📡 MarkExternalChange records the host's change-detection signal for the
// watched register. The session's only reaction is to reset implicitly on
// the next trigger.
func (s *Session) MarkExternalChange() {
	s.externalChange = true
}

// Placement resolves how a paste of the current register type is placed,
// honoring the force-linewise configuration flag.
func (s *Session) Placement() host.Placement {
	return host.PlacementFor(s.registerType, s.opts.Config.ForceLinewise)
}

// 🔔 Trigger runs one engine step. While Uninitialized it collects
// configuration through the prompting channel and, on success, performs the
// configured operation. While Active it first checks the watched register
// against the snapshot: a detected external change resets the session and
// re-runs the full prompt sequence with this same event, so stale
// configuration is never silently reused. Recoverable failures
// (nothing to increment, cancelled prompts, no match) are reported through
// the notifier and leave the counter untouched.
func (s *Session) Trigger(ctx context.Context, ev TriggerEvent) error {
	logger := zerolog.Ctx(ctx).With().Str("session", s.id.String()).Logger()
	ctx = logger.WithContext(ctx)

	if s.state == Active && s.changed() {
		logger.Debug().Msg("watched register changed externally, implicit reset")
		s.Reset()
	}

	if s.state == Uninitialized {
		if err := s.initialize(ctx, ev); err != nil {
			if errors.Is(err, ErrNothingToIncrement) {
				s.opts.Notifier.Notify(host.LevelWarn, "register has no number to increment")
				return nil
			}
			if errors.Is(err, ErrInvalidPromptInput) || errors.Is(err, host.ErrPromptCancelled) {
				s.opts.Notifier.Notify(host.LevelWarn, "configuration aborted")
				return nil
			}
			return err
		}
	}

	return s.dispatch(ctx, ev)
}

// changed reports whether the watched register no longer matches the
// session's snapshot. The content comparison is authoritative; the
// generation counter and the host's explicit signal both feed the same
// decision.
func (s *Session) changed() bool {
	if s.externalChange {
		return true
	}
	text, _ := s.opts.Register.Read()
	if text != s.snapshot {
		return true
	}
	return s.opts.Register.Generation() != s.snapshotGen
}

// initialize runs the Uninitialized transition: validate the watched
// content, collect configuration, seed the counter.
func (s *Session) initialize(ctx context.Context, ev TriggerEvent) error {
	text, typ := s.opts.Register.Read()
	if text == "" {
		return errors.WithStack(ErrNothingToIncrement)
	}
	if start, _ := numeric.NextRun(text, 0); start < 0 {
		return errors.WithStack(ErrNothingToIncrement)
	}

	answers, err := s.collectConfig(ctx, ev)
	if err != nil {
		return err
	}

	first, rest := splitFirstLine(text)
	counter, err := sequence.New(answers.sign, answers.step, first)
	if err != nil {
		return errors.Errorf("seeding counter: %w", err)
	}

	s.mode = answers.mode
	s.scope = answers.scope
	s.counter = counter
	s.registerRest = rest
	s.registerType = typ
	s.snapshot = text
	s.snapshotGen = s.opts.Register.Generation()
	s.externalChange = false
	s.state = Active

	if rest != "" {
		s.opts.Notifier.Notify(host.LevelWarn, "register is multi-line; only its first line is used as the template")
	}

	zerolog.Ctx(ctx).Debug().
		Stringer("mode", s.mode).
		Int("sign", counter.Sign).
		Int("step", counter.Step).
		Msg("session active")
	return nil
}

// writeBackRegister stores the counter's current text into the shared
// register, re-attaching any preserved trailing lines, and refreshes the
// snapshot.
func (s *Session) writeBackRegister() {
	text := s.counter.Current
	if s.registerRest != "" {
		text += "\n" + s.registerRest
	}
	s.opts.Register.Write(text, s.registerType)
	s.snapshot = text
	s.snapshotGen = s.opts.Register.Generation()
}

// splitFirstLine separates text into its first line and the remainder.
func splitFirstLine(text string) (first, rest string) {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i], text[i+1:]
	}
	return text, ""
}
