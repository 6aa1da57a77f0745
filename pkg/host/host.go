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

// Package host declares the collaborator contracts the engine consumes: the
// shared register it watches, the line-addressed document, the blocking
// prompt channel and the notification channel. MemoryHost and LineBuffer are
// the in-tree implementations; an editor integration supplies its own.
package host

import (
	"gitlab.com/tozd/go/errors"
)

// ErrPromptCancelled is returned by a Prompter when the user aborts a
// prompt. Cancellation is a typed result, never control flow by panic.
var ErrPromptCancelled = errors.Base("prompt cancelled")

// 📋 RegisterType tags the payload of the shared register as line-oriented
// or character-oriented. The engine carries the tag through write-backs and
// uses it to decide paste placement.
type RegisterType int

const (
	Charwise RegisterType = iota
	Linewise
)

func (t RegisterType) String() string {
	if t == Linewise {
		return "linewise"
	}
	return "charwise"
}

// 📦 Register is the clipboard-like shared buffer the engine watches. The
// host bumps Generation whenever it overwrites the content itself, which is
// how the engine notices external changes between triggers; the session's
// snapshot comparison remains the authoritative check.
type Register interface {
	// Read returns the current content and its type tag.
	Read() (string, RegisterType)
	// Write replaces the content and tag.
	Write(text string, typ RegisterType)
	// Generation is a monotonic counter of host-side overwrites.
	Generation() uint64
}

// 📄 Document is the line-addressed view of the host's buffer. Lines are
// zero-indexed.
type Document interface {
	// Line returns the text of line i.
	Line(i int) (string, error)
	// SetLine replaces the text of line i.
	SetLine(i int, text string) error
	// LineCount returns the number of lines.
	LineCount() int
	// InsertLines inserts lines below line i.
	InsertLines(i int, lines []string) error
	// PlaceTextAtCursor places text inline at the cursor position.
	PlaceTextAtCursor(text string) error
	// CursorLine returns the line the cursor is on.
	CursorLine() int
	// Selection returns the current visual selection as an inclusive line
	// range, or ok=false when there is none.
	Selection() (start, end int, ok bool)
}

// 💬 Prompter is the blocking request/response channel used to collect
// configuration. Both methods return ErrPromptCancelled when the user
// aborts.
type Prompter interface {
	Prompt(question string) (string, error)
	Select(question string, options []string) (int, error)
}

// 📢 Level classifies a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// 📢 Notifier is the fire-and-forget reporting channel.
type Notifier interface {
	Notify(level Level, msg string)
}

// 📍 Placement tells the binding how pasted text should be placed relative
// to the cursor.
type Placement int

const (
	// PlaceInline puts the text after the cursor on the current line.
	PlaceInline Placement = iota
	// PlaceLinesBelow inserts the text as new lines below the cursor line.
	PlaceLinesBelow
)

// PlacementFor resolves the paste placement for a register tag: linewise
// payloads, or any payload when the configuration forces linewise, go below
// the cursor as new lines. Exact cursor mechanics belong to the binding.
func PlacementFor(typ RegisterType, forceLinewise bool) Placement {
	if typ == Linewise || forceLinewise {
		return PlaceLinesBelow
	}
	return PlaceInline
}
