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

package numeric

import (
	"strconv"
	"strings"
)

// 🔢 Token is a recognized numeric run: an optional leading '-' followed by
// one or more ASCII digits. Raw keeps the original text so that width and
// sign can be preserved when the value is reformatted.
type Token struct {
	Raw   string // Original text of the run
	Value int    // Parsed integer value
}

// 🔍 Parse recognizes text matching the numeric grammar. It returns false for
// anything else: empty strings, a bare '-', text with trailing garbage.
func Parse(text string) (Token, bool) {
	if !IsNumeric(text) {
		return Token{}, false
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		// Out of int range. Treat as non-numeric rather than overflow.
		return Token{}, false
	}
	return Token{Raw: text, Value: value}, true
}

// 🔍 IsNumeric reports whether text matches `-?[0-9]+` in full.
func IsNumeric(text string) bool {
	if text == "" {
		return false
	}
	digits := text
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !IsDigit(digits[i]) {
			return false
		}
	}
	return true
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// 📝 Format renders newValue in the width of originalRaw. The digit width is
// measured on originalRaw with any leading '-' stripped; abs(newValue) is
// zero-padded up to that width. Width is never truncated: a value that needs
// more digits than the original is emitted unpadded. A negative newValue gets
// a '-' prefix regardless of the original sign.
func Format(originalRaw string, newValue int) string {
	width := len(strings.TrimPrefix(originalRaw, "-"))

	abs := newValue
	if abs < 0 {
		abs = -abs
	}
	digits := strconv.Itoa(abs)
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}

	if newValue < 0 {
		return "-" + digits
	}
	return digits
}

// ➕ Increment parses raw, adds sign*step and reformats in the original
// width. Non-numeric input passes through unchanged, so a broader scan that
// hands this function an incidental non-numeric run leaves it untouched.
func Increment(raw string, sign, step int) string {
	tok, ok := Parse(raw)
	if !ok {
		return raw
	}
	return Format(tok.Raw, tok.Value+sign*step)
}

// ➕ IncrementAll applies Increment to every maximal numeric run in text,
// left to right, leaving everything between the runs as-is.
func IncrementAll(text string, sign, step int) string {
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(text) {
		start, end := NextRun(text, i)
		if start < 0 {
			b.WriteString(text[i:])
			break
		}
		b.WriteString(text[i:start])
		b.WriteString(Increment(text[start:end], sign, step))
		i = end
	}
	return b.String()
}

// 🔍 NextRun finds the next maximal numeric run in text at or after offset
// from. It returns the half-open span [start, end), or (-1, -1) when no run
// remains. A '-' is part of the run only when immediately followed by a digit.
func NextRun(text string, from int) (start, end int) {
	for i := from; i < len(text); i++ {
		c := text[i]
		if c == '-' && i+1 < len(text) && IsDigit(text[i+1]) {
			start = i
		} else if IsDigit(c) {
			start = i
		} else {
			continue
		}
		end = start + 1
		if text[start] == '-' {
			end++
		}
		for end < len(text) && IsDigit(text[end]) {
			end++
		}
		return start, end
	}
	return -1, -1
}
