// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding implements text folding of XML character data.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// TextFolder folds the character data of a dictionary field. Leading and
// trailing whitespace is removed, internal whitespace spans are replaced with
// a single ASCII space and control characters are dropped.
//
// Full-width spaces (U+3000) are whitespace and are folded as well.
type TextFolder struct {
	// started is true after the first emitted rune.
	started bool

	// pendingSpace is true while inside an internal whitespace span.
	pendingSpace bool
}

// New returns a new TextFolder as a [transform.Transformer].
func New() transform.Transformer {
	return &TextFolder{}
}

// Transform implements [transform.Transformer.Transform].
func (f *TextFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		switch {
		case unicode.IsSpace(c):
			nSrc += size
			// Leading whitespace is dropped. Trailing whitespace is never
			// emitted because the pending space is only flushed before a
			// following character.
			if f.started {
				f.pendingSpace = true
			}
			continue
		case unicode.IsControl(c):
			nSrc += size
			continue
		}

		need := utf8.RuneLen(c)
		if f.pendingSpace {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if f.pendingSpace {
			dst[nDst] = ' '
			nDst++
			f.pendingSpace = false
		}
		f.started = true
		nSrc += size

		// NOTE: c may be utf8.RuneError which is longer than size.
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *TextFolder) Reset() {
	*f = TextFolder{}
}
