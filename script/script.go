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

// Package script classifies dictionary queries by the characters they are
// written in.
package script

import (
	"strings"
	"unicode/utf8"
)

const (
	// Hiragana is the set of hiragana accepted in readings.
	Hiragana = "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわゐゑをん" +
		"がぎぐげござじずぜぞだぢづでどばびぶべぼぱぴぷぺぽぁぃぅぇぉゃゅょっ"

	// Katakana is the set of katakana accepted in readings. It includes the
	// long vowel mark.
	Katakana = "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヰヱヲン" +
		"ヴガギグゲゴザジズゼゾダヂヅデドバビブベボパピプペポァィゥェォャュョッー"

	// Wildcards are the glob wildcard characters.
	Wildcards = "*?"
)

// Kind is the kind of dictionary field a query is compared against.
type Kind int

const (
	// KindGloss is an English (ASCII) query searched against glosses.
	KindGloss Kind = iota

	// KindReading is a kana query searched against readings.
	KindReading

	// KindWriting is a Japanese query searched against written forms.
	KindWriting
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGloss:
		return "gloss"
	case KindReading:
		return "reading"
	case KindWriting:
		return "writing"
	default:
		return "unknown"
	}
}

// IsASCII reports whether every character in s is in the ASCII range. The
// empty string is ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// IsReading reports whether s consists only of hiragana, katakana and glob
// wildcards. The empty string is a reading.
func IsReading(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(Hiragana, r) &&
			!strings.ContainsRune(Katakana, r) &&
			!strings.ContainsRune(Wildcards, r) {
			return false
		}
	}
	return true
}

// Classify returns the kind of field that the query should be searched
// against.
func Classify(query string) Kind {
	if IsASCII(query) {
		return KindGloss
	}
	if IsReading(query) {
		return KindReading
	}
	return KindWriting
}
