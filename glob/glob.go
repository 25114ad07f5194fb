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

// Package glob implements the two-wildcard glob patterns used to query
// dictionaries.
//
// A pattern is made up of three kinds of tokens:
//  1. '?' matches exactly one character.
//  2. '*' matches any run of characters, including the empty run.
//  3. Any other character matches itself.
//
// There is no escaping. '?' and '*' can never be matched literally. Characters
// are Unicode code points so that '?' matches a single kana or kanji.
package glob

const (
	// AnyOne matches exactly one character.
	AnyOne = '?'

	// AnyRun matches zero or more characters.
	AnyRun = '*'
)

// Pattern is a compiled glob pattern.
type Pattern struct {
	runes []rune
}

// Compile returns the Pattern for the given pattern text.
func Compile(pattern string) Pattern {
	return Pattern{runes: []rune(pattern)}
}

// String returns the pattern text.
func (p Pattern) String() string {
	return string(p.runes)
}

// Match reports whether input matches the pattern.
func (p Pattern) Match(input string) bool {
	return match([]rune(input), p.runes)
}

// Match reports whether input matches pattern.
func Match(input, pattern string) bool {
	return match([]rune(input), []rune(pattern))
}

func match(input, pattern []rune) bool {
	if len(input) == 0 {
		// Only a pattern consisting entirely of '*' matches the empty input.
		for _, r := range pattern {
			if r != AnyRun {
				return false
			}
		}
		return true
	}

	if len(pattern) == 0 {
		return false
	}

	// '*' is checked first so that it is always a wildcard, even when the
	// input contains a literal '*'.
	switch {
	case pattern[0] == AnyRun:
		return matchRun(input, pattern)
	case pattern[0] == input[0], pattern[0] == AnyOne:
		return match(input[1:], pattern[1:])
	default:
		return false
	}
}

// matchRun matches a pattern starting with '*' against every suffix of input.
func matchRun(input, pattern []rune) bool {
	for len(pattern) > 0 && pattern[0] == AnyRun {
		pattern = pattern[1:]
	}
	if len(pattern) == 0 {
		return true
	}

	for ; len(input) > 0; input = input[1:] {
		if match(input, pattern) {
			return true
		}
	}

	// The remaining pattern contains a non-'*' character so it cannot match
	// the empty suffix.
	return false
}
