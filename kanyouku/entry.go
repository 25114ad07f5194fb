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

package kanyouku

// Mode is the verb form of an idiom phrase.
type Mode int

const (
	// ModeUndefined is used when the phrase has no known variant.
	ModeUndefined Mode = iota

	// ModeTransitive is the transitive (他動詞) form of a phrase.
	ModeTransitive

	// ModeIntransitive is the intransitive (自動詞) form of a phrase.
	ModeIntransitive
)

// ParseMode returns the Mode for a variant attribute value. Unknown values
// are ModeUndefined.
func ParseMode(variant string) Mode {
	switch variant {
	case "transitive":
		return ModeTransitive
	case "intransitive":
		return ModeIntransitive
	default:
		return ModeUndefined
	}
}

// String returns the variant name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTransitive:
		return "transitive"
	case ModeIntransitive:
		return "intransitive"
	case ModeUndefined:
		return "undefined"
	default:
		return "undefined"
	}
}

// Phrase is one surface form of an idiom.
type Phrase struct {
	// ID is unique within the document the phrase was read from.
	ID int

	// Reading is the kana reading (furigana) of the phrase.
	Reading string

	// Writing is the written form of the phrase.
	Writing string

	// Mode is the verb form of the phrase.
	Mode Mode
}

// Sense is one meaning of an idiom.
type Sense struct {
	// ID is unique within the document the sense was read from.
	ID int

	// Meaning is the explanation of the idiom.
	Meaning string

	// Example is a usage example.
	Example string
}

// Entry is an idiom dictionary entry. All phrases of an entry share its
// senses.
type Entry struct {
	// ID is the definition's id attribute.
	ID int

	Phrases  []*Phrase
	Senses   []*Sense
	Synonyms []string
	SeeAlso  []string
}

// AddPhrase appends a phrase.
func (e *Entry) AddPhrase(p *Phrase) {
	e.Phrases = append(e.Phrases, p)
}

// AddSense appends a sense.
func (e *Entry) AddSense(s *Sense) {
	e.Senses = append(e.Senses, s)
}

// AddSynonym appends a synonym.
func (e *Entry) AddSynonym(synonym string) {
	e.Synonyms = append(e.Synonyms, synonym)
}

// AddSeeAlso appends a related idiom.
func (e *Entry) AddSeeAlso(seeAlso string) {
	e.SeeAlso = append(e.SeeAlso, seeAlso)
}
