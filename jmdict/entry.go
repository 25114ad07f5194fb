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

package jmdict

// Sense is one meaning of an Entry.
type Sense struct {
	// ID is assigned by the owning Entry and is only unique within it.
	ID int

	// Glosses are the English translations of the sense. A sense may have
	// no glosses.
	Glosses []string
}

// Entry is a JMdict dictionary entry.
type Entry struct {
	// ID is the entry's sequence number (ent_seq).
	ID int

	// Readings are the kana readings in document order.
	Readings []string

	// Writings are the written (kanji) forms in document order.
	Writings []string

	// Senses are the meanings of the entry in document order.
	Senses []*Sense
}

// NewEntry returns a new Entry. The senses are numbered in order starting
// from zero.
func NewEntry(id int, readings, writings []string, senses []*Sense) *Entry {
	e := &Entry{
		ID:       id,
		Readings: readings,
		Writings: writings,
	}
	for _, s := range senses {
		e.AddSense(s)
	}
	return e
}

// AddReading appends a reading.
func (e *Entry) AddReading(reading string) {
	e.Readings = append(e.Readings, reading)
}

// AddWriting appends a written form.
func (e *Entry) AddWriting(writing string) {
	e.Writings = append(e.Writings, writing)
}

// AddSense appends s and assigns it the next sense ID, which is the number of
// senses before it was added.
func (e *Entry) AddSense(s *Sense) {
	s.ID = len(e.Senses)
	e.Senses = append(e.Senses, s)
}

// Glosses returns the glosses of all senses in order.
func (e *Entry) Glosses() []string {
	var glosses []string
	for _, s := range e.Senses {
		glosses = append(glosses, s.Glosses...)
	}
	return glosses
}
