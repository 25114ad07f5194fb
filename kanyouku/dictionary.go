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

import (
	"github.com/ianlewis/go-mjisho/glob"
	"github.com/ianlewis/go-mjisho/script"
	"github.com/ianlewis/go-mjisho/store"
)

// Dictionary is an in-memory idiom dictionary.
type Dictionary struct {
	entries *store.Store[*Entry]
}

// New returns a new empty Dictionary.
func New() *Dictionary {
	return &Dictionary{
		entries: store.New[*Entry](),
	}
}

// Append adds an entry to the end of the dictionary.
func (d *Dictionary) Append(e *Entry) {
	d.entries.Append(e)
}

// Clear discards all entries.
func (d *Dictionary) Clear() {
	d.entries.Clear()
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return d.entries.Len()
}

// Entries returns all entries in the order they were appended.
func (d *Dictionary) Entries() []*Entry {
	return d.entries.All()
}

// Lookup returns the entries with a phrase matching the glob query. Kana
// queries are matched against phrase readings, all others against phrase
// writings. Idioms have no English fields.
func (d *Dictionary) Lookup(query string) []*Entry {
	if script.IsReading(query) {
		return d.LookupReading(query)
	}
	return d.LookupWriting(query)
}

// LookupReading returns the entries with a phrase reading matching query.
func (d *Dictionary) LookupReading(query string) []*Entry {
	p := glob.Compile(query)
	return d.entries.Filter(func(e *Entry) bool {
		for _, ph := range e.Phrases {
			if p.Match(ph.Reading) {
				return true
			}
		}
		return false
	})
}

// LookupWriting returns the entries with a phrase writing matching query.
func (d *Dictionary) LookupWriting(query string) []*Entry {
	p := glob.Compile(query)
	return d.entries.Filter(func(e *Entry) bool {
		for _, ph := range e.Phrases {
			if p.Match(ph.Writing) {
				return true
			}
		}
		return false
	})
}
