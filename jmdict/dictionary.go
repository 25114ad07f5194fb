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

import (
	"github.com/ianlewis/go-mjisho/glob"
	"github.com/ianlewis/go-mjisho/script"
	"github.com/ianlewis/go-mjisho/store"
)

// Dictionary is an in-memory JMdict dictionary. Lookups scan every entry;
// no search index is built.
type Dictionary struct {
	entries *store.Store[*Entry]
}

// New returns a new empty Dictionary.
func New() *Dictionary {
	return &Dictionary{
		entries: store.New[*Entry](),
	}
}

// Append adds an entry to the end of the dictionary. Append implements
// Appender.
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

// Lookup returns the entries matching the glob query. ASCII queries are
// matched against glosses, kana queries against readings and any other query
// against written forms. Results are in dictionary order and each entry is
// returned at most once.
func (d *Dictionary) Lookup(query string) []*Entry {
	switch script.Classify(query) {
	case script.KindGloss:
		return d.LookupGloss(query)
	case script.KindReading:
		return d.LookupReading(query)
	default:
		return d.LookupWriting(query)
	}
}

// LookupReading returns the entries with a reading matching query.
func (d *Dictionary) LookupReading(query string) []*Entry {
	p := glob.Compile(query)
	return d.entries.Filter(func(e *Entry) bool {
		return matchAny(p, e.Readings)
	})
}

// LookupWriting returns the entries with a written form matching query.
func (d *Dictionary) LookupWriting(query string) []*Entry {
	p := glob.Compile(query)
	return d.entries.Filter(func(e *Entry) bool {
		return matchAny(p, e.Writings)
	})
}

// LookupGloss returns the entries with a gloss in any sense matching query.
func (d *Dictionary) LookupGloss(query string) []*Entry {
	p := glob.Compile(query)
	return d.entries.Filter(func(e *Entry) bool {
		for _, s := range e.Senses {
			if matchAny(p, s.Glosses) {
				return true
			}
		}
		return false
	})
}

func matchAny(p glob.Pattern, values []string) bool {
	for _, v := range values {
		if p.Match(v) {
			return true
		}
	}
	return false
}
