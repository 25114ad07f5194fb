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

package jmdict_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-mjisho/jmdict"
)

func testDictionary() *jmdict.Dictionary {
	d := jmdict.New()
	d.Append(jmdict.NewEntry(1, []string{"ほげ"}, []string{"保気"}, []*jmdict.Sense{
		{Glosses: []string{"hoge"}},
	}))
	d.Append(jmdict.NewEntry(2, []string{"ふが", "ほげほげ"}, []string{"不我"}, []*jmdict.Sense{
		{Glosses: []string{"fuga"}},
		{Glosses: []string{"hogehoge", "hoge fuga"}},
	}))
	d.Append(jmdict.NewEntry(3, []string{"ぴよ"}, nil, []*jmdict.Sense{
		{Glosses: []string{"piyo"}},
	}))
	return d
}

func ids(entries []*jmdict.Entry) []int {
	var result []int
	for _, e := range entries {
		result = append(result, e.ID)
	}
	return result
}

// TestDictionary_Lookup tests Dictionary.Lookup.
func TestDictionary_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected []int
	}{
		{
			name:     "writing",
			query:    "保気",
			expected: []int{1},
		},
		{
			name:     "reading",
			query:    "ほげ",
			expected: []int{1},
		},
		{
			name:     "gloss",
			query:    "hoge",
			expected: []int{1},
		},
		{
			name:     "reading glob",
			query:    "ほげ*",
			expected: []int{1, 2},
		},
		{
			name:     "gloss glob matches once per entry",
			query:    "hoge*",
			expected: []int{1, 2},
		},
		{
			name:     "gloss any one",
			query:    "?iyo",
			expected: []int{3},
		},
		{
			name:     "writing glob",
			query:    "*気",
			expected: []int{1},
		},
		{
			name:     "match all glosses",
			query:    "*",
			expected: []int{1, 2, 3},
		},
		{
			name:  "no match",
			query: "ない",
		},
		{
			name:  "case sensitive",
			query: "HOGE",
		},
		{
			name:  "katakana is not hiragana",
			query: "ホゲ",
		},
	}

	d := testDictionary()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, ids(d.Lookup(test.query))); diff != "" {
				t.Errorf("Lookup(%q) (-want, +got):\n%s", test.query, diff)
			}
		})
	}
}

// TestDictionary_LookupField tests the field specific lookups.
func TestDictionary_LookupField(t *testing.T) {
	t.Parallel()

	d := testDictionary()

	if diff := cmp.Diff([]int{1}, ids(d.LookupWriting("保気"))); diff != "" {
		t.Errorf("LookupWriting (-want, +got):\n%s", diff)
	}
	// Readings are not searched for writings.
	if diff := cmp.Diff([]int(nil), ids(d.LookupWriting("ほげ"))); diff != "" {
		t.Errorf("LookupWriting (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, ids(d.LookupReading("ふが"))); diff != "" {
		t.Errorf("LookupReading (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, ids(d.LookupGloss("hoge fuga"))); diff != "" {
		t.Errorf("LookupGloss (-want, +got):\n%s", diff)
	}
}

// TestDictionary_Clear tests Dictionary.Clear.
func TestDictionary_Clear(t *testing.T) {
	t.Parallel()

	d := testDictionary()
	if got, want := d.Len(), 3; got != want {
		t.Fatalf("Len, got: %d, want: %d", got, want)
	}

	d.Clear()
	d.Clear()

	if got, want := d.Len(), 0; got != want {
		t.Errorf("Len, got: %d, want: %d", got, want)
	}
	if got := d.Lookup("*"); len(got) != 0 {
		t.Errorf("Lookup after Clear, got: %v, want: none", ids(got))
	}

	d.Append(jmdict.NewEntry(4, []string{"ほげ"}, nil, nil))
	if diff := cmp.Diff([]int{4}, ids(d.Lookup("ほげ"))); diff != "" {
		t.Errorf("Lookup after Append (-want, +got):\n%s", diff)
	}
}

// TestNewEntry tests that NewEntry numbers senses.
func TestNewEntry(t *testing.T) {
	t.Parallel()

	e := jmdict.NewEntry(1, nil, nil, []*jmdict.Sense{
		{ID: 10, Glosses: []string{"a"}},
		{ID: 10, Glosses: []string{"b", "c"}},
	})
	e.AddSense(&jmdict.Sense{Glosses: []string{"d"}})

	want := &jmdict.Entry{
		ID: 1,
		Senses: []*jmdict.Sense{
			{ID: 0, Glosses: []string{"a"}},
			{ID: 1, Glosses: []string{"b", "c"}},
			{ID: 2, Glosses: []string{"d"}},
		},
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("NewEntry (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, e.Glosses()); diff != "" {
		t.Errorf("Glosses (-want, +got):\n%s", diff)
	}
}
