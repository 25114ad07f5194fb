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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-mjisho/internal/testutil"
	"github.com/ianlewis/go-mjisho/jmdict"
)

// parse parses doc into a new Dictionary and returns it along with the
// results passed to the completion callback.
func parse(t *testing.T, doc string) (*jmdict.Dictionary, []jmdict.Result, error) {
	t.Helper()

	d := jmdict.New()
	var results []jmdict.Result
	p := jmdict.NewParser(strings.NewReader(doc), d, &jmdict.Options{
		OnComplete: func(r jmdict.Result) {
			results = append(results, r)
		},
	})
	err := p.Parse()
	return d, results, err
}

// TestParser_Parse tests Parser.Parse with well-formed documents.
func TestParser_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected []*jmdict.Entry
		skipped  int
	}{
		{
			name: "single entry",
			doc: `<JMdict><entry><ent_seq>1</ent_seq>` +
				`<k_ele><keb>保気</keb></k_ele>` +
				`<r_ele><reb>ほげ</reb></r_ele>` +
				`<sense><gloss>hoge</gloss></sense></entry></JMdict>`,
			expected: []*jmdict.Entry{
				{
					ID:       1,
					Readings: []string{"ほげ"},
					Writings: []string{"保気"},
					Senses: []*jmdict.Sense{
						{ID: 0, Glosses: []string{"hoge"}},
					},
				},
			},
		},
		{
			name: "multiple senses",
			doc: `<JMdict><entry><ent_seq>1000</ent_seq>` +
				`<r_ele><reb>ふが</reb></r_ele>` +
				`<r_ele><reb>フガ</reb></r_ele>` +
				`<sense><gloss>fuga</gloss><gloss>piyo</gloss></sense>` +
				`<sense></sense>` +
				`<sense><gloss>foo</gloss></sense></entry></JMdict>`,
			expected: []*jmdict.Entry{
				{
					ID:       1000,
					Readings: []string{"ふが", "フガ"},
					Senses: []*jmdict.Sense{
						{ID: 0, Glosses: []string{"fuga", "piyo"}},
						{ID: 1},
						{ID: 2, Glosses: []string{"foo"}},
					},
				},
			},
		},
		{
			name: "sense ids restart per entry",
			doc: `<JMdict>` +
				`<entry><ent_seq>1</ent_seq><sense><gloss>a</gloss></sense><sense><gloss>b</gloss></sense></entry>` +
				`<entry><ent_seq>2</ent_seq><sense><gloss>c</gloss></sense></entry>` +
				`</JMdict>`,
			expected: []*jmdict.Entry{
				{
					ID: 1,
					Senses: []*jmdict.Sense{
						{ID: 0, Glosses: []string{"a"}},
						{ID: 1, Glosses: []string{"b"}},
					},
				},
				{
					ID: 2,
					Senses: []*jmdict.Sense{
						{ID: 0, Glosses: []string{"c"}},
					},
				},
			},
		},
		{
			name: "whitespace folding",
			doc: "<JMdict>\n  <entry>\n    <ent_seq> 7 </ent_seq>\n" +
				"    <sense>\n      <gloss>\n  to   be\n  happy </gloss>\n    </sense>\n  </entry>\n</JMdict>\n",
			expected: []*jmdict.Entry{
				{
					ID: 7,
					Senses: []*jmdict.Sense{
						{ID: 0, Glosses: []string{"to be happy"}},
					},
				},
			},
		},
		{
			name: "doctype entities",
			doc: `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMdict [
<!ELEMENT JMdict (entry*)>
<!ENTITY n "noun (common) (futsuumeishi)">
]>
<JMdict><entry><ent_seq>3</ent_seq><sense><pos>&n;</pos><gloss>dog</gloss></sense></entry></JMdict>`,
			expected: []*jmdict.Entry{
				{
					ID: 3,
					Senses: []*jmdict.Sense{
						{ID: 0, Glosses: []string{"dog"}},
					},
				},
			},
		},
		{
			name: "missing id",
			doc: `<JMdict>` +
				`<entry><reb>なし</reb></entry>` +
				`<entry><ent_seq>2</ent_seq><reb>あり</reb></entry>` +
				`</JMdict>`,
			expected: []*jmdict.Entry{
				{ID: 2, Readings: []string{"あり"}},
			},
			skipped: 1,
		},
		{
			name: "invalid id",
			doc: `<JMdict>` +
				`<entry><ent_seq>abc</ent_seq><reb>なし</reb></entry>` +
				`<entry><ent_seq>2</ent_seq><reb>あり</reb></entry>` +
				`</JMdict>`,
			expected: []*jmdict.Entry{
				{ID: 2, Readings: []string{"あり"}},
			},
			skipped: 1,
		},
		{
			name: "text outside entry",
			doc:  `<JMdict><gloss>stray</gloss><entry><ent_seq>5</ent_seq></entry></JMdict>`,
			expected: []*jmdict.Entry{
				{ID: 5},
			},
		},
		{
			name: "empty document",
			doc:  `<JMdict></JMdict>`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, results, err := parse(t, test.doc)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}

			if diff := cmp.Diff(test.expected, d.Entries()); diff != "" {
				t.Errorf("Entries (-want, +got):\n%s", diff)
			}

			want := []jmdict.Result{
				{
					Entries: len(test.expected),
					Skipped: test.skipped,
				},
			}
			if diff := cmp.Diff(want, results, cmpopts.IgnoreFields(jmdict.Result{}, "Duration")); diff != "" {
				t.Errorf("results (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestParser_Parse_generated parses a document built from entries and checks
// that the same entries are read back.
func TestParser_Parse_generated(t *testing.T) {
	t.Parallel()

	entries := []*jmdict.Entry{
		jmdict.NewEntry(1000000, []string{"あ"}, []string{"亜"}, []*jmdict.Sense{
			{Glosses: []string{"Asia"}},
			{Glosses: []string{"rank next", "come after"}},
		}),
		jmdict.NewEntry(1000010, []string{"ほげ", "ホゲ"}, nil, []*jmdict.Sense{
			{Glosses: []string{"a & b <c>"}},
		}),
		jmdict.NewEntry(1000020, nil, []string{"保気"}, nil),
	}

	d := jmdict.New()
	p := jmdict.NewParser(bytes.NewReader(testutil.MakeJMdict(t, entries)), d, nil)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if diff := cmp.Diff(entries, d.Entries()); diff != "" {
		t.Errorf("Entries (-want, +got):\n%s", diff)
	}
}

// TestParser_Parse_aborted tests that parsing stops at the error marker and
// keeps the entries before it.
func TestParser_Parse_aborted(t *testing.T) {
	t.Parallel()

	doc := `<JMdict>` +
		`<entry><ent_seq>1</ent_seq><reb>いち</reb></entry>` +
		`<entry><ent_seq>2</ent_seq><reb>に</reb></entry>` +
		`<ERROR/>` +
		`<entry><ent_seq>3</ent_seq><reb>さん</reb></entry>` +
		`</JMdict>`

	d, results, err := parse(t, doc)
	if got, want := err, jmdict.ErrAborted; !errors.Is(got, want) {
		t.Fatalf("Parse: unexpected error, got: %v, want: %v", got, want)
	}

	want := []*jmdict.Entry{
		{ID: 1, Readings: []string{"いち"}},
		{ID: 2, Readings: []string{"に"}},
	}
	if diff := cmp.Diff(want, d.Entries()); diff != "" {
		t.Errorf("Entries (-want, +got):\n%s", diff)
	}

	if got, want := len(results), 1; got != want {
		t.Fatalf("OnComplete calls, got: %d, want: %d", got, want)
	}
	if got, want := results[0].Entries, 2; got != want {
		t.Errorf("Result.Entries, got: %d, want: %d", got, want)
	}
	if got, want := results[0].Err, jmdict.ErrAborted; !errors.Is(got, want) {
		t.Errorf("Result.Err, got: %v, want: %v", got, want)
	}
}

// TestParser_Parse_errors tests documents that fail to parse.
func TestParser_Parse_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected []*jmdict.Entry
		err      error
	}{
		{
			name: "unclosed element",
			doc:  `<JMdict><entry><ent_seq>1</ent_seq></entry><entry>`,
			expected: []*jmdict.Entry{
				{ID: 1},
			},
			err: jmdict.ErrSyntax,
		},
		{
			name: "mismatched element",
			doc:  `<JMdict><entry><ent_seq>1</ent_seq></sense></JMdict>`,
			err:  jmdict.ErrSyntax,
		},
		{
			name: "unknown entity",
			doc:  `<JMdict><entry><ent_seq>1</ent_seq><sense><pos>&bogus;</pos></sense></entry></JMdict>`,
			err:  jmdict.ErrSyntax,
		},
		{
			name: "error marker first",
			doc:  `<ERROR>`,
			err:  jmdict.ErrAborted,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, results, err := parse(t, test.doc)
			if got, want := err, test.err; !errors.Is(got, want) {
				t.Fatalf("Parse: unexpected error, got: %v, want: %v", got, want)
			}

			if diff := cmp.Diff(test.expected, d.Entries()); diff != "" {
				t.Errorf("Entries (-want, +got):\n%s", diff)
			}

			if got, want := len(results), 1; got != want {
				t.Fatalf("OnComplete calls, got: %d, want: %d", got, want)
			}
			if got, want := results[0].Err, test.err; !errors.Is(got, want) {
				t.Errorf("Result.Err, got: %v, want: %v", got, want)
			}
		})
	}
}

// TestParser_Parse_twice tests that a Parser only parses once and the
// completion callback only fires once.
func TestParser_Parse_twice(t *testing.T) {
	t.Parallel()

	d := jmdict.New()
	calls := 0
	p := jmdict.NewParser(strings.NewReader(`<JMdict><entry><ent_seq>1</ent_seq></entry></JMdict>`), d, &jmdict.Options{
		OnComplete: func(jmdict.Result) {
			calls++
		},
	})

	if err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := p.Parse(), jmdict.ErrAlreadyParsed; !errors.Is(got, want) {
		t.Errorf("Parse: unexpected error, got: %v, want: %v", got, want)
	}

	if got, want := calls, 1; got != want {
		t.Errorf("OnComplete calls, got: %d, want: %d", got, want)
	}
	if got, want := d.Len(), 1; got != want {
		t.Errorf("Len, got: %d, want: %d", got, want)
	}
}
