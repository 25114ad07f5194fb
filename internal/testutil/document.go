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

package testutil

import (
	"bytes"
	"compress/gzip"
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-mjisho/jmdict"
	"github.com/ianlewis/go-mjisho/kanyouku"
)

type MakeDocumentOptions struct {
	// Ext is an optional file extension for the document. Defaults to
	// '.xml.dz' if DictZip is true, '.xml.gz' if Gzip is true, and '.xml'
	// otherwise.
	Ext string

	// Gzip indicates that the document should be compressed with gzip.
	Gzip bool

	// DictZip indicates that the document should be compressed with DictZip.
	// DictZip takes precedence over Gzip.
	DictZip bool
}

func (o *MakeDocumentOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".xml.dz"
		}
		if o.Gzip {
			return ".xml.gz"
		}
	}
	return ".xml"
}

// WriteDocument writes doc to dir/base plus the extension given by opts and
// returns the file's path.
func WriteDocument(t *testing.T, dir, base string, doc []byte, opts *MakeDocumentOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeDocumentOptions{}
	}

	path := filepath.Join(dir, base+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(doc); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts.Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(doc); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(doc); err != nil {
			t.Fatal(err)
		}
	}

	return path
}

// MakeTempDocument writes doc to a new file in a temporary directory and
// returns the file's path.
func MakeTempDocument(t *testing.T, doc []byte, opts *MakeDocumentOptions) string {
	t.Helper()
	return WriteDocument(t, t.TempDir(), "mjisho", doc, opts)
}

// MakeJMdict creates a test JMdict document. Entries are written with their
// ID as the ent_seq.
func MakeJMdict(t *testing.T, entries []*jmdict.Entry) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString("<JMdict>\n")
	for _, e := range entries {
		b.WriteString("<entry>\n")
		writeElement(t, &b, "ent_seq", strconv.Itoa(e.ID))
		for _, w := range e.Writings {
			b.WriteString("<k_ele>")
			writeElement(t, &b, "keb", w)
			b.WriteString("</k_ele>\n")
		}
		for _, r := range e.Readings {
			b.WriteString("<r_ele>")
			writeElement(t, &b, "reb", r)
			b.WriteString("</r_ele>\n")
		}
		for _, s := range e.Senses {
			b.WriteString("<sense>\n")
			for _, g := range s.Glosses {
				writeElement(t, &b, "gloss", g)
			}
			b.WriteString("</sense>\n")
		}
		b.WriteString("</entry>\n")
	}
	b.WriteString("</JMdict>\n")

	return b.Bytes()
}

// MakeKanyouku creates a test idiom document. Phrase and sense ids are not
// written since they are assigned when the document is read.
func MakeKanyouku(t *testing.T, entries []*kanyouku.Entry) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString("<kanyouku>\n")
	for _, e := range entries {
		b.WriteString(`<definition id="` + strconv.Itoa(e.ID) + `">` + "\n")
		for _, p := range e.Phrases {
			b.WriteString(`<phrase furigana="`)
			escape(t, &b, p.Reading)
			b.WriteString(`"`)
			if p.Mode != kanyouku.ModeUndefined {
				b.WriteString(` variant="` + p.Mode.String() + `"`)
			}
			b.WriteString(">")
			escape(t, &b, p.Writing)
			b.WriteString("</phrase>\n")
		}
		for _, s := range e.Senses {
			b.WriteString("<sense>\n")
			writeElement(t, &b, "meaning", s.Meaning)
			if s.Example != "" {
				writeElement(t, &b, "example", s.Example)
			}
			b.WriteString("</sense>\n")
		}
		for _, s := range e.Synonyms {
			writeElement(t, &b, "synonym", s)
		}
		for _, s := range e.SeeAlso {
			writeElement(t, &b, "see-also", s)
		}
		b.WriteString("</definition>\n")
	}
	b.WriteString("</kanyouku>\n")

	return b.Bytes()
}

func writeElement(t *testing.T, b *bytes.Buffer, name, text string) {
	t.Helper()
	b.WriteString("<" + name + ">")
	escape(t, b, text)
	b.WriteString("</" + name + ">\n")
}

func escape(t *testing.T, b *bytes.Buffer, text string) {
	t.Helper()
	if err := xml.EscapeText(b, []byte(text)); err != nil {
		t.Fatal(err)
	}
}
