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

// Package xmlstream reads an XML document as a stream of element and text
// events without loading the document into memory.
package xmlstream

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-mjisho/internal/folding"
)

var (
	// ErrSyntax indicates that the document is not well-formed XML.
	ErrSyntax = errors.New("xml syntax error")

	// ErrRead indicates that the document could not be read.
	ErrRead = errors.New("reading xml")

	// ErrCharset indicates that the document's declared encoding is not
	// supported.
	ErrCharset = errors.New("unsupported charset")

	// ErrAborted indicates that the document contained the error marker
	// element.
	ErrAborted = errors.New("parsing aborted")
)

// ErrorMarker is the name of the element that aborts parsing when present in
// a document.
const ErrorMarker = "ERROR"

// entityDecl matches internal general entity declarations in a DOCTYPE.
var entityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%"']+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// Handler receives document events in document order.
type Handler interface {
	// StartElement is called when an element is opened. attrs maps local
	// attribute names to values.
	StartElement(name string, attrs map[string]string) error

	// EndElement is called when an element is closed.
	EndElement(name string) error

	// Text is called with the folded character data found between two
	// element events. It is not called when the text folds to nothing.
	Text(text string) error
}

// Options are options for reading a document.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding on
	// character data before it is passed to the Handler.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for Parse.
var DefaultOptions = &Options{
	Folder: folding.New,
}

// Parse reads the XML document from r and calls h for each event. Parse stops
// at the first error returned by h and returns it unchanged.
func Parse(r io.Reader, h Handler, options *Options) error {
	if options == nil {
		options = DefaultOptions
	}
	folder := DefaultOptions.Folder
	if options.Folder != nil {
		folder = options.Folder
	}

	d := xml.NewDecoder(r)
	d.Entity = map[string]string{}
	d.CharsetReader = charsetReader

	// Character data may arrive in several tokens (e.g. split by comments
	// or CDATA sections) and is delivered to the handler as one text event.
	var text bytes.Buffer
	flush := func() error {
		if text.Len() == 0 {
			return nil
		}
		folded, _, err := transform.Bytes(folder(), text.Bytes())
		text.Reset()
		if err != nil {
			return fmt.Errorf("folding text: %w", err)
		}
		if len(folded) == 0 {
			return nil
		}
		return h.Text(string(folded))
	}

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return flush()
		}
		if err != nil {
			return wrapDecodeErr(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := flush(); err != nil {
				return err
			}
			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				attrs[a.Name.Local] = a.Value
			}
			if err := h.StartElement(t.Name.Local, attrs); err != nil {
				return err
			}
		case xml.EndElement:
			if err := flush(); err != nil {
				return err
			}
			if err := h.EndElement(t.Name.Local); err != nil {
				return err
			}
		case xml.CharData:
			text.Write(t)
		case xml.Directive:
			addEntities(d.Entity, t)
		}
	}
}

// addEntities registers the entities declared in a DOCTYPE directive.
func addEntities(entities map[string]string, directive xml.Directive) {
	if !bytes.HasPrefix(directive, []byte("DOCTYPE")) {
		return
	}
	for _, m := range entityDecl.FindAllSubmatch(directive, -1) {
		value := m[2]
		if value == nil {
			value = m[3]
		}
		entities[string(m[1])] = string(value)
	}
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrCharset, label)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

func wrapDecodeErr(err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, ErrCharset) {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return fmt.Errorf("%w: %w", ErrRead, err)
}
