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
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ianlewis/go-mjisho/internal/logger"
	"github.com/ianlewis/go-mjisho/internal/xmlstream"
)

// Element and attribute names read from the document.
const (
	definitionElement = "definition"
	phraseElement     = "phrase"
	senseElement      = "sense"
	meaningElement    = "meaning"
	exampleElement    = "example"
	synonymElement    = "synonym"
	seeAlsoElement    = "see-also"

	idAttr       = "id"
	furiganaAttr = "furigana"
	variantAttr  = "variant"
)

var (
	// ErrAborted indicates that the document contained an error marker
	// element. Entries before the marker have been appended.
	ErrAborted = xmlstream.ErrAborted

	// ErrAlreadyParsed is returned when Parse is called more than once.
	ErrAlreadyParsed = errors.New("document already parsed")

	// ErrSyntax indicates that the document is not well-formed XML.
	ErrSyntax = xmlstream.ErrSyntax

	// ErrRead indicates that the document could not be read.
	ErrRead = xmlstream.ErrRead

	errInvalidID = errors.New("invalid definition id")
)

// Appender receives completed entries.
type Appender interface {
	Append(e *Entry)
}

// Result is the outcome of parsing a document.
type Result struct {
	// Entries is the number of entries appended.
	Entries int

	// Skipped is the number of definitions dropped because their id was
	// missing or invalid.
	Skipped int

	// Duration is the time spent parsing.
	Duration time.Duration

	// Err is the error that stopped parsing or nil on success.
	Err error
}

// Options are options for a Parser.
type Options struct {
	// Logger receives parse diagnostics. Defaults to a disabled logger.
	Logger *zerolog.Logger

	// OnComplete is called exactly once when parsing finishes or fails.
	OnComplete func(Result)
}

// Parser reads an idiom document and appends each completed entry to an
// Appender. A Parser parses its document only once.
type Parser struct {
	r          io.Reader
	h          *handler
	log        *zerolog.Logger
	onComplete func(Result)
	parsed     bool
}

// NewParser returns a Parser that reads the document from r and appends
// entries to dst.
func NewParser(r io.Reader, dst Appender, options *Options) *Parser {
	if options == nil {
		options = &Options{}
	}
	l := logger.OrNop(options.Logger)
	return &Parser{
		r:          r,
		h:          &handler{dst: dst, log: l},
		log:        l,
		onComplete: options.OnComplete,
	}
}

// Parse reads the whole document. Phrase and sense ids are numbered from zero
// in document order.
func (p *Parser) Parse() error {
	if p.parsed {
		return ErrAlreadyParsed
	}
	p.parsed = true

	start := time.Now()
	err := xmlstream.Parse(p.r, p.h, nil)
	res := Result{
		Entries:  p.h.entries,
		Skipped:  p.h.skipped,
		Duration: time.Since(start),
		Err:      err,
	}

	switch {
	case errors.Is(err, ErrAborted):
		p.log.Warn().Int("entries", res.Entries).Msg("idiom dictionary contains error marker")
	case err != nil:
		p.log.Error().Err(err).Int("entries", res.Entries).Msg("parse error")
	default:
		p.log.Info().
			Int("entries", res.Entries).
			Int("skipped", res.Skipped).
			Dur("duration", res.Duration).
			Msg("parsed idiom dictionary")
	}

	if p.onComplete != nil {
		p.onComplete(res)
	}

	if err != nil {
		return fmt.Errorf("parsing idioms: %w", err)
	}
	return nil
}

// handler builds entries from document events.
type handler struct {
	dst Appender
	log *zerolog.Logger

	// element is the name of the innermost open element, or empty after an
	// element closes.
	element string

	entry  *Entry
	phrase *Phrase
	sense  *Sense
	idErr  error

	// nextPhraseID and nextSenseID are local to the document.
	nextPhraseID int
	nextSenseID  int

	entries int
	skipped int
}

func (h *handler) StartElement(name string, attrs map[string]string) error {
	h.element = name

	switch name {
	case xmlstream.ErrorMarker:
		return ErrAborted
	case definitionElement:
		h.entry = &Entry{}
		h.idErr = nil
		v, ok := attrs[idAttr]
		if !ok {
			h.idErr = fmt.Errorf("%w: missing %s attribute", errInvalidID, idAttr)
			break
		}
		id, err := strconv.Atoi(v)
		if err != nil {
			h.idErr = fmt.Errorf("%w: %q", errInvalidID, v)
			break
		}
		h.entry.ID = id
	case phraseElement:
		h.phrase = &Phrase{
			ID:      h.nextPhraseID,
			Reading: attrs[furiganaAttr],
			Mode:    ParseMode(attrs[variantAttr]),
		}
		h.nextPhraseID++
	case senseElement:
		h.sense = &Sense{
			ID: h.nextSenseID,
		}
		h.nextSenseID++
	}
	return nil
}

func (h *handler) EndElement(name string) error {
	h.element = ""

	switch name {
	case definitionElement:
		h.commit()
	case phraseElement:
		if h.entry != nil && h.phrase != nil {
			h.entry.AddPhrase(h.phrase)
		}
		h.phrase = nil
	case senseElement:
		if h.entry != nil && h.sense != nil {
			h.entry.AddSense(h.sense)
		}
		h.sense = nil
	}
	return nil
}

func (h *handler) Text(text string) error {
	if h.entry == nil {
		return nil
	}

	switch h.element {
	case phraseElement:
		if h.phrase != nil {
			h.phrase.Writing = text
		}
	case meaningElement:
		if h.sense != nil {
			h.sense.Meaning = text
		}
	case exampleElement:
		if h.sense != nil {
			h.sense.Example = text
		}
	case synonymElement:
		h.entry.AddSynonym(text)
	case seeAlsoElement:
		h.entry.AddSeeAlso(text)
	}
	return nil
}

// commit appends the current entry if it has a valid id.
func (h *handler) commit() {
	e := h.entry
	h.entry = nil
	if e == nil {
		return
	}

	if h.idErr != nil {
		h.log.Warn().Err(h.idErr).Int("phrases", len(e.Phrases)).Msg("skipping definition")
		h.skipped++
		return
	}

	h.dst.Append(e)
	h.entries++
}
