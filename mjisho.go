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

package mjisho

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ianlewis/go-mjisho/internal/logger"
	"github.com/ianlewis/go-mjisho/jmdict"
	"github.com/ianlewis/go-mjisho/kanyouku"
)

const (
	// DefaultDictName is the default base name of the JMdict document.
	DefaultDictName = "dict"

	// DefaultIdiomName is the default base name of the idiom document.
	DefaultIdiomName = "kanyouku"
)

// Options are options for a Mjisho.
type Options struct {
	// Logger receives load diagnostics. Defaults to a disabled logger.
	Logger *zerolog.Logger

	// DictName is the base name of the JMdict document used by LoadDir.
	DictName string

	// IdiomName is the base name of the idiom document used by LoadDir.
	IdiomName string
}

// DefaultOptions is the default options for New.
var DefaultOptions = &Options{
	DictName:  DefaultDictName,
	IdiomName: DefaultIdiomName,
}

// Mjisho holds a word dictionary and an idiom dictionary.
//
// Lookups may run concurrently with each other. Loading or clearing must not
// run concurrently with lookups of the same dictionary.
type Mjisho struct {
	// Words is the JMdict word dictionary.
	Words *jmdict.Dictionary

	// Idioms is the idiom dictionary.
	Idioms *kanyouku.Dictionary

	log       *zerolog.Logger
	dictName  string
	idiomName string
}

// New returns a new Mjisho with empty dictionaries.
func New(options *Options) *Mjisho {
	if options == nil {
		options = DefaultOptions
	}
	m := &Mjisho{
		Words:     jmdict.New(),
		Idioms:    kanyouku.New(),
		log:       logger.OrNop(options.Logger),
		dictName:  options.DictName,
		idiomName: options.IdiomName,
	}
	if m.dictName == "" {
		m.dictName = DefaultDictName
	}
	if m.idiomName == "" {
		m.idiomName = DefaultIdiomName
	}
	return m
}

// Clear discards the entries of both dictionaries.
func (m *Mjisho) Clear() {
	m.Words.Clear()
	m.Idioms.Clear()
}

// LoadWords replaces the word dictionary's entries with the JMdict document
// at path. onComplete, if not nil, is called once with the result, including
// when the document cannot be opened.
func (m *Mjisho) LoadWords(path string, onComplete func(jmdict.Result)) error {
	r, err := OpenDocument(path)
	if err != nil {
		if onComplete != nil {
			onComplete(jmdict.Result{Err: err})
		}
		return err
	}
	defer r.Close()

	m.Words.Clear()
	m.log.Debug().Str("path", path).Msg("loading words")
	p := jmdict.NewParser(r, m.Words, &jmdict.Options{
		Logger:     m.log,
		OnComplete: onComplete,
	})
	if err := p.Parse(); err != nil {
		return fmt.Errorf("error reading %q: %w", path, err)
	}
	return nil
}

// LoadIdioms replaces the idiom dictionary's entries with the idiom document
// at path. onComplete, if not nil, is called once with the result, including
// when the document cannot be opened.
func (m *Mjisho) LoadIdioms(path string, onComplete func(kanyouku.Result)) error {
	r, err := OpenDocument(path)
	if err != nil {
		if onComplete != nil {
			onComplete(kanyouku.Result{Err: err})
		}
		return err
	}
	defer r.Close()

	m.Idioms.Clear()
	m.log.Debug().Str("path", path).Msg("loading idioms")
	p := kanyouku.NewParser(r, m.Idioms, &kanyouku.Options{
		Logger:     m.log,
		OnComplete: onComplete,
	})
	if err := p.Parse(); err != nil {
		return fmt.Errorf("error reading %q: %w", path, err)
	}
	return nil
}

// LoadDir loads the word and idiom documents found in dir. Both documents are
// attempted and all errors that occurred are returned. A document that fails
// to parse keeps the entries read before the failure.
func (m *Mjisho) LoadDir(dir string) []error {
	var errs []error

	if path, err := FindDocument(dir, m.dictName); err != nil {
		errs = append(errs, err)
	} else if err := m.LoadWords(path, nil); err != nil {
		errs = append(errs, err)
	}

	if path, err := FindDocument(dir, m.idiomName); err != nil {
		errs = append(errs, err)
	} else if err := m.LoadIdioms(path, nil); err != nil {
		errs = append(errs, err)
	}

	return errs
}
