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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

var (
	// ErrNotFound indicates that no document with the given name exists.
	ErrNotFound = errors.New("document not found")

	// ErrUnsupported indicates that the document's file extension is not a
	// supported format.
	ErrUnsupported = errors.New("unsupported document format")
)

// documentExts are the document extensions in the order they are probed.
var documentExts = []string{
	".xml",
	".xml.gz",
	".xml.dz",
	".XML",
	".XML.gz",
	".XML.GZ",
	".XML.dz",
	".XML.DZ",
}

// FindDocument returns the path of the document with the given base name in
// dir. It returns ErrNotFound if no document exists.
func FindDocument(dir, base string) (string, error) {
	for _, ext := range documentExts {
		path := filepath.Join(dir, base+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q in %q", ErrNotFound, base, dir)
}

// document is an open document file and the decompressor reading from it.
type document struct {
	io.Reader
	closers []io.Closer
}

// Close closes the decompressor and then the underlying file.
func (d *document) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenDocument opens the document at path for reading. Documents ending in
// .gz are decompressed with gzip and documents ending in .dz are decompressed
// with dictzip.
func OpenDocument(path string) (io.ReadCloser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xml", ".gz", ".dz":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	doc := &document{
		Reader:  f,
		closers: []io.Closer{f},
	}

	switch ext {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		doc.Reader = z
		doc.closers = append(doc.closers, z)
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		doc.Reader = z
		doc.closers = append(doc.closers, z)
	}

	return doc, nil
}
