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

// Package mjisho implements a library for loading and searching Japanese
// dictionaries in pure Go.
//
// Two kinds of dictionary documents are supported:
//  1. A JMdict document containing Japanese words with their readings,
//     written forms and English glosses. See the jmdict package.
//  2. A kanyouku document containing Japanese idioms with their phrases,
//     meanings and examples. See the kanyouku package.
//
// Documents are XML and are looked up in a data directory by base name
// ("dict" and "kanyouku" by default). A document can be stored as plain
// .xml, compressed with gzip as .xml.gz, or compressed using the dictzip
// format as .xml.dz.
//
// Queries are glob patterns where '?' matches any single character and '*'
// matches any run of characters. A query is matched against English glosses,
// kana readings or written forms depending on the characters it contains.
package mjisho
