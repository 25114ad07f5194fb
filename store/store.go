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

// Package store implements an in-memory, append-only record collection.
package store

import (
	"sync"
)

// Store is an ordered collection of records. Records can only be appended or
// discarded all at once. Reads preserve append order.
//
// Reads may run concurrently with each other. Callers are expected to finish
// loading a Store before querying it.
type Store[R any] struct {
	mu      sync.RWMutex
	records []R
}

// New returns a new empty Store.
func New[R any]() *Store[R] {
	return &Store[R]{}
}

// Append adds a record to the end of the store. Records are not deduplicated.
func (s *Store[R]) Append(r R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// Clear discards all records.
func (s *Store[R]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// Len returns the number of records.
func (s *Store[R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// All returns a copy of all records in append order.
func (s *Store[R]) All() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.records) == 0 {
		return nil
	}
	all := make([]R, len(s.records))
	copy(all, s.records)
	return all
}

// Filter scans the store once and returns the records for which keep returns
// true, in append order.
func (s *Store[R]) Filter(keep func(R) bool) []R {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []R
	for _, r := range s.records {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}
