// SPDX-License-Identifier: MIT
// Package: sequence
//
// set.go - named, insertion-ordered collection of sequences.

package sequence

import "sort"

// Set maps entity identifiers (file or column names) to Sequences and
// remembers insertion order, which fixes the row/column order of every
// distance matrix built from it.
type Set struct {
	names []string
	seqs  map[string]Sequence
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{seqs: make(map[string]Sequence)}
}

// Add registers seq under name.
// Errors: ErrEmptyName, ErrDuplicateName.
func (s *Set) Add(name string, seq Sequence) error {
	if name == "" {
		return sequenceErrorf("Set.Add", ErrEmptyName)
	}
	if _, ok := s.seqs[name]; ok {
		return sequenceErrorf("Set.Add("+name+")", ErrDuplicateName)
	}
	s.names = append(s.names, name)
	s.seqs[name] = seq

	return nil
}

// Len returns the number of entities.
func (s *Set) Len() int { return len(s.names) }

// Names returns the entity names in insertion order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Get returns the Sequence registered under name.
func (s *Set) Get(name string) (Sequence, bool) {
	seq, ok := s.seqs[name]

	return seq, ok
}

// Dim returns the shared dimensionality of all sequences.
// Errors: ErrInsufficientData for an empty set, ErrSchemaMismatch when
// dimensions differ.
func (s *Set) Dim() (int, error) {
	if len(s.names) == 0 {
		return 0, sequenceErrorf("Set.Dim", ErrInsufficientData)
	}
	d := s.seqs[s.names[0]].Dim()
	for _, n := range s.names[1:] {
		if s.seqs[n].Dim() != d {
			return 0, sequenceErrorf("Set.Dim", ErrSchemaMismatch)
		}
	}

	return d, nil
}

// GroupByDim partitions entity names by sequence dimensionality.
// Names keep insertion order inside each group.
func (s *Set) GroupByDim() map[int][]string {
	out := make(map[int][]string)
	for _, n := range s.names {
		d := s.seqs[n].Dim()
		out[d] = append(out[d], n)
	}

	return out
}

// Dims returns the distinct dimensionalities present, ascending.
func (s *Set) Dims() []int {
	groups := s.GroupByDim()
	out := make([]int, 0, len(groups))
	for d := range groups {
		out = append(out, d)
	}
	sort.Ints(out)

	return out
}
