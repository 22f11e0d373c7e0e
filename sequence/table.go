// SPDX-License-Identifier: MIT
// Package: sequence
//
// table.go - parsed tabular input handed over by I/O collaborators.

package sequence

import "time"

// Table is an already-parsed file: numeric columns by name (NaN for values
// that could not be coerced) and an optional combined timestamp per row.
type Table struct {
	Columns map[string][]float64
	Times   []time.Time
}

// Rows returns the number of rows of the table, taken from its timestamps
// or, without timestamps, from the longest column.
func (t Table) Rows() int {
	if t.Times != nil {
		return len(t.Times)
	}
	n := 0
	for _, c := range t.Columns {
		if len(c) > n {
			n = len(c)
		}
	}

	return n
}

// Select builds a Sequence whose features are the named columns, in order.
// Timestamps are attached when the table has them.
// Errors: ErrNoColumns, ErrUnknownColumn, ErrSchemaMismatch (ragged columns
// or timestamps of a different length).
func (t Table) Select(columns []string) (Sequence, error) {
	if len(columns) == 0 {
		return Sequence{}, sequenceErrorf("Table.Select", ErrNoColumns)
	}
	cols := make([][]float64, len(columns))
	for i, name := range columns {
		c, ok := t.Columns[name]
		if !ok {
			return Sequence{}, sequenceErrorf("Table.Select("+name+")", ErrUnknownColumn)
		}
		cols[i] = c
	}

	seq, err := FromColumns(cols...)
	if err != nil {
		return Sequence{}, sequenceErrorf("Table.Select", err)
	}
	if t.Times == nil {
		return seq, nil
	}
	seq, err = seq.WithTimes(t.Times)
	if err != nil {
		return Sequence{}, sequenceErrorf("Table.Select", err)
	}

	return seq, nil
}
