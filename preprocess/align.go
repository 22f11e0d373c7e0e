// SPDX-License-Identifier: MIT

package preprocess

import "github.com/katalvlaran/seqsim/sequence"

// AlignLengths truncates a and b to their first L = min(len(a), len(b))
// samples. No interpolation and no tail alignment: both keep their start.
// Errors: ErrEmptyAlignment when L == 0.
// Complexity: O(1); results share storage with the inputs.
func AlignLengths(a, b sequence.Sequence) (sequence.Sequence, sequence.Sequence, error) {
	l := min(a.Len(), b.Len())
	if l == 0 {
		return sequence.Sequence{}, sequence.Sequence{}, preprocessErrorf("AlignLengths", ErrEmptyAlignment)
	}

	return a.Head(l), b.Head(l), nil
}
