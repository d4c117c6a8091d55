// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package allocation maintains the percentage ranges of a demographic chart.

# RangeSet

A RangeSet is an immutable, ordered list of labeled percentages. Every
mutation returns a new RangeSet and leaves the receiver untouched:

	set, _ := allocation.NewRangeSet(
		allocation.Range{Label: "A", Value: 50},
		allocation.Range{Label: "B", Value: 50},
	)
	set, _ = set.UpdateValue(0, 70) // A=70, B=30

A set is complete when its values sum to 100 within Epsilon. Intermediate
sets may be incomplete; Remaining reports the gap and is never clamped, so
an over-allocated set shows a negative remainder.

# Redistribution

Two strategies keep the total near 100:

  - ClampExcess (UpdateValue): when an edit pushes the total over 100, every
    other range shrinks in proportion to its share. Single pass, floor at 0.
  - Absorb (DeleteRange): the deleted value is spread over the survivors in
    proportion to their share. Nothing is redistributed when the survivors
    sum to 0.

AddRange never redistributes; callers pick the value (usually the current
remainder).

# Errors

	ErrEmptyLabel      - blank label
	ErrDuplicateLabel  - label already present (case-sensitive exact match)
	ErrIndexOutOfRange - no range at the given index
*/
package allocation
