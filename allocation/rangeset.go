// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Range is one labeled slice of a demographic distribution.
type Range struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// RangeSet is an immutable ordered list of ranges. The zero value is an
// empty set.
type RangeSet struct {
	ranges []Range
}

// NewRangeSet builds a set from ranges in order, applying the same label
// rules as AddRange. Values are clamped to [0, 100].
func NewRangeSet(ranges ...Range) (RangeSet, error) {
	var set RangeSet
	for _, r := range ranges {
		next, err := set.AddRange(r.Label, r.Value)
		if err != nil {
			return RangeSet{}, err
		}
		set = next
	}
	return set, nil
}

// MustRangeSet is NewRangeSet for static tables. It panics on invalid input.
func MustRangeSet(ranges ...Range) RangeSet {
	set, err := NewRangeSet(ranges...)
	if err != nil {
		panic(err)
	}
	return set
}

// Len returns the number of ranges.
func (s RangeSet) Len() int {
	return len(s.ranges)
}

// At returns the range at index i.
func (s RangeSet) At(i int) (Range, error) {
	if i < 0 || i >= len(s.ranges) {
		return Range{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(s.ranges))
	}
	return s.ranges[i], nil
}

// Ranges returns a copy of the ranges in display order.
func (s RangeSet) Ranges() []Range {
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Labels returns the labels in display order.
func (s RangeSet) Labels() []string {
	labels := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		labels[i] = r.Label
	}
	return labels
}

// IndexOf returns the index of label, or -1.
func (s RangeSet) IndexOf(label string) int {
	for i, r := range s.ranges {
		if r.Label == label {
			return i
		}
	}
	return -1
}

// Sum returns the total of all values.
func (s RangeSet) Sum() float64 {
	return sum(s.values())
}

// Remaining returns 100 - Sum(). It is negative when the set is over-allocated.
func (s RangeSet) Remaining() float64 {
	return Total - s.Sum()
}

// IsComplete reports whether the values sum to 100 within Epsilon.
func (s RangeSet) IsComplete() bool {
	return math.Abs(s.Sum()-Total) <= Epsilon
}

// AddRange appends a range. Other ranges are left alone, so the caller picks
// a value that keeps the total where it wants it.
func (s RangeSet) AddRange(label string, value float64) (RangeSet, error) {
	if strings.TrimSpace(label) == "" {
		return RangeSet{}, ErrEmptyLabel
	}
	if s.IndexOf(label) >= 0 {
		return RangeSet{}, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}

	ranges := make([]Range, len(s.ranges), len(s.ranges)+1)
	copy(ranges, s.ranges)
	ranges = append(ranges, Range{Label: label, Value: ClampPercent(value)})

	return RangeSet{ranges: ranges}, nil
}

// UpdateValue sets the value at index i (clamped to [0, 100]) and shrinks
// the other ranges proportionally if the total goes over 100.
func (s RangeSet) UpdateValue(i int, newValue float64) (RangeSet, error) {
	if i < 0 || i >= len(s.ranges) {
		return RangeSet{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(s.ranges))
	}

	return s.withValues(ClampExcess(s.values(), i, ClampPercent(newValue))), nil
}

// DeleteRange removes the range at index i and spreads its value over the
// remaining ranges in proportion to their share. Each value is capped at 100,
// so an over-allocated set may lose part of the removed value.
func (s RangeSet) DeleteRange(i int) (RangeSet, error) {
	if i < 0 || i >= len(s.ranges) {
		return RangeSet{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(s.ranges))
	}

	removed := s.ranges[i].Value
	ranges := make([]Range, 0, len(s.ranges)-1)
	ranges = append(ranges, s.ranges[:i]...)
	ranges = append(ranges, s.ranges[i+1:]...)

	rest := RangeSet{ranges: ranges}
	return rest.withValues(Absorb(rest.values(), removed)), nil
}

// Rescale scales every value so the set sums to exactly 100. Empty and
// zero-sum sets are returned unchanged.
func (s RangeSet) Rescale() RangeSet {
	return s.withValues(Scale(s.values()))
}

// MarshalJSON encodes the set as a JSON array of ranges.
func (s RangeSet) MarshalJSON() ([]byte, error) {
	if s.ranges == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.ranges)
}

// UnmarshalJSON decodes a JSON array of ranges, validating labels.
func (s *RangeSet) UnmarshalJSON(data []byte) error {
	var ranges []Range
	if err := json.Unmarshal(data, &ranges); err != nil {
		return err
	}
	set, err := NewRangeSet(ranges...)
	if err != nil {
		return err
	}
	*s = set
	return nil
}

func (s RangeSet) values() []float64 {
	values := make([]float64, len(s.ranges))
	for i, r := range s.ranges {
		values[i] = r.Value
	}
	return values
}

// withValues returns a copy of s with values replaced positionally.
func (s RangeSet) withValues(values []float64) RangeSet {
	ranges := make([]Range, len(s.ranges))
	for i, r := range s.ranges {
		ranges[i] = Range{Label: r.Label, Value: values[i]}
	}
	return RangeSet{ranges: ranges}
}
