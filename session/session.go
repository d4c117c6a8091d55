// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/danielhkuo/survey-builder/allocation"
	"github.com/danielhkuo/survey-builder/demographics"
)

// State is the lifecycle position of a chart edit session.
type State int

const (
	Selecting State = iota
	Editing
	Committed
	Discarded
)

func (s State) String() string {
	switch s {
	case Selecting:
		return "selecting"
	case Editing:
		return "editing"
	case Committed:
		return "committed"
	case Discarded:
		return "discarded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrMissingName          = errors.New("custom demographic needs a name")
	ErrIncompleteAllocation = errors.New("ranges must add up to 100%")
	ErrInvalidState         = errors.New("invalid session state")
)

// Session edits one demographic definition. It is not safe for concurrent
// use; Registry serializes access for the HTTP layer.
type Session struct {
	id      string
	state   State
	working demographics.Definition
	pending string
}

// New returns a session in the Selecting state.
func New(id string) *Session {
	return &Session{id: id, state: Selecting}
}

func (s *Session) ID() string     { return s.id }
func (s *Session) State() State   { return s.state }
func (s *Session) IsCustom() bool { return s.working.IsCustom() }

// Definition returns the current working copy.
func (s *Session) Definition() demographics.Definition {
	return s.working
}

// Ranges returns the live range set.
func (s *Session) Ranges() allocation.RangeSet {
	return s.working.Ranges
}

// Remaining is the unassigned percentage, negative when over-allocated.
func (s *Session) Remaining() float64 {
	return s.working.Ranges.Remaining()
}

func (s *Session) IsComplete() bool {
	return s.working.Ranges.IsComplete()
}

// PendingLabel returns the "new range" label buffer.
func (s *Session) PendingLabel() string {
	return s.pending
}

// Open starts editing a working copy of def.
func (s *Session) Open(def demographics.Definition) error {
	if s.state != Selecting {
		return fmt.Errorf("%w: open from %s", ErrInvalidState, s.state)
	}
	s.working = def
	s.pending = ""
	s.state = Editing
	return nil
}

// SetLabel renames the working definition.
func (s *Session) SetLabel(label string) error {
	if err := s.requireEditing("set label"); err != nil {
		return err
	}
	s.working.Label = strings.TrimSpace(label)
	return nil
}

// SetPendingLabel fills the "new range" label buffer.
func (s *Session) SetPendingLabel(label string) error {
	if err := s.requireEditing("set pending label"); err != nil {
		return err
	}
	s.pending = label
	return nil
}

// AddRangeFromRemainder appends a range valued at the current unassigned
// remainder, max(0, 100 - sum).
func (s *Session) AddRangeFromRemainder(label string) error {
	if err := s.requireEditing("add range"); err != nil {
		return err
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return allocation.ErrEmptyLabel
	}

	remainder := math.Max(0, s.working.Ranges.Remaining())
	next, err := s.working.Ranges.AddRange(label, remainder)
	if err != nil {
		return err
	}
	s.working.Ranges = next
	return nil
}

// AddPendingRange adds a range from the label buffer and clears it.
func (s *Session) AddPendingRange() error {
	if err := s.AddRangeFromRemainder(s.pending); err != nil {
		return err
	}
	s.pending = ""
	return nil
}

// UpdateValue sets the range at index to value; see allocation.RangeSet.UpdateValue.
func (s *Session) UpdateValue(index int, value float64) error {
	if err := s.requireEditing("update value"); err != nil {
		return err
	}
	next, err := s.working.Ranges.UpdateValue(index, value)
	if err != nil {
		return err
	}
	s.working.Ranges = next
	return nil
}

// DeleteRange removes the range at index; see allocation.RangeSet.DeleteRange.
func (s *Session) DeleteRange(index int) error {
	if err := s.requireEditing("delete range"); err != nil {
		return err
	}
	next, err := s.working.Ranges.DeleteRange(index)
	if err != nil {
		return err
	}
	s.working.Ranges = next
	return nil
}

// Rescale scales the ranges so they sum to exactly 100.
func (s *Session) Rescale() error {
	if err := s.requireEditing("rescale"); err != nil {
		return err
	}
	s.working.Ranges = s.working.Ranges.Rescale()
	return nil
}

// Validate returns the definition Commit would produce, without changing
// state.
func (s *Session) Validate() (demographics.Definition, error) {
	if err := s.requireEditing("commit"); err != nil {
		return demographics.Definition{}, err
	}
	if !s.working.Ranges.IsComplete() {
		return demographics.Definition{}, fmt.Errorf("%w: remaining %.2f%%", ErrIncompleteAllocation, s.working.Ranges.Remaining())
	}
	if s.working.IsCustom() && strings.TrimSpace(s.working.Label) == "" {
		return demographics.Definition{}, ErrMissingName
	}
	return s.working, nil
}

// Commit finalizes the working definition. On error the session stays in
// Editing so the author can fix the values.
func (s *Session) Commit() (demographics.Definition, error) {
	def, err := s.Validate()
	if err != nil {
		return demographics.Definition{}, err
	}

	s.state = Committed
	s.working = demographics.Definition{}
	s.pending = ""
	return def, nil
}

// Discard drops the working copy.
func (s *Session) Discard() error {
	if s.state == Committed || s.state == Discarded {
		return fmt.Errorf("%w: discard from %s", ErrInvalidState, s.state)
	}
	s.state = Discarded
	s.working = demographics.Definition{}
	s.pending = ""
	return nil
}

func (s *Session) requireEditing(op string) error {
	if s.state != Editing {
		return fmt.Errorf("%w: %s from %s", ErrInvalidState, op, s.state)
	}
	return nil
}
