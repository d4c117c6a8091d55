// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/ids"
)

var (
	ErrNameRequired     = errors.New("survey name is required")
	ErrQuestionNotFound = errors.New("question not found")
)

// Survey is the persisted survey record.
type Survey struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	Owner             string                    `json:"owner"`
	CreationDate      time.Time                 `json:"creationDate"`
	LastModified      *time.Time                `json:"lastModified,omitempty"`
	Demographics      []demographics.Definition `json:"demographics"`
	CustomInformation string                    `json:"customInformation"`
	Questions         []Question                `json:"questions"`
	Starred           bool                      `json:"starred"`
}

// New creates an empty survey named name.
func New(name, owner string, now time.Time) (Survey, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Survey{}, ErrNameRequired
	}

	id, err := ids.NewSurveyID()
	if err != nil {
		return Survey{}, err
	}

	return Survey{
		ID:           id,
		Name:         name,
		Owner:        strings.TrimSpace(owner),
		CreationDate: now,
		Demographics: []demographics.Definition{},
		Questions:    []Question{},
	}, nil
}

// Touch records a modification.
func (s *Survey) Touch(now time.Time) {
	s.LastModified = &now
}

// LastActivity is LastModified, or CreationDate for untouched surveys.
func (s Survey) LastActivity() time.Time {
	if s.LastModified != nil {
		return *s.LastModified
	}
	return s.CreationDate
}

// Demographic returns the definition with the given id.
func (s Survey) Demographic(id string) (demographics.Definition, bool) {
	for _, d := range s.Demographics {
		if d.ID == id {
			return d, true
		}
	}
	return demographics.Definition{}, false
}

// UpsertDemographic replaces the definition with the same id, or appends it.
func (s *Survey) UpsertDemographic(def demographics.Definition) {
	for i, d := range s.Demographics {
		if d.ID == def.ID {
			s.Demographics[i] = def
			return
		}
	}
	s.Demographics = append(s.Demographics, def)
}

// RemoveDemographics deletes every definition whose id is listed and
// returns how many were removed. Unknown ids are ignored.
func (s *Survey) RemoveDemographics(demographicIDs ...string) int {
	before := len(s.Demographics)
	s.Demographics = slices.DeleteFunc(s.Demographics, func(d demographics.Definition) bool {
		return slices.Contains(demographicIDs, d.ID)
	})
	return before - len(s.Demographics)
}

// AddQuestion appends q with a fresh id and the defaults of its type.
func (s *Survey) AddQuestion(q Question) (Question, error) {
	q, err := q.withDefaults()
	if err != nil {
		return Question{}, err
	}

	id, err := ids.NewQuestionID()
	if err != nil {
		return Question{}, err
	}
	q.ID = id

	s.Questions = append(s.Questions, q)
	return q, nil
}

// UpdateQuestion replaces the question with q.ID.
func (s *Survey) UpdateQuestion(q Question) (Question, error) {
	i := s.questionIndex(q.ID)
	if i < 0 {
		return Question{}, fmt.Errorf("%w: %s", ErrQuestionNotFound, q.ID)
	}

	q, err := q.withDefaults()
	if err != nil {
		return Question{}, err
	}

	s.Questions[i] = q
	return q, nil
}

// DeleteQuestion removes the question with the given id.
func (s *Survey) DeleteQuestion(id string) error {
	i := s.questionIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
	}
	s.Questions = slices.Delete(s.Questions, i, i+1)
	return nil
}

// MoveQuestion moves the question with activeID to the position of overID,
// shifting the questions in between (drag-and-drop reorder).
func (s *Survey) MoveQuestion(activeID, overID string) error {
	from := s.questionIndex(activeID)
	if from < 0 {
		return fmt.Errorf("%w: %s", ErrQuestionNotFound, activeID)
	}
	to := s.questionIndex(overID)
	if to < 0 {
		return fmt.Errorf("%w: %s", ErrQuestionNotFound, overID)
	}
	s.Questions = ArrayMove(s.Questions, from, to)
	return nil
}

func (s Survey) questionIndex(id string) int {
	return slices.IndexFunc(s.Questions, func(q Question) bool { return q.ID == id })
}

// ArrayMove returns a copy of items with the element at from moved to to.
// Out-of-range indexes return an unchanged copy.
func ArrayMove[T any](items []T, from, to int) []T {
	out := slices.Clone(items)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item)
}

// Sort orders for survey listings.
const (
	SortLastModified = "last_modified"
	SortName         = "name"
	SortCreated      = "created"
)

// Filter selects surveys for a listing.
type Filter struct {
	StarredOnly bool
	Query       string // case-insensitive substring of the name
}

// Match reports whether s passes the filter.
func (f Filter) Match(s Survey) bool {
	if f.StarredOnly && !s.Starred {
		return false
	}
	q := strings.TrimSpace(f.Query)
	if q != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(q)) {
		return false
	}
	return true
}

// List filters and sorts surveys. Unknown sort orders fall back to
// last modified, most recent first.
func List(surveys []Survey, f Filter, by string) []Survey {
	out := make([]Survey, 0, len(surveys))
	for _, s := range surveys {
		if f.Match(s) {
			out = append(out, s)
		}
	}

	switch by {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortCreated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreationDate.After(out[j].CreationDate)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LastActivity().After(out[j].LastActivity())
		})
	}

	return out
}
