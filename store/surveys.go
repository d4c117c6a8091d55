// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/danielhkuo/survey-builder/survey"
)

// DefaultSurveysKey is the key the survey array is stored under.
const DefaultSurveysKey = "surveys"

var ErrSurveyNotFound = errors.New("survey not found")

// Surveys reads and writes whole survey records kept as one JSON array
// under a single KV key.
type Surveys struct {
	kv  KV
	key string
	mu  sync.Mutex // serializes read-modify-write
}

func NewSurveys(kv KV, key string) *Surveys {
	if key == "" {
		key = DefaultSurveysKey
	}
	return &Surveys{kv: kv, key: key}
}

// List returns every survey in stored order.
func (r *Surveys) List(ctx context.Context) ([]survey.Survey, error) {
	return r.load(ctx)
}

// Get returns the survey with the given id.
func (r *Surveys) Get(ctx context.Context, id string) (survey.Survey, error) {
	all, err := r.load(ctx)
	if err != nil {
		return survey.Survey{}, err
	}
	for _, s := range all {
		if s.ID == id {
			return s, nil
		}
	}
	return survey.Survey{}, fmt.Errorf("%w: %s", ErrSurveyNotFound, id)
}

// Save replaces the survey with the same id, or appends it.
func (r *Surveys) Save(ctx context.Context, s survey.Survey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range all {
		if all[i].ID == s.ID {
			all[i] = s
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, s)
	}

	return r.store(ctx, all)
}

// Update loads the survey with id, applies fn and saves the result. Nothing
// is written if fn returns an error.
func (r *Surveys) Update(ctx context.Context, id string, fn func(*survey.Survey) error) (survey.Survey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return survey.Survey{}, err
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}
		s := all[i]
		if err := fn(&s); err != nil {
			return survey.Survey{}, err
		}
		all[i] = s
		if err := r.store(ctx, all); err != nil {
			return survey.Survey{}, err
		}
		return s, nil
	}

	return survey.Survey{}, fmt.Errorf("%w: %s", ErrSurveyNotFound, id)
}

// Delete removes the survey with the given id.
func (r *Surveys) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == id {
			all = append(all[:i], all[i+1:]...)
			return r.store(ctx, all)
		}
	}
	return fmt.Errorf("%w: %s", ErrSurveyNotFound, id)
}

func (r *Surveys) load(ctx context.Context) ([]survey.Survey, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return []survey.Survey{}, nil
	}

	var all []survey.Survey
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("failed to decode surveys: %w", err)
	}
	return all, nil
}

func (r *Surveys) store(ctx context.Context, all []survey.Survey) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode surveys: %w", err)
	}
	return r.kv.Set(ctx, r.key, raw)
}
