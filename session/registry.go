// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"sync"

	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/ids"
)

var ErrSessionNotFound = errors.New("chart session not found")

type entry struct {
	mu     sync.Mutex
	s      *Session
	owner  string
	closed bool
}

// Registry holds the open sessions of the HTTP surface. Each session is
// only touched by one caller at a time; different sessions proceed in
// parallel.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*entry)}
}

// Open creates a session for owner (a survey ID) editing def.
func (r *Registry) Open(owner string, def demographics.Definition) (string, error) {
	id, err := ids.NewSessionID()
	if err != nil {
		return "", err
	}

	s := New(id)
	if err := s.Open(def); err != nil {
		return "", err
	}

	r.mu.Lock()
	r.sessions[id] = &entry{s: s, owner: owner}
	r.mu.Unlock()

	return id, nil
}

// Do runs fn with exclusive access to the session. Sessions that end up
// Committed or Discarded are removed from the registry.
func (r *Registry) Do(id string, fn func(s *Session, owner string) error) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrSessionNotFound
	}

	err := fn(e.s, e.owner)

	if st := e.s.State(); st == Committed || st == Discarded {
		e.closed = true
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
	}

	return err
}

// Close discards and removes a session. Closing an unknown ID is an error.
func (r *Registry) Close(id string) error {
	return r.Do(id, func(s *Session, _ string) error {
		return s.Discard()
	})
}

// CloseOwner discards every session opened for owner and returns how many
// were removed. Sessions are otherwise kept until commit or discard.
func (r *Registry) CloseOwner(owner string) int {
	r.mu.Lock()
	var sids []string
	for id, e := range r.sessions {
		if e.owner == owner {
			sids = append(sids, id)
		}
	}
	r.mu.Unlock()

	closed := 0
	for _, id := range sids {
		if r.Close(id) == nil {
			closed++
		}
	}
	return closed
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
