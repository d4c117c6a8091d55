// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements the chart edit session for one demographic.

# Lifecycle

	Selecting ──Open──▶ Editing ──Commit──▶ Committed
	    │                  │
	    └────Discard───────┴──Discard──▶ Discarded

While Editing, the session holds a working copy of the definition and a
"new range" label buffer. Every mutation replaces the working RangeSet with
the value returned by the allocation package.

Commit succeeds only when the ranges sum to 100 (and, for custom charts,
a name is set). A failed commit leaves the session in Editing:

	def, err := s.Commit()
	if errors.Is(err, session.ErrIncompleteAllocation) {
		// show s.Remaining() and let the author fix it
	}

# Registry

Registry keeps the sessions opened over HTTP, keyed by session ID, and
gives each caller exclusive access to one session at a time:

	err := reg.Do(id, func(s *session.Session, surveyID string) error {
		return s.UpdateValue(0, 70)
	})

Committed and discarded sessions are dropped from the registry.
*/
package session
