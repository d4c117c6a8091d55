// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/session"
)

func TestRegistryLifecycle(t *testing.T) {
	reg := session.NewRegistry()
	def, err := demographics.DefaultCatalog().Instantiate("gender")
	require.NoError(t, err)

	id, err := reg.Open("survey-1", def)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	err = reg.Do(id, func(s *session.Session, owner string) error {
		assert.Equal(t, "survey-1", owner)
		assert.Equal(t, session.Editing, s.State())
		return s.UpdateValue(0, 70)
	})
	require.NoError(t, err)

	// failed commit keeps the session
	err = reg.Do(id, func(s *session.Session, _ string) error {
		if err := s.UpdateValue(0, 10); err != nil {
			return err
		}
		_, err := s.Commit()
		return err
	})
	require.ErrorIs(t, err, session.ErrIncompleteAllocation)
	assert.Equal(t, 1, reg.Len())

	err = reg.Do(id, func(s *session.Session, _ string) error {
		if err := s.Rescale(); err != nil {
			return err
		}
		_, err := s.Commit()
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())

	err = reg.Do(id, func(*session.Session, string) error { return nil })
	require.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestRegistryClose(t *testing.T) {
	reg := session.NewRegistry()
	id, err := reg.Open("survey-1", demographics.NewCustom("x"))
	require.NoError(t, err)

	require.NoError(t, reg.Close(id))
	assert.Equal(t, 0, reg.Len())
	require.ErrorIs(t, reg.Close(id), session.ErrSessionNotFound)
	require.ErrorIs(t, reg.Close("missing"), session.ErrSessionNotFound)
}

func TestRegistryConcurrentSessions(t *testing.T) {
	reg := session.NewRegistry()
	catalog := demographics.DefaultCatalog()

	const n = 20
	sessionIDs := make([]string, n)
	for i := range sessionIDs {
		def, err := catalog.Instantiate("age")
		require.NoError(t, err)
		sessionIDs[i], err = reg.Open("survey", def)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for _, id := range sessionIDs {
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func(id string, w int) {
				defer wg.Done()
				for k := 0; k < 25; k++ {
					_ = reg.Do(id, func(s *session.Session, _ string) error {
						return s.UpdateValue(w%s.Ranges().Len(), float64((k*7+w)%100))
					})
				}
			}(id, w)
		}
	}
	wg.Wait()

	for _, id := range sessionIDs {
		err := reg.Do(id, func(s *session.Session, _ string) error {
			for _, r := range s.Ranges().Ranges() {
				assert.GreaterOrEqual(t, r.Value, 0.0)
				assert.LessOrEqual(t, r.Value, 100.0)
			}
			assert.LessOrEqual(t, s.Ranges().Sum(), 100.0+1e-6)
			return nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, n, reg.Len())
}

func TestRegistryCloseOwner(t *testing.T) {
	reg := session.NewRegistry()

	a1, err := reg.Open("survey-a", demographics.NewCustom("1"))
	require.NoError(t, err)
	_, err = reg.Open("survey-a", demographics.NewCustom("2"))
	require.NoError(t, err)
	b, err := reg.Open("survey-b", demographics.NewCustom("3"))
	require.NoError(t, err)

	assert.Equal(t, 2, reg.CloseOwner("survey-a"))
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, 0, reg.CloseOwner("survey-a"))

	require.ErrorIs(t, reg.Do(a1, func(*session.Session, string) error { return nil }), session.ErrSessionNotFound)
	require.NoError(t, reg.Do(b, func(*session.Session, string) error { return nil }))
}
