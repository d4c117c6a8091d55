// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists survey records through a key/value port.

# KV

KV is the persistence port: Get and Set of JSON documents by key. Two
implementations:

  - Memory: in-process map, used by tests and DATABASE_TYPE=memory
  - SQL: the kv_entry table on PostgreSQL or SQLite (see package db)

# Surveys

Surveys keeps the whole survey collection as one JSON array under a single
key ("surveys" by default). Every write is a read-modify-write of that
array, serialized by a mutex:

	repo := store.NewSurveys(kv, store.DefaultSurveysKey)
	s, err := repo.Update(ctx, id, func(s *survey.Survey) error {
		s.UpsertDemographic(def)
		s.Touch(time.Now())
		return nil
	})

Missing surveys return ErrSurveyNotFound.
*/
package store
