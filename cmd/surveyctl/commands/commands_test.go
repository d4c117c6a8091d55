// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/survey-builder/db"
	"github.com/danielhkuo/survey-builder/demographics"
	"github.com/danielhkuo/survey-builder/store"
	"github.com/danielhkuo/survey-builder/survey"
)

// seed writes two surveys into a fresh SQLite file and returns its path
func seed(t *testing.T) (string, []survey.Survey) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "surveys.db")
	c, err := db.Open(db.TypeSQLite, path)
	require.NoError(t, err)
	defer c.Close()
	require.NoError(t, db.CreateSchema(c))

	kv, err := store.NewSQL(c, db.TypeSQLite)
	require.NoError(t, err)
	r := store.NewSurveys(kv, store.DefaultSurveysKey)

	now := time.Now().UTC()
	a, err := survey.New("Market study", "Akiva", now.Add(-2*time.Hour))
	require.NoError(t, err)
	age, err := demographics.DefaultCatalog().Instantiate("age")
	require.NoError(t, err)
	a.UpsertDemographic(age)
	a.Starred = true

	b, err := survey.New("Employee pulse", "Noa", now.Add(-time.Hour))
	require.NoError(t, err)

	require.NoError(t, r.Save(context.Background(), a))
	require.NoError(t, r.Save(context.Background(), b))
	return path, []survey.Survey{a, b}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { closeStore() })

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSurveysList(t *testing.T) {
	path, surveys := seed(t)

	out, err := run(t, "--db-type", "sqlite", "--db-url", path, "surveys", "list", "--sort", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "* Market study")
	assert.Contains(t, out, "Employee pulse")
	assert.Contains(t, out, "2 hours ago")
	assert.Less(t, bytes.Index([]byte(out), []byte("Employee")), bytes.Index([]byte(out), []byte("Market")))

	out, err = run(t, "--db-type", "sqlite", "--db-url", path, "surveys", "list", "--starred")
	require.NoError(t, err)
	assert.Contains(t, out, surveys[0].ID)
	assert.NotContains(t, out, surveys[1].ID)
}

func TestSurveysShowAndDelete(t *testing.T) {
	path, surveys := seed(t)
	id := surveys[0].ID

	out, err := run(t, "--db-type", "sqlite", "--db-url", path, "surveys", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Market study"`)
	assert.Contains(t, out, `"label": "0-18"`)

	out, err = run(t, "--db-type", "sqlite", "--db-url", path, "surveys", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted "+id)

	_, err = run(t, "--db-type", "sqlite", "--db-url", path, "surveys", "show", id)
	require.ErrorIs(t, err, store.ErrSurveyNotFound)

	_, err = run(t, "--db-type", "sqlite", "--db-url", path, "surveys", "show")
	require.Error(t, err)
}

func TestTemplatesNeedsNoStorage(t *testing.T) {
	out, err := run(t, "--db-type", "postgres", "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "Bachelor's 35%")
	assert.Contains(t, out, "custom")
	assert.Contains(t, out, "multiple-choice")
}

func TestMemoryStorageRejected(t *testing.T) {
	_, err := run(t, "--db-type", "memory", "surveys", "list")
	require.Error(t, err)
}
