// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package demographics_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/survey-builder/demographics"
)

func TestDefaultCatalogIsComplete(t *testing.T) {
	catalog := demographics.DefaultCatalog()
	templates := catalog.List()
	require.NotEmpty(t, templates)

	seen := map[string]bool{}
	for _, tpl := range templates {
		assert.False(t, seen[tpl.ID], "duplicate template id %s", tpl.ID)
		seen[tpl.ID] = true
		assert.True(t, tpl.Ranges.IsComplete(), "template %s does not sum to 100", tpl.ID)
		assert.NotEmpty(t, tpl.Label)
		assert.False(t, strings.HasPrefix(tpl.ID, demographics.CustomPrefix))
	}
}

func TestInstantiate(t *testing.T) {
	catalog := demographics.DefaultCatalog()

	def, err := catalog.Instantiate("age")
	require.NoError(t, err)
	assert.Equal(t, "age", def.ID)
	assert.Equal(t, "Age", def.Label)
	assert.False(t, def.IsCustom())
	assert.True(t, def.Ranges.IsComplete())

	_, err = catalog.Instantiate("shoe-size")
	require.ErrorIs(t, err, demographics.ErrUnknownTemplate)
}

func TestInstantiateCustom(t *testing.T) {
	catalog := demographics.DefaultCatalog()

	a, err := catalog.Instantiate(demographics.CustomTemplateID)
	require.NoError(t, err)
	b, err := catalog.Instantiate(demographics.CustomTemplateID)
	require.NoError(t, err)

	assert.True(t, a.IsCustom())
	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, a.Label)
	assert.Equal(t, []string{"Option 1", "Option 2"}, a.Ranges.Labels())
	assert.True(t, a.Ranges.IsComplete())
}

func TestNewCustomKeepsPrefix(t *testing.T) {
	assert.Equal(t, "custom-abc", demographics.NewCustom("abc").ID)
	assert.Equal(t, "custom-abc", demographics.NewCustom("custom-abc").ID)
}

func TestDefinitionJSON(t *testing.T) {
	catalog := demographics.DefaultCatalog()
	def, err := catalog.Instantiate("gender")
	require.NoError(t, err)

	data, err := json.Marshal(def)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"gender","label":"Gender","ranges":[{"label":"Male","value":50},{"label":"Female","value":50}]}`, string(data))

	var decoded demographics.Definition
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, def.Ranges.Ranges(), decoded.Ranges.Ranges())
}
