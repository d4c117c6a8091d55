// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package demographics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/survey-builder/allocation"
	"github.com/danielhkuo/survey-builder/ids"
)

// CustomPrefix marks a user-defined demographic id.
const CustomPrefix = "custom-"

// CustomTemplateID selects a fresh custom chart from the catalog.
const CustomTemplateID = "custom"

var ErrUnknownTemplate = errors.New("unknown demographic template")

// Definition is one demographic chart of a survey.
type Definition struct {
	ID     string              `json:"id"`
	Label  string              `json:"label"`
	Ranges allocation.RangeSet `json:"ranges"`
}

// IsCustom reports whether the definition was created by the author rather
// than taken from the catalog.
func (d Definition) IsCustom() bool {
	return strings.HasPrefix(d.ID, CustomPrefix)
}

// NewCustom returns a custom definition with a blank label and the default
// 50/50 two-option split.
func NewCustom(id string) Definition {
	if !strings.HasPrefix(id, CustomPrefix) {
		id = CustomPrefix + id
	}
	return Definition{
		ID: id,
		Ranges: allocation.MustRangeSet(
			allocation.Range{Label: "Option 1", Value: 50},
			allocation.Range{Label: "Option 2", Value: 50},
		),
	}
}

// Template is a catalog entry a chart can be seeded from.
type Template struct {
	ID     string              `json:"id"`
	Label  string              `json:"label"`
	Ranges allocation.RangeSet `json:"ranges"`
}

// Catalog is the static list of demographic templates.
type Catalog struct {
	templates []Template
}

// NewCatalog builds a catalog from templates in display order.
func NewCatalog(templates ...Template) Catalog {
	return Catalog{templates: append([]Template(nil), templates...)}
}

// DefaultCatalog returns the built-in templates.
func DefaultCatalog() Catalog {
	return NewCatalog(
		Template{ID: "age", Label: "Age", Ranges: allocation.MustRangeSet(
			allocation.Range{Label: "0-18", Value: 20},
			allocation.Range{Label: "19-35", Value: 35},
			allocation.Range{Label: "36-55", Value: 30},
			allocation.Range{Label: "56+", Value: 15},
		)},
		Template{ID: "gender", Label: "Gender", Ranges: allocation.MustRangeSet(
			allocation.Range{Label: "Male", Value: 50},
			allocation.Range{Label: "Female", Value: 50},
		)},
		Template{ID: "income", Label: "Income", Ranges: allocation.MustRangeSet(
			allocation.Range{Label: "Low", Value: 30},
			allocation.Range{Label: "Middle", Value: 50},
			allocation.Range{Label: "High", Value: 20},
		)},
		Template{ID: "education", Label: "Education", Ranges: allocation.MustRangeSet(
			allocation.Range{Label: "High School", Value: 40},
			allocation.Range{Label: "Bachelor's", Value: 35},
			allocation.Range{Label: "Master's", Value: 20},
			allocation.Range{Label: "Doctorate", Value: 5},
		)},
		Template{ID: "location", Label: "Location", Ranges: allocation.MustRangeSet(
			allocation.Range{Label: "Urban", Value: 55},
			allocation.Range{Label: "Suburban", Value: 30},
			allocation.Range{Label: "Rural", Value: 15},
		)},
	)
}

// List returns the templates in display order.
func (c Catalog) List() []Template {
	return append([]Template(nil), c.templates...)
}

// Lookup returns the template with the given id.
func (c Catalog) Lookup(id string) (Template, error) {
	for _, t := range c.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
}

// Instantiate returns a working definition for templateID. The custom
// template id yields a fresh custom chart.
func (c Catalog) Instantiate(templateID string) (Definition, error) {
	if templateID == CustomTemplateID {
		suffix, err := ids.ShortID()
		if err != nil {
			return Definition{}, err
		}
		return NewCustom(suffix), nil
	}

	t, err := c.Lookup(templateID)
	if err != nil {
		return Definition{}, err
	}
	return Definition{ID: t.ID, Label: t.Label, Ranges: t.Ranges}, nil
}
