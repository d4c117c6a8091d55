// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"fmt"
	"slices"
)

// Question type constants
const (
	TypeMultipleChoice = "multiple-choice"
	TypeSlider         = "slider"
	TypeNumeric        = "numeric"
	TypeTrueFalse      = "true-false"
)

var ErrUnknownQuestionType = errors.New("unknown question type")

// Question is one survey question. Which optional fields are used depends
// on Type.
type Question struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Step        *float64 `json:"step,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// QuestionTemplate describes a question type and its default configuration.
type QuestionTemplate struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Icon          string   `json:"icon"`
	DefaultConfig Question `json:"default_config"`
}

func ptr(v float64) *float64 { return &v }

// QuestionTemplates returns the supported question types in display order.
func QuestionTemplates() []QuestionTemplate {
	return []QuestionTemplate{
		{
			ID: TypeMultipleChoice, Label: "Multiple Choice", Icon: "☐",
			DefaultConfig: Question{
				Type:    TypeMultipleChoice,
				Options: []string{"Option 1", "Option 2", "Option 3", "Option 4"},
			},
		},
		{
			ID: TypeSlider, Label: "Scale (1-10)", Icon: "⟺",
			DefaultConfig: Question{Type: TypeSlider, Min: ptr(1), Max: ptr(10), Step: ptr(1)},
		},
		{
			ID: TypeNumeric, Label: "Numeric Input", Icon: "123",
			DefaultConfig: Question{Type: TypeNumeric, Min: ptr(0), Placeholder: "Enter a number"},
		},
		{
			ID: TypeTrueFalse, Label: "True/False", Icon: "✓/✗",
			DefaultConfig: Question{Type: TypeTrueFalse, Options: []string{"True", "False"}},
		},
	}
}

// QuestionTemplateFor returns the template for a question type.
func QuestionTemplateFor(questionType string) (QuestionTemplate, error) {
	for _, t := range QuestionTemplates() {
		if t.ID == questionType {
			return t, nil
		}
	}
	return QuestionTemplate{}, fmt.Errorf("%w: %q", ErrUnknownQuestionType, questionType)
}

// withDefaults fills the fields q leaves empty from its type's template.
// Question text is not checked.
func (q Question) withDefaults() (Question, error) {
	tpl, err := QuestionTemplateFor(q.Type)
	if err != nil {
		return Question{}, err
	}
	d := tpl.DefaultConfig

	switch q.Type {
	case TypeMultipleChoice, TypeTrueFalse:
		if len(q.Options) == 0 {
			q.Options = slices.Clone(d.Options)
		}
		q.Min, q.Max, q.Step, q.Placeholder = nil, nil, nil, ""
	case TypeSlider:
		if q.Min == nil {
			q.Min = d.Min
		}
		if q.Max == nil {
			q.Max = d.Max
		}
		if q.Step == nil {
			q.Step = d.Step
		}
		q.Options, q.Placeholder = nil, ""
	case TypeNumeric:
		if q.Min == nil {
			q.Min = d.Min
		}
		if q.Placeholder == "" {
			q.Placeholder = d.Placeholder
		}
		// Max stays optional
		q.Options, q.Step = nil, nil
	}

	return q, nil
}
