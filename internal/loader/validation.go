package loader

import (
	"encoding/json"
	"fmt"

	"github.com/ovenworks/bakelab/internal/types"
)

// ValidationError reports the field that failed a structural check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// parseRecipes parses and validates a recipes document. The document must be
// an object with a "recipes" array; every element needs a non-empty id, a
// non-empty metadata name and a baseServings of at least 1.
func parseRecipes(raw []byte) (*types.RecipesDocument, error) {
	var doc types.RecipesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse recipes document: %w", err)
	}

	if doc.Recipes == nil {
		return nil, &ValidationError{Field: "recipes", Message: "missing array field"}
	}

	for i, r := range doc.Recipes {
		if r.ID == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("recipes[%d].id", i),
				Message: "must be a non-empty string",
			}
		}
		if r.Metadata.Name == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("recipes[%d].metadata.name", i),
				Message: "must be a non-empty string",
			}
		}
		if r.Metadata.BaseServings < 1 {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("recipes[%d].metadata.baseServings", i),
				Message: "must be at least 1",
			}
		}
	}

	return &doc, nil
}

// parseStepTemplates parses and validates a step-templates document. The
// document must be an object with a "stepTemplates" map; every entry needs a
// non-empty name and type.
func parseStepTemplates(raw []byte) (*types.StepTemplatesDocument, error) {
	var doc types.StepTemplatesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse step-templates document: %w", err)
	}

	if doc.StepTemplates == nil {
		return nil, &ValidationError{Field: "stepTemplates", Message: "missing map field"}
	}

	for id, tpl := range doc.StepTemplates {
		if tpl.Name == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("stepTemplates.%s.name", id),
				Message: "must be a non-empty string",
			}
		}
		if tpl.Type == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("stepTemplates.%s.type", id),
				Message: "must be a non-empty string",
			}
		}
	}

	return &doc, nil
}
