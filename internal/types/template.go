package types

// StepTemplateDefinition is a reusable step blueprint. Name and Instructions
// may contain {param} and {group:NAME} placeholders.
type StepTemplateDefinition struct {
	Name           string                 `json:"name"`
	Type           string                 `json:"type"`
	Instructions   []string               `json:"instructions"`
	RequiredParams []string               `json:"requiredParams,omitempty"`
	DefaultParams  map[string]interface{} `json:"defaultParams,omitempty"`
}

// StepTemplatesDocument is the top-level shape of the step-templates resource.
type StepTemplatesDocument struct {
	StepTemplates map[string]StepTemplateDefinition `json:"stepTemplates"`
}
