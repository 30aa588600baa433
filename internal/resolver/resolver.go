package resolver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// GroupEntry is one resolved ingredient line used when rendering a
// {group:NAME} placeholder.
type GroupEntry struct {
	Amount float64
	Unit   string
	Name   string
}

var (
	groupPattern = regexp.MustCompile(`\{group:([A-Za-z0-9_-]+)\}`)
	paramPattern = regexp.MustCompile(`\{([A-Za-z0-9_-]+)\}`)
)

// MergeParams merges template defaults with step-level overrides. Step values
// always win; unspecified defaults pass through unchanged. The inputs are
// never mutated.
func MergeParams(defaults, overrides map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// ResolveName substitutes {param} placeholders in a template name.
func ResolveName(name string, params map[string]interface{}) string {
	return substituteParams(name, params)
}

// ResolveInstructions renders each instruction template against the merged
// parameters and the named ingredient groups, preserving declaration order.
func ResolveInstructions(instructions []string, params map[string]interface{}, groups map[string][]GroupEntry) []string {
	out := make([]string, len(instructions))
	for i, tmpl := range instructions {
		out[i] = ResolveInstruction(tmpl, params, groups)
	}
	return out
}

// ResolveInstruction renders a single instruction template. Group
// placeholders resolve first; an unknown or empty group renders as the empty
// string. Unknown {param} placeholders are left literal.
func ResolveInstruction(tmpl string, params map[string]interface{}, groups map[string][]GroupEntry) string {
	resolved := groupPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := groupPattern.FindStringSubmatch(match)[1]
		return FormatGroup(groups[name])
	})
	return substituteParams(resolved, params)
}

// FormatGroup renders a resolved ingredient group as
// "<amount> <unit> <Name>" entries joined with ", ".
func FormatGroup(entries []GroupEntry) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s %s %s", FormatAmount(e.Amount), e.Unit, e.Name)
	}
	return strings.Join(parts, ", ")
}

// FormatAmount renders a quantity without a trailing ".0" on whole numbers.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func substituteParams(s string, params map[string]interface{}) string {
	return paramPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := paramPattern.FindStringSubmatch(match)[1]
		value, ok := params[name]
		if !ok {
			// Keep the literal placeholder; required params are checked
			// at assembly time, not here.
			return match
		}
		return formatValue(value)
	})
}

// formatValue renders a parameter value the way it appeared in the source
// document. JSON numbers decode as float64, so whole numbers must not pick
// up a decimal point.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
