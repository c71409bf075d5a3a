package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldIssue is one user-correctable validation failure, addressed by the
// json path of the offending field.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Issues converts a validator error into the per-field issue list the API
// returns on 400. Non-validation errors collapse into a single pathless
// issue rather than leaking internals.
func Issues(err error) []FieldIssue {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldIssue{{Path: "", Message: "invalid request data"}}
	}

	issues := make([]FieldIssue, 0, len(validationErrors))
	for _, e := range validationErrors {
		issues = append(issues, FieldIssue{
			Path:    e.Field(),
			Message: message(e.Field(), e.Tag(), e.Param(), e.Kind().String()),
		})
	}
	return issues
}

// CheckField validates a single value against a rule and reports it under
// the given path. Used for partial-update payloads where only the provided
// fields are checked.
func CheckField(v *validator.Validate, path string, value any, rule string) *FieldIssue {
	err := v.Var(value, rule)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return &FieldIssue{Path: path, Message: "is invalid"}
	}
	e := validationErrors[0]
	return &FieldIssue{Path: path, Message: message(path, e.Tag(), e.Param(), e.Kind().String())}
}

func message(path, tag, param, kind string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", path)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", path)
	case "min":
		if kind == "string" {
			return fmt.Sprintf("%s must be at least %s characters", path, param)
		}
		return fmt.Sprintf("%s must be at least %s", path, param)
	case "max":
		if kind == "string" {
			return fmt.Sprintf("%s must be at most %s characters", path, param)
		}
		return fmt.Sprintf("%s must be at most %s", path, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", path, formatOneOf(param))
	case "max_current_year":
		return fmt.Sprintf("%s must not exceed the current year", path)
	default:
		return fmt.Sprintf("%s failed validation (%s)", path, tag)
	}
}

// formatOneOf turns the raw oneof param into a readable option list,
// unquoting values that contain spaces.
func formatOneOf(param string) string {
	var options []string
	for _, opt := range splitOneOf(param) {
		options = append(options, opt)
	}
	return strings.Join(options, ", ")
}

// splitOneOf splits a oneof parameter on spaces, honoring single quotes
// around multi-word values such as 'On Hold'.
func splitOneOf(param string) []string {
	var out []string
	var cur strings.Builder
	inQuote := false
	for _, r := range param {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
