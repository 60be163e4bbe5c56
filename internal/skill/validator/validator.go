// Package validator checks Skill manifests before they are scaffolded or
// installed.
package validator

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/skillpack/skillpack/internal/skill"
)

// maxNameLength is the maximum allowed length for skill names.
const maxNameLength = 64

// nameRegex validates skill names: lowercase alphanumeric segments joined
// by single hyphens, no leading/trailing hyphen.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator validates Skill manifests.
type Validator struct{}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks a Skill for well-formedness.
// Returns a slice of validation errors, or nil if valid.
func (v *Validator) Validate(s *skill.Skill) []error {
	var errs []error
	errs = append(errs, v.validateName(s.Name)...)
	errs = append(errs, v.validateDescription(s.Description)...)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateDir validates a skill and additionally checks that the skill name
// matches the containing directory name.
func (v *Validator) ValidateDir(s *skill.Skill, dir string) []error {
	errs := v.Validate(s)

	if s.Name != "" && filepath.Base(dir) != s.Name {
		errs = append(errs, &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("skill name must match directory name %q", filepath.Base(dir)),
			Value:   s.Name,
		})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) validateName(name string) []error {
	var errs []error

	if name == "" {
		errs = append(errs, &ValidationError{Field: "name", Message: "name is required"})
		return errs
	}

	if len(name) > maxNameLength {
		errs = append(errs, &ValidationError{
			Field:   "name",
			Message: "name exceeds maximum length of 64 characters",
			Value:   name,
		})
	}

	if !nameRegex.MatchString(name) {
		msg := "name must be lowercase alphanumeric with single hyphens between segments"
		if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
			msg = "name cannot start or end with a hyphen"
		} else if strings.Contains(name, "--") {
			msg = "name cannot contain consecutive hyphens"
		} else if strings.ToLower(name) != name {
			msg = "name must be lowercase"
		}
		errs = append(errs, &ValidationError{Field: "name", Message: msg, Value: name})
	}

	return errs
}

func (v *Validator) validateDescription(description string) []error {
	if description == "" {
		return []error{&ValidationError{Field: "description", Message: "description is required"}}
	}
	if strings.TrimSpace(description) == "" {
		return []error{&ValidationError{
			Field:   "description",
			Message: "description cannot be only whitespace",
			Value:   description,
		}}
	}
	return nil
}
