// Package project models a scaffolding request.
package project

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var nameRE = regexp.MustCompile(`^[a-z0-9-]+$`)

// Request is a validated scaffolding request. It is never mutated after New
// returns it.
type Request struct {
	Template string `validate:"required"`
	Name     string `validate:"required,projectname"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	if err := v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return nameRE.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// NormalizeName lowercases a raw project name and converts spaces to
// hyphens. "My Cool App" becomes "my-cool-app". The result still has to
// pass ValidateName.
func NormalizeName(raw string) string {
	name := strings.TrimSpace(raw)
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}

// ValidateName reports whether a normalized project name is usable as a
// directory and package name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if !nameRE.MatchString(name) {
		return fmt.Errorf("project name %q may only contain lowercase letters, digits, and hyphens", name)
	}
	return nil
}

// New builds a Request from a template id and a raw project name. The name
// is normalized before validation.
func New(template, rawName string) (Request, error) {
	req := Request{Template: template, Name: NormalizeName(rawName)}
	if err := validate.Struct(req); err != nil {
		if req.Name != "" && !nameRE.MatchString(req.Name) {
			return Request{}, ValidateName(req.Name)
		}
		return Request{}, fmt.Errorf("invalid project request: %w", err)
	}
	return req, nil
}
