// Package prompt drives the interactive template and project-name questions.
package prompt

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"create-anchor-app/internal/project"
	"create-anchor-app/internal/template"
)

// ErrCancelled means the user interrupted a prompt. It is a deliberate
// non-error exit: the command layer reports it and exits 0.
var ErrCancelled = errors.New("operation cancelled")

// DefaultProjectName seeds the project-name prompt.
const DefaultProjectName = "my-anchor-app"

// SelectTemplate asks the user to pick a starter kit and returns its
// identifier.
func SelectTemplate(infos []template.Info) (string, error) {
	options := make([]string, len(infos))
	descriptions := make([]string, len(infos))
	for i, info := range infos {
		options[i] = info.Title
		descriptions[i] = info.Description
	}

	var idx int
	q := &survey.Select{
		Message: "Which template would you like to use?",
		Options: options,
		Description: func(value string, index int) string {
			return descriptions[index]
		},
	}
	if err := survey.AskOne(q, &idx); err != nil {
		return "", mapSurveyErr(err)
	}
	return infos[idx].Value, nil
}

// ProjectName asks for a project name and returns it normalized. Input that
// does not normalize to a valid name is rejected inline by the prompt.
func ProjectName() (string, error) {
	var raw string
	q := &survey.Input{
		Message: "What should the project be called?",
		Default: DefaultProjectName,
	}
	validate := func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected a string answer")
		}
		return project.ValidateName(project.NormalizeName(s))
	}
	if err := survey.AskOne(q, &raw, survey.WithValidator(validate)); err != nil {
		return "", mapSurveyErr(err)
	}
	return project.NormalizeName(raw), nil
}

func mapSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCancelled
	}
	return err
}
