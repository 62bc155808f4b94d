package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption sets the question icon to "-" so survey prompts match the huh
// forms around them.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}
