package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption swaps survey's "?" for "-" so the account selector lines up
// with the huh prompts of the shell menu.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}
