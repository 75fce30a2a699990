package prompts

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/ui"
)

// PromptAccount asks which session account should become current.
func PromptAccount(accounts []*ledger.Account, current *ledger.Account) (*ledger.Account, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("no accounts to choose from")
	}

	options := make([]string, len(accounts))
	byLabel := make(map[string]*ledger.Account, len(accounts))
	for i, acc := range accounts {
		options[i] = acc.String()
		byLabel[options[i]] = acc
	}

	prompt := &survey.Select{
		Message:  "Select account:",
		Options:  options,
		PageSize: 10,
	}
	if current != nil {
		prompt.Default = current.String()
	}

	var selected string
	if err := survey.AskOne(prompt, &selected, ui.IconOption()); err != nil {
		return nil, err
	}

	return byLabel[selected], nil
}

// PromptInitialBalance prompts for initial balance with validation
func PromptInitialBalance(validator func(string) error) (string, error) {
	return PromptInput("Initial Balance (press Enter for 0):", "0", validator)
}
