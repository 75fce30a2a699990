package prompts

import "github.com/hance08/bankbook/internal/validation"

const (
	ActionCreate    = "Create account"
	ActionDeposit   = "Deposit"
	ActionWithdraw  = "Withdraw"
	ActionBalance   = "Show balance"
	ActionStatement = "Show statement"
	ActionSwitch    = "Switch account"
	ActionList      = "List accounts"
	ActionExit      = "Exit"
)

var menuActions = []string{
	ActionCreate,
	ActionDeposit,
	ActionWithdraw,
	ActionBalance,
	ActionStatement,
	ActionSwitch,
	ActionList,
	ActionExit,
}

// PromptAction shows the main menu. title carries the current account.
func PromptAction(title string) (string, error) {
	return PromptSelect(title, menuActions, ActionDeposit)
}

func PromptDepositAmount() (string, error) {
	return PromptAmount("Deposit amount:", "Positive number, e.g. 50.00", validation.ValidateAmount)
}

func PromptWithdrawAmount(balance string) (string, error) {
	return PromptAmount("Withdrawal amount:", "Current balance: "+balance, validation.ValidateAmount)
}
