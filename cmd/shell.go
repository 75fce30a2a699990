package cmd

import (
	"fmt"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/errhandler"
	"github.com/hance08/bankbook/internal/service"
	"github.com/hance08/bankbook/internal/ui"
	"github.com/hance08/bankbook/internal/ui/prompts"
	"github.com/hance08/bankbook/internal/ui/views"
	"github.com/hance08/bankbook/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type shellRunner struct {
	app     *app.App
	confirm func(message string, defaultValue bool) (bool, error)
}

func newShellRunner(a *app.App) *shellRunner {
	return &shellRunner{
		app:     a,
		confirm: prompts.PromptConfirm,
	}
}

func NewShellCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		Aliases: []string{"sh"},
		Short:   "Start the interactive ledger shell (default)",
		Long: `Start the interactive ledger shell.

Accounts live only for the duration of the shell. Pick an action from the
menu; errors are reported and the shell keeps running until you choose Exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newShellRunner(state.app).Run()
		},
	}
}

func (r *shellRunner) Run() error {
	ui.PrintL1Title("bankbook")
	pterm.Info.Printf("Opening mode: %s. Next account number: %d\n", r.app.OpenMode(), r.app.Session.NextAccountID())

	for {
		action, err := prompts.PromptAction(r.menuTitle())
		if err != nil {
			if errhandler.IsCancelled(err) {
				return nil
			}
			return err
		}

		if action == prompts.ActionExit {
			leave, err := r.confirmExit()
			if err != nil && !errhandler.IsCancelled(err) {
				return err
			}
			if !leave {
				continue
			}
			pterm.Info.Println("Goodbye")
			return nil
		}

		if err := r.dispatch(action); err != nil {
			errhandler.HandleError(err)
		}
	}
}

// confirmExit asks before leaving when accounts would be discarded.
func (r *shellRunner) confirmExit() (bool, error) {
	n := len(r.app.Session.Accounts())
	if n == 0 {
		return true, nil
	}
	return r.confirm(fmt.Sprintf("Exit and discard %d account(s)? Nothing is saved.", n), false)
}

func (r *shellRunner) menuTitle() string {
	acc, err := r.app.Session.Current()
	if err != nil {
		return "No account selected"
	}
	return fmt.Sprintf("%s (balance %s)", acc, service.FormatAmount(acc.Balance()))
}

func (r *shellRunner) dispatch(action string) error {
	switch action {
	case prompts.ActionCreate:
		return r.create()
	case prompts.ActionDeposit:
		return r.deposit()
	case prompts.ActionWithdraw:
		return r.withdraw()
	case prompts.ActionBalance:
		return r.balance()
	case prompts.ActionStatement:
		return r.statement()
	case prompts.ActionSwitch:
		return r.switchAccount()
	case prompts.ActionList:
		return r.list()
	default:
		return fmt.Errorf("unknown action '%s'", action)
	}
}

func (r *shellRunner) create() error {
	// Lenient mode has to see negative input to clamp it.
	validator := func(s string) error { return validation.ValidateInitialBalance(s) }
	if r.app.Config.Ledger.LenientOpen {
		validator = func(s string) error {
			_, err := validation.ParseInitialBalance(s)
			return err
		}
	}

	input, err := prompts.PromptInitialBalance(validator)
	if err != nil {
		return err
	}

	acc, clamped, err := r.app.Session.CreateAccount(input)
	if err != nil {
		return err
	}
	return views.RenderAccountCreated(acc, clamped)
}

func (r *shellRunner) deposit() error {
	if _, err := r.app.Session.Current(); err != nil {
		return err
	}

	input, err := prompts.PromptDepositAmount()
	if err != nil {
		return err
	}

	amount, err := r.app.Session.Deposit(input)
	if err != nil {
		return fmt.Errorf("deposit error: %w", err)
	}

	pterm.Success.Printf("Deposited: %s\n", service.FormatAmount(amount))
	return nil
}

func (r *shellRunner) withdraw() error {
	balance, err := r.app.Session.Balance()
	if err != nil {
		return err
	}

	input, err := prompts.PromptWithdrawAmount(service.FormatAmount(balance))
	if err != nil {
		return err
	}

	amount, err := r.app.Session.Withdraw(input)
	if err != nil {
		return fmt.Errorf("withdrawal error: %w", err)
	}

	pterm.Success.Printf("Withdrew: %s\n", service.FormatAmount(amount))
	return nil
}

func (r *shellRunner) balance() error {
	acc, err := r.app.Session.Current()
	if err != nil {
		return err
	}
	return views.RenderBalance(acc, acc.Balance())
}

func (r *shellRunner) statement() error {
	acc, err := r.app.Session.Current()
	if err != nil {
		return err
	}

	if r.app.Config.Display.StatementStyle == "plain" {
		views.NewStatementView().RenderPlain(service.FormatStatement(acc, r.app.Config.Display.TimeFormat))
		return nil
	}

	rows, err := r.app.Session.StatementRows()
	if err != nil {
		return err
	}
	return views.NewStatementView().Render(acc, rows)
}

func (r *shellRunner) switchAccount() error {
	current, _ := r.app.Session.Current()

	selected, err := prompts.PromptAccount(r.app.Session.Accounts(), current)
	if err != nil {
		return err
	}

	if err := r.app.Session.Select(selected.ID()); err != nil {
		return err
	}
	pterm.Info.Printf("Selected: %s\n", selected)
	return nil
}

func (r *shellRunner) list() error {
	current, _ := r.app.Session.Current()
	return views.NewAccountListView().Render(r.app.Session.Accounts(), current)
}
