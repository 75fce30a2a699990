package views

import (
	"fmt"

	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/service"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

// Render lists the session's accounts; the current one is marked with "*".
func (v *AccountListView) Render(accounts []*ledger.Account, current *ledger.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts yet")
		return nil
	}

	tableData := pterm.TableData{{"", "Account", "Balance", "Transactions"}}

	for _, acc := range accounts {
		marker := ""
		name := acc.String()
		balance := service.FormatAmount(acc.Balance())
		if acc == current {
			marker = pterm.Cyan("*")
			name = pterm.Cyan(name)
			balance = pterm.Cyan(balance)
		}
		tableData = append(tableData, []string{marker, name, balance, fmt.Sprintf("%d", len(acc.History()))})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}
