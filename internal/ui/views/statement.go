package views

import (
	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/service"
	"github.com/hance08/bankbook/internal/ui"
	"github.com/pterm/pterm"
)

type StatementView struct{}

func NewStatementView() *StatementView {
	return &StatementView{}
}

// Render prints the statement of one account as a table.
func (v *StatementView) Render(acc *ledger.Account, rows []service.StatementRow) error {
	pterm.Println()
	ui.PrintL2Title("Account Statement: %s", acc)

	tableData := pterm.TableData{
		{"Date", "Type", "Amount", "Balance"},
	}

	for _, row := range rows {
		var coloredType, coloredAmount string
		switch row.Kind {
		case ledger.KindDeposit:
			coloredType = pterm.Green(row.Type)
			coloredAmount = pterm.Green("+" + row.Amount)
		case ledger.KindWithdrawal:
			coloredType = pterm.Red(row.Type)
			coloredAmount = pterm.Red("-" + row.Amount)
		default: // Opening
			coloredType = pterm.Gray(row.Type)
			coloredAmount = row.Amount
		}

		tableData = append(tableData, []string{row.Date, coloredType, coloredAmount, row.Balance})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithRightAlignment().
		WithData(tableData).
		Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(rows))
	return nil
}

// RenderPlain prints the legacy plain-text statement.
func (v *StatementView) RenderPlain(statement string) {
	pterm.Println()
	pterm.Print(statement)
}
