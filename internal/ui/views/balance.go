package views

import (
	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/service"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func RenderBalance(acc *ledger.Account, balance decimal.Decimal) error {
	tableData := pterm.TableData{
		{pterm.Blue("Account"), acc.String()},
		{pterm.Blue("Current Balance"), service.FormatAmount(balance)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
