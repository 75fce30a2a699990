package views

import (
	"fmt"

	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/service"
	"github.com/hance08/bankbook/internal/ui"
	"github.com/pterm/pterm"
)

// RenderAccountCreated shows the summary of a freshly opened account.
func RenderAccountCreated(acc *ledger.Account, clamped bool) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", acc.ID())},
		{pterm.Blue("Opening Balance"), service.FormatAmount(acc.Balance())},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	if clamped {
		pterm.Warning.Println("Initial balance cannot be negative. Setting balance to 0.")
	}
	pterm.Success.Printf("Created: %s\n", acc)
	return nil
}
