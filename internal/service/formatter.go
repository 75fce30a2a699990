package service

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/bankbook/internal/ledger"
	"github.com/shopspring/decimal"
)

const (
	LabelOpened            = "Account opened"
	LabelOpenedWithDeposit = "Account opened with initial deposit"
	LabelDeposit           = "Deposit"
	LabelWithdrawal        = "Withdrawal"
)

type StatementRow struct {
	Date    string
	Type    string
	Kind    ledger.Kind
	Amount  string
	Balance string
}

// FormatAmount renders an amount with two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// RecordLabel is the statement wording for a record.
func RecordLabel(rec ledger.TransactionRecord) string {
	switch rec.Kind {
	case ledger.KindAccountOpened:
		if rec.InitialDeposit {
			return LabelOpenedWithDeposit
		}
		return LabelOpened
	case ledger.KindDeposit:
		return LabelDeposit
	case ledger.KindWithdrawal:
		return LabelWithdrawal
	default:
		return rec.Kind.String()
	}
}

func BuildStatementRows(history []ledger.TransactionRecord, timeFormat string) []StatementRow {
	rows := make([]StatementRow, 0, len(history))
	for _, rec := range history {
		rows = append(rows, StatementRow{
			Date:    rec.Timestamp.Format(timeFormat),
			Type:    RecordLabel(rec),
			Kind:    rec.Kind,
			Amount:  FormatAmount(rec.Amount),
			Balance: FormatAmount(rec.ResultingBalance),
		})
	}
	return rows
}

// StatementHeader is the first line of a plain-text statement.
func StatementHeader(acc *ledger.Account) string {
	return fmt.Sprintf("Account Statement for %s:", acc)
}

// FormatStatementLine renders one record as
// "<time> | Type: <label> | Amount: <amount> | Balance: <balance>".
func FormatStatementLine(row StatementRow) string {
	return fmt.Sprintf("%s | Type: %-10s | Amount: %10s | Balance: %10s", row.Date, row.Type, row.Amount, row.Balance)
}

func WriteStatement(w io.Writer, acc *ledger.Account, timeFormat string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, StatementHeader(acc))
	for _, row := range BuildStatementRows(acc.History(), timeFormat) {
		fmt.Fprintln(bw, FormatStatementLine(row))
	}
	return bw.Flush()
}

// FormatStatement returns the plain-text statement as a string.
func FormatStatement(acc *ledger.Account, timeFormat string) string {
	var sb strings.Builder
	_ = WriteStatement(&sb, acc, timeFormat)
	return sb.String()
}
