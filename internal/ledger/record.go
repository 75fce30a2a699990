package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindAccountOpened Kind = iota
	KindDeposit
	KindWithdrawal
)

func (k Kind) String() string {
	switch k {
	case KindAccountOpened:
		return "AccountOpened"
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	default:
		return "Unknown"
	}
}

// TransactionRecord is one entry of an account's history.
type TransactionRecord struct {
	Timestamp        time.Time
	Kind             Kind
	Amount           decimal.Decimal
	ResultingBalance decimal.Decimal
	// InitialDeposit marks an opening record whose balance was given
	// explicitly, even when it is zero.
	InitialDeposit bool
}

// Signed returns the amount with the sign it contributes to the balance.
func (r TransactionRecord) Signed() decimal.Decimal {
	if r.Kind == KindWithdrawal {
		return r.Amount.Neg()
	}
	return r.Amount
}
