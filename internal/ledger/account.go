package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a balance and the ordered history of everything that changed it.
// All methods are safe for concurrent use.
type Account struct {
	mu      sync.Mutex
	id      int64
	balance decimal.Decimal
	log     []TransactionRecord
	now     func() time.Time
}

type Option func(*Account)

// WithClock replaces the wall clock used to stamp history records.
func WithClock(now func() time.Time) Option {
	return func(a *Account) {
		a.now = now
	}
}

// Open creates an account with the given opening balance. A negative opening
// balance is rejected before an account number is taken from the registry.
func Open(reg *Registry, initial decimal.Decimal, opts ...Option) (*Account, error) {
	if initial.IsNegative() {
		return nil, invalidAmount("initial balance cannot be negative", initial)
	}
	return newAccount(reg, initial, true, opts), nil
}

// OpenEmpty creates an account with no opening balance.
func OpenEmpty(reg *Registry, opts ...Option) *Account {
	return newAccount(reg, decimal.Zero, false, opts)
}

// OpenLenient is the legacy construction mode: a negative opening balance is
// clamped to zero instead of rejected. clamped reports whether that happened.
func OpenLenient(reg *Registry, initial decimal.Decimal, opts ...Option) (acc *Account, clamped bool) {
	if initial.IsNegative() {
		return newAccount(reg, decimal.Zero, false, opts), true
	}
	return newAccount(reg, initial, true, opts), false
}

func newAccount(reg *Registry, initial decimal.Decimal, explicit bool, opts []Option) *Account {
	a := &Account{
		id:      reg.NextID(),
		balance: initial,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.record(KindAccountOpened, initial)
	a.log[0].InitialDeposit = explicit
	return a
}

func (a *Account) ID() int64 {
	return a.id
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidAmount("deposit amount must be positive", amount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	a.record(KindDeposit, amount)
	return nil
}

func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidAmount("withdrawal amount must be positive", amount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.GreaterThan(a.balance) {
		return &InsufficientFundsError{Balance: a.balance, Requested: amount}
	}

	a.balance = a.balance.Sub(amount)
	a.record(KindWithdrawal, amount)
	return nil
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns a copy of the log in chronological order.
func (a *Account) History() []TransactionRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]TransactionRecord, len(a.log))
	copy(out, a.log)
	return out
}

func (a *Account) String() string {
	return fmt.Sprintf("Account #%d", a.id)
}

// record must be called with a.mu held (or before the account is shared).
func (a *Account) record(kind Kind, amount decimal.Decimal) {
	a.log = append(a.log, TransactionRecord{
		Timestamp:        a.now().Truncate(time.Second),
		Kind:             kind,
		Amount:           amount,
		ResultingBalance: a.balance,
	})
}
