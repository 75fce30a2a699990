package service

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/bankbook/internal/config"
	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNoAccountSelected = errors.New("please select or create an account first")
	ErrAccountNotFound   = errors.New("account not found")
)

// Session is the front end's view of the ledger: the accounts opened during
// this run, which one is current, and text-to-amount parsing. It is meant for
// a single caller and is not safe for concurrent use.
type Session struct {
	registry *ledger.Registry
	cfg      *config.Config
	logger   *zap.Logger
	opts     []ledger.Option

	accounts []*ledger.Account
	byID     map[int64]*ledger.Account
	current  *ledger.Account
}

func NewSession(reg *ledger.Registry, cfg *config.Config, logger *zap.Logger, opts ...ledger.Option) *Session {
	return &Session{
		registry: reg,
		cfg:      cfg,
		logger:   logger,
		opts:     opts,
		byID:     make(map[int64]*ledger.Account),
	}
}

// CreateAccount opens an account from user input and makes it current.
// clamped is only ever true when lenient opening is configured.
// Empty input opens an account without an initial deposit.
func (s *Session) CreateAccount(initialInput string) (acc *ledger.Account, clamped bool, err error) {
	if strings.TrimSpace(initialInput) == "" {
		return s.add(ledger.OpenEmpty(s.registry, s.opts...)), false, nil
	}

	initial, err := validation.ParseAmount(initialInput)
	if err != nil {
		return nil, false, err
	}
	return s.Open(initial)
}

// Open opens an account with an already parsed opening balance.
func (s *Session) Open(initial decimal.Decimal) (acc *ledger.Account, clamped bool, err error) {
	if s.cfg.Ledger.LenientOpen {
		acc, clamped = ledger.OpenLenient(s.registry, initial, s.opts...)
		if clamped {
			s.logger.Warn("initial balance cannot be negative, setting balance to 0",
				zap.Int64("account_id", acc.ID()),
				zap.String("requested", initial.String()))
		}
	} else {
		acc, err = ledger.Open(s.registry, initial, s.opts...)
		if err != nil {
			s.logger.Warn("account creation rejected", zap.String("initial", initial.String()), zap.Error(err))
			return nil, false, fmt.Errorf("could not create account: %w", err)
		}
	}

	return s.add(acc), clamped, nil
}

func (s *Session) add(acc *ledger.Account) *ledger.Account {
	s.accounts = append(s.accounts, acc)
	s.byID[acc.ID()] = acc
	s.current = acc

	s.logger.Debug("account opened",
		zap.Int64("account_id", acc.ID()),
		zap.String("balance", acc.Balance().String()))
	return acc
}

// Deposit parses input and deposits it into the current account.
func (s *Session) Deposit(input string) (decimal.Decimal, error) {
	return s.apply("deposit", input, (*ledger.Account).Deposit)
}

// Withdraw parses input and withdraws it from the current account.
func (s *Session) Withdraw(input string) (decimal.Decimal, error) {
	return s.apply("withdraw", input, (*ledger.Account).Withdraw)
}

func (s *Session) apply(op, input string, fn func(*ledger.Account, decimal.Decimal) error) (decimal.Decimal, error) {
	acc, err := s.Current()
	if err != nil {
		return decimal.Zero, err
	}

	amount, err := validation.ParseAmount(input)
	if err != nil {
		return decimal.Zero, err
	}

	if err := fn(acc, amount); err != nil {
		s.logger.Warn(op+" rejected",
			zap.Int64("account_id", acc.ID()),
			zap.String("amount", amount.String()),
			zap.Error(err))
		return decimal.Zero, err
	}

	s.logger.Debug(op,
		zap.Int64("account_id", acc.ID()),
		zap.String("amount", amount.String()),
		zap.String("balance", acc.Balance().String()))
	return amount, nil
}

func (s *Session) Balance() (decimal.Decimal, error) {
	acc, err := s.Current()
	if err != nil {
		return decimal.Zero, err
	}
	return acc.Balance(), nil
}

func (s *Session) History() ([]ledger.TransactionRecord, error) {
	acc, err := s.Current()
	if err != nil {
		return nil, err
	}
	return acc.History(), nil
}

// StatementRows returns the current account's history ready for tabular display.
func (s *Session) StatementRows() ([]StatementRow, error) {
	history, err := s.History()
	if err != nil {
		return nil, err
	}
	return BuildStatementRows(history, s.cfg.Display.TimeFormat), nil
}

// WriteStatement writes the plain-text statement of the current account.
func (s *Session) WriteStatement(w io.Writer) error {
	acc, err := s.Current()
	if err != nil {
		return err
	}
	return WriteStatement(w, acc, s.cfg.Display.TimeFormat)
}

func (s *Session) Current() (*ledger.Account, error) {
	if s.current == nil {
		return nil, ErrNoAccountSelected
	}
	return s.current, nil
}

// Select makes the account with the given id current.
func (s *Session) Select(id int64) error {
	acc, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: #%d", ErrAccountNotFound, id)
	}
	s.current = acc
	return nil
}

// Accounts returns the accounts of this session in creation order.
func (s *Session) Accounts() []*ledger.Account {
	out := make([]*ledger.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// NextAccountID is the number the next opened account will get.
func (s *Session) NextAccountID() int64 {
	return s.registry.Peek()
}
