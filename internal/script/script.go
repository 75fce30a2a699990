package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hance08/bankbook/internal/service"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong number of arguments")
)

// LineError ties a failed command to its line in the script.
type LineError struct {
	Line    int
	Command string
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Command, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

type Options struct {
	// KeepGoing reports failed commands and continues instead of stopping.
	KeepGoing bool
}

type Result struct {
	Executed int
	Failed   []*LineError
}

// Runner executes ledger scripts against a session. One command per line:
//
//	open [amount]
//	deposit <amount>
//	withdraw <amount>
//	balance
//	statement
//	use <account id>
//	accounts
//
// Blank lines and lines starting with '#' are skipped.
type Runner struct {
	session *service.Session
	out     io.Writer
	opts    Options
}

func NewRunner(session *service.Session, out io.Writer, opts Options) *Runner {
	return &Runner{session: session, out: out, opts: opts}
}

func (r *Runner) Run(in io.Reader) (*Result, error) {
	res := &Result{}
	scanner := bufio.NewScanner(in)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := r.exec(strings.Fields(line)); err != nil {
			lineErr := &LineError{Line: lineNo, Command: line, Err: err}
			if !r.opts.KeepGoing {
				return res, lineErr
			}
			res.Failed = append(res.Failed, lineErr)
			fmt.Fprintf(r.out, "! %v\n", lineErr)
			continue
		}
		res.Executed++
	}

	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("failed to read script: %w", err)
	}
	return res, nil
}

func (r *Runner) exec(fields []string) error {
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "open":
		if len(args) > 1 {
			return fmt.Errorf("%w: usage: open [amount]", ErrUsage)
		}
		initial := ""
		if len(args) == 1 {
			initial = args[0]
		}
		acc, clamped, err := r.session.CreateAccount(initial)
		if err != nil {
			return err
		}
		if clamped {
			fmt.Fprintln(r.out, "Initial balance cannot be negative. Setting balance to 0.")
		}
		fmt.Fprintf(r.out, "Created: %s\n", acc)

	case "deposit":
		if len(args) != 1 {
			return fmt.Errorf("%w: usage: deposit <amount>", ErrUsage)
		}
		amount, err := r.session.Deposit(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Deposited: %s\n", service.FormatAmount(amount))

	case "withdraw":
		if len(args) != 1 {
			return fmt.Errorf("%w: usage: withdraw <amount>", ErrUsage)
		}
		amount, err := r.session.Withdraw(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Withdrew: %s\n", service.FormatAmount(amount))

	case "balance":
		if len(args) != 0 {
			return fmt.Errorf("%w: usage: balance", ErrUsage)
		}
		acc, err := r.session.Current()
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "%s\nCurrent Balance: %s\n", acc, service.FormatAmount(acc.Balance()))

	case "statement":
		if len(args) != 0 {
			return fmt.Errorf("%w: usage: statement", ErrUsage)
		}
		return r.session.WriteStatement(r.out)

	case "use":
		if len(args) != 1 {
			return fmt.Errorf("%w: usage: use <account id>", ErrUsage)
		}
		id, err := strconv.ParseInt(strings.TrimPrefix(args[0], "#"), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid account id '%s'", args[0])
		}
		if err := r.session.Select(id); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Selected: Account #%d\n", id)

	case "accounts":
		current, _ := r.session.Current()
		for _, acc := range r.session.Accounts() {
			marker := " "
			if acc == current {
				marker = "*"
			}
			fmt.Fprintf(r.out, "%s %s %10s\n", marker, acc, service.FormatAmount(acc.Balance()))
		}

	default:
		return fmt.Errorf("%w '%s'", ErrUnknownCommand, cmd)
	}

	return nil
}
