package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/script"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type runFlags struct {
	KeepGoing bool
}

type runRunner struct {
	app   *app.App
	flags *runFlags
	out   io.Writer
	in    io.Reader
}

func NewRunCmd(state *appState) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run <file|->",
		Short: "Replay a ledger script",
		Long: `Replay a ledger script, one command per line. Use "-" to read from stdin.

Commands:
  open [amount]       open an account and make it current
  deposit <amount>    deposit into the current account
  withdraw <amount>   withdraw from the current account
  balance             print the current balance
  statement           print the statement of the current account
  use <id>            switch the current account
  accounts            list accounts opened so far

Lines starting with '#' are comments.`,
		Example: `  bankbook run session.txt
  printf 'open 100\nwithdraw 30\nstatement\n' | bankbook run -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &runRunner{
				app:   state.app,
				flags: flags,
				out:   cmd.OutOrStdout(),
				in:    cmd.InOrStdin(),
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.KeepGoing, "keep-going", "k", false, "Report failed commands and continue")

	return cmd
}

func (r *runRunner) Run(path string) error {
	in := r.in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	runner := script.NewRunner(r.app.Session, r.out, script.Options{KeepGoing: r.flags.KeepGoing})
	res, err := runner.Run(in)
	if err != nil {
		return err
	}

	if len(res.Failed) > 0 {
		pterm.Warning.Printf("%d command(s) executed, %d failed\n", res.Executed, len(res.Failed))
		return fmt.Errorf("%d command(s) failed", len(res.Failed))
	}
	return nil
}
