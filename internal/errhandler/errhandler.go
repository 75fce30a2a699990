package errhandler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// HandleError prints err for the user. Cancelled prompts get a warning,
// everything else an error line.
func HandleError(err error) {
	if err == nil {
		return
	}
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return
	}
	pterm.Error.Println(Message(err))
}

// Message is the user-facing text of err.
func Message(err error) string {
	return Capitalize(err.Error())
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
