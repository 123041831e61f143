package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"lmsadmin/internal/gateway"
	"lmsadmin/internal/model"
	"lmsadmin/internal/session"
	"lmsadmin/internal/state"
	"lmsadmin/internal/validation"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	gw       *gateway.Client
	sessions *session.Store
	courses  *state.List[model.Course]
	lectures *state.List[model.Lecture]
	logger   zerolog.Logger
	in       io.Reader
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL -password PASSWORD       - sign in")
	fmt.Fprintln(cli.out, "  logout                                      - sign out")
	fmt.Fprintln(cli.out, "  register -name NAME -email EMAIL ...        - create an account")
	fmt.Fprintln(cli.out, "  whoami                                      - show the signed-in user")
	fmt.Fprintln(cli.out, "  profile show|update [flags]                 - view or edit the profile")
	fmt.Fprintln(cli.out, "  course list|get|create|edit|delete [flags]  - manage courses")
	fmt.Fprintln(cli.out, "  lecture list|create|edit|delete [flags]     - manage lectures")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.login(ctx, args[2:])
	case "logout":
		return cli.logout(ctx)
	case "register":
		return cli.register(ctx, args[2:])
	case "whoami":
		return cli.whoami()
	case "profile":
		return cli.profile(ctx, args[2:])
	case "course":
		return cli.course(ctx, args[2:])
	case "lecture":
		return cli.lecture(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// notifier prints the transient messages the forms emit, standing in for the
// toast layer.
type notifier struct {
	out io.Writer
}

func (n notifier) Success(msg string) { fmt.Fprintln(n.out, msg) }
func (n notifier) Error(msg string)   { fmt.Fprintln(n.out, "error: "+msg) }

// confirmPrompt asks the yes/no question for a pending delete and reports
// the answer. Anything but an explicit yes is a no.
func (cli *commandLine) confirmPrompt(prompt string) bool {
	fmt.Fprintf(cli.out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(cli.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (cli *commandLine) printFieldErrors(err error) {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		return
	}
	for _, f := range verr.Fields {
		fmt.Fprintf(cli.out, "  %s: %s\n", f.Field, f.Message)
	}
}

// flagWasSet reports whether the named flag appeared on the command line,
// distinguishing an explicit zero from an absent one.
func flagWasSet(fs *flag.FlagSet, name string) bool {
	var set bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
