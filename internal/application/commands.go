package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/superuser/internal/domain"
	"go.uber.org/zap"
)

type ErrorKind string

const (
	ErrorUnknownCommand  ErrorKind = "unknown_command"
	ErrorMissingArgument ErrorKind = "missing_argument"
	ErrorUnknownHost     ErrorKind = "unknown_host"
	ErrorAccessDenied    ErrorKind = "access_denied"
	ErrorAlreadyHacked   ErrorKind = "already_hacked"
	ErrorNotAManualPage  ErrorKind = "not_a_manual_page"
	ErrorNoExploit       ErrorKind = "no_exploit"
)

// CommandError is a non-fatal, user-facing failure. Its message is printed verbatim.
type CommandError struct {
	Kind    ErrorKind
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func commandError(kind ErrorKind, message string) error {
	return &CommandError{Kind: kind, Message: message}
}

var (
	errFilenameExpected = commandError(ErrorMissingArgument, "Filename expected")
	errAddressExpected  = commandError(ErrorMissingArgument, "Expected address")
	errNotAManualPage   = commandError(ErrorNotAManualPage, "Not a manual page")
	errNoHostFound      = commandError(ErrorUnknownHost, "Connection refused: no host found")
	errAccessDenied     = commandError(ErrorAccessDenied, "Connection refused: access denied")
	errAlreadyRoot      = commandError(ErrorAlreadyHacked, "Error: already root")
	errNoExploit        = commandError(ErrorNoExploit, "Error: no exploit available")
)

// IsCommandError reports whether err is a CommandError of the given kind.
func IsCommandError(err error, kind ErrorKind) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && cmdErr.Kind == kind
}

type command struct {
	usage string
	run   func(c *Console, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"clear": {usage: "clear", run: (*Console).clear},
		"ls":    {usage: "ls", run: (*Console).list},
		"print": {usage: "print <file>", run: (*Console).print},
		"ssh":   {usage: "ssh <address>", run: (*Console).ssh},
		"hack":  {usage: "hack <address>", run: (*Console).hack},
		"dc":    {usage: "dc", run: (*Console).disconnect},
		"help":  {usage: "help", run: (*Console).help},
	}
}

func (c *Console) dispatch(input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}

	cmd, ok := commands[fields[0]]
	if !ok {
		return commandError(ErrorUnknownCommand, fmt.Sprintf("Unknown command: %s", fields[0]))
	}

	return cmd.run(c, fields[1:])
}

func (c *Console) clear(_ []string) error {
	c.scrollback.Clear()
	return nil
}

func (c *Console) list(_ []string) error {
	host, ok := c.network.Lookup(c.current)
	if !ok {
		return nil
	}

	for _, name := range host.Files.Names() {
		c.println(name)
	}
	return nil
}

func (c *Console) print(args []string) error {
	if len(args) == 0 {
		return errFilenameExpected
	}

	host, ok := c.network.Lookup(c.current)
	if !ok {
		return errNotAManualPage
	}

	entry, ok := host.Files.Get(args[0])
	if !ok {
		return errNotAManualPage
	}

	ref, ok := entry.(domain.ManualReference)
	if !ok {
		return errNotAManualPage
	}

	manual, err := c.manuals.Clone(ref.ID)
	if err != nil {
		return errNotAManualPage
	}

	if c.printer != nil {
		c.printer.RequestPrint(manual)
	}
	return nil
}

func (c *Console) ssh(args []string) error {
	if len(args) == 0 {
		return errAddressExpected
	}

	host, ok := c.network.Lookup(args[0])
	if !ok {
		return errNoHostFound
	}
	if !host.Hacked {
		return errAccessDenied
	}

	c.current = host.Address
	return nil
}

func (c *Console) hack(args []string) error {
	if len(args) == 0 {
		return errAddressExpected
	}

	host, ok := c.network.Lookup(args[0])
	if !ok {
		return errNoHostFound
	}
	if host.Hacked {
		return errAlreadyRoot
	}

	kind, err := c.puzzles.Kind(host.PuzzleKind)
	if err != nil {
		c.logger.Warn("no puzzle for host", zap.String("host", host.Address), zap.Error(err))
		return errNoExploit
	}

	challenge := kind.Pairs[c.rng.IntN(len(kind.Pairs))]
	c.state = AwaitingAnswer{Expected: challenge.Answer, Target: host.Address}
	c.logger.Info("puzzle issued", zap.String("host", host.Address), zap.String("kind", kind.Name))
	c.println(challenge.Prompt)
	return nil
}

func (c *Console) disconnect(_ []string) error {
	c.current = c.network.Entry()
	return nil
}

func (c *Console) help(_ []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c.println("  " + commands[name].usage)
	}
	return nil
}
