// Package terminal implements the command interpreter behind the portfolio's
// simulated terminal. It owns parsing, dispatch and the fixed command
// catalog; rendering and host-environment effects stay behind interfaces so
// the package runs the same under gin and under the local TUI.
package terminal

import (
	"fmt"
	"strings"
)

// Kind tags a Result so the renderer can style it.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindList    Kind = "list"
	KindHelp    Kind = "help"
)

// Result is the immutable output of one executed command.
type Result struct {
	Kind Kind
	Text string
}

// Handler runs one command. The argument string is everything after the
// command name. Returning (nil, nil) means side effect only.
type Handler func(args string) (*Result, error)

// Host is the capability surface handlers use for side effects that belong
// to the surrounding environment: opening links, composing mail, triggering
// the resume download, and driving the terminal chrome itself. All calls are
// fire-and-forget.
type Host interface {
	OpenURL(url string)
	OpenMail(address string)
	Download(path string)
	ClearTranscript()
	CloseTerminal()
}

// Profile carries the identity content the built-in commands render. Keeping
// it out of the package makes the interpreter testable with fixed content.
type Profile struct {
	Name        string
	Whoami      string
	Contact     string
	GitHubURL   string
	LinkedInURL string
	Email       string
	ResumePath  string
	Files       map[string]string // virtual file table backing ls/cat
}

type command struct {
	name        string
	description string
	run         Handler
}

// quitShorthand is matched verbatim, before case normalization, and always
// routes to the close handler.
const quitShorthand = ":q"

// Interpreter maps command names to handlers and executes input lines.
type Interpreter struct {
	host     Host
	profile  Profile
	commands map[string]*command
	order    []string
}

// New builds an interpreter with the full built-in catalog registered.
func New(host Host, profile Profile) *Interpreter {
	in := &Interpreter{
		host:     host,
		profile:  profile,
		commands: make(map[string]*command),
	}
	in.registerBuiltins()
	return in
}

// Register adds a handler under a case-insensitive name. Re-registering a
// name replaces the handler but keeps its position in the help listing.
func (in *Interpreter) Register(name, description string, run Handler) {
	key := strings.ToLower(name)
	if _, exists := in.commands[key]; !exists {
		in.order = append(in.order, key)
	}
	in.commands[key] = &command{name: key, description: description, run: run}
}

// Execute interprets one raw input line. It returns nil only for input that
// is empty after trimming; every other line produces a Result. Handler
// errors and panics are converted to error Results and never escape.
func (in *Interpreter) Execute(raw string) (res *Result) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return nil
	}

	var name, args string
	if line == quitShorthand {
		name = "exit"
	} else {
		tokens := strings.Fields(line)
		name = strings.ToLower(tokens[0])
		args = strings.Join(tokens[1:], " ")
	}

	cmd, ok := in.commands[name]
	if !ok {
		return &Result{
			Kind: KindError,
			Text: fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", name),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			res = &Result{Kind: KindError, Text: fmt.Sprintf("%v", r)}
		}
	}()

	out, err := cmd.run(args)
	if err != nil {
		return &Result{Kind: KindError, Text: err.Error()}
	}
	if out == nil {
		// Side-effect-only handler; renderers still expect a value.
		return &Result{Kind: KindInfo}
	}
	return out
}

// Has reports whether a command name is registered (case-insensitive).
func (in *Interpreter) Has(name string) bool {
	_, ok := in.commands[strings.ToLower(name)]
	return ok
}

// Commands returns the registered command names in registration order.
func (in *Interpreter) Commands() []string {
	names := make([]string, len(in.order))
	copy(names, in.order)
	return names
}

func (in *Interpreter) helpText() string {
	width := 0
	for _, name := range in.order {
		if len(name) > width {
			width = len(name)
		}
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range in.order {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, in.commands[name].description)
	}
	b.WriteString("\nShortcut: type ':q' to close the terminal.")
	return b.String()
}
