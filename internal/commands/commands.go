package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
)

const prefix = "cmd "

// Builder declares a command's flags on a fresh FlagSet and returns the
// function to run once those flags are parsed. It is called on every
// execution, so flag defaults may reflect the current state.
type Builder func(fs *flag.FlagSet) func() error

// Command is a named subcommand.
type Command struct {
	Name  string
	Usage string
	build Builder
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "grid").
func (r *Registry) Register(name, usage string, build Builder) {
	r.cmds[name] = &Command{Name: name, Usage: usage, build: build}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Usage returns the one-line usage of the named command.
func (r *Registry) Usage(name string) (string, bool) {
	cmd, ok := r.cmds[name]
	if !ok {
		return "", false
	}
	return cmd.Usage, true
}

// Parse interprets line as a terminal line. If line starts with "cmd " (case-sensitive),
// the rest is split shell-style, so quoted arguments may hold spaces, and
// returned with ok true. Otherwise ok is false. A line with unbalanced quotes
// is a command with an error.
func Parse(line string) (args []string, ok bool, err error) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false, nil
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true, nil
	}
	args, err = shellwords.Parse(rest)
	if err != nil {
		return nil, true, fmt.Errorf("parse %q: %w", rest, err)
	}
	return args, true, nil
}

// ErrNoCommand is returned by Execute when args is empty.
var ErrNoCommand = errors.New("missing subcommand")

// Execute runs the subcommand in args[0] with args[1:] as flag arguments.
// Each call parses into a new FlagSet, so flags never leak between runs.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.build(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w (usage: cmd %s)", name, err, cmd.Usage)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected argument %q (usage: cmd %s)", name, fs.Arg(0), cmd.Usage)
	}
	return run()
}

// RegisterToggle adds a command that flips a boolean setting with a pair of
// mutually exclusive flags, e.g. "cmd grid --show" / "cmd grid --hide".
func (r *Registry) RegisterToggle(name, on, off string, set func(bool) error) {
	usage := fmt.Sprintf("%s --%s|--%s", name, on, off)
	r.Register(name, usage, func(fs *flag.FlagSet) func() error {
		enable := fs.Bool(on, false, "enable")
		disable := fs.Bool(off, false, "disable")
		return func() error {
			if *enable == *disable {
				return fmt.Errorf("%s: pass exactly one of --%s or --%s", name, on, off)
			}
			return set(*enable)
		}
	})
}
