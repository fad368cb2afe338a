package befehl

import (
	"context"
)

// Command represents a CLI command or subcommand within the application's command hierarchy.
//
// A Command is plain data. [Build] validates the whole tree once and never modifies it, so the same
// tree can be built any number of times.
type Command struct {
	// Name is always a single word representing the command's name. It is used to identify the
	// command in the command hierarchy and in help text.
	Name string

	// Usage overrides the generated usage line.
	//
	// Example: "todo add [options] <text>..."
	Usage string

	// ShortHelp is a brief description of the command's purpose. It is displayed in the help text
	// when the command is shown.
	ShortHelp string

	// UsageFunc is an optional function that replaces the generated help text entirely.
	UsageFunc func(*Command) string

	// Options are the named options of this command. Options are not inherited by subcommands.
	Options []*Option

	// Arguments are the positional arguments of this command, bound after all options.
	Arguments []*Argument

	// SubCommands is a list of nested commands that exist under this command. A subcommand is
	// selected when its name is the first remaining token.
	SubCommands []*Command

	// Validate is an optional post-parse check. A non-nil error is reported to the user and Exec is
	// not called.
	Validate func(v Values) error

	// Exec defines the command's execution logic. It receives the current application [State] and
	// returns an error if execution fails. A command without subcommands must have an Exec; a
	// command with subcommands and no Exec prints its help when selected.
	Exec func(ctx context.Context, s *State) error
}

// AddOption appends options to the command and returns the command for chaining.
func (c *Command) AddOption(opts ...*Option) *Command {
	c.Options = append(c.Options, opts...)
	return c
}

// AddArgument appends arguments to the command and returns the command for chaining.
func (c *Command) AddArgument(args ...*Argument) *Command {
	c.Arguments = append(c.Arguments, args...)
	return c
}

// AddCommand appends subcommands to the command and returns the command for chaining.
func (c *Command) AddCommand(subs ...*Command) *Command {
	c.SubCommands = append(c.SubCommands, subs...)
	return c
}
