package befehl

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// BuildOptions controls which options [Build] adds to every command.
type BuildOptions struct {
	// DisableHelp drops the implicit -h/--help option.
	DisableHelp bool
	// DisableCompletion drops the implicit --generate-autocomplete option.
	DisableCompletion bool
}

// Program is a validated command tree, ready to parse input. It is read-only and safe to reuse.
type Program struct {
	root *compiled
}

// compiled holds the lookup structures the binder works on for one command.
type compiled struct {
	cmd        *Command
	path       string
	options    []*Option
	byName     map[string]*Option
	arguments  []*Argument
	keys       map[string]bool
	subs       map[string]*compiled
	subOrder   []*compiled
	help       *Option
	completion *Option
}

// Build validates the command tree rooted at root and prepares it for parsing. The checks run in a
// fixed order per command (options, then arguments, then subcommands, depth first) and the first
// violation is returned as a *[DeclarationError] or *[NoExecError]. The options parameter may be
// nil.
func Build(root *Command, options *BuildOptions) (*Program, error) {
	if root == nil {
		return nil, errors.New("failed to build: root command is nil")
	}
	if options == nil {
		options = &BuildOptions{}
	}
	if root.Name == "" {
		return nil, errors.New("failed to build: root command has no name")
	}
	if hasSpace(root.Name) {
		return nil, fmt.Errorf("failed to build: command name %q contains whitespace, must be a single word", root.Name)
	}
	c, err := compile(root, nil, options)
	if err != nil {
		return nil, fmt.Errorf("failed to build: %w", err)
	}
	return &Program{root: c}, nil
}

// MustBuild is like [Build] but panics on an invalid command tree.
func MustBuild(root *Command, options *BuildOptions) *Program {
	p, err := Build(root, options)
	if err != nil {
		panic(err)
	}
	return p
}

func compile(cmd *Command, parent []string, options *BuildOptions) (*compiled, error) {
	path := append(slices.Clone(parent), cmd.Name)
	c := &compiled{
		cmd:    cmd,
		path:   strings.Join(path, " "),
		byName: make(map[string]*Option),
		keys:   make(map[string]bool),
		subs:   make(map[string]*compiled),
	}
	if err := c.compileOptions(options); err != nil {
		return nil, err
	}
	if err := c.compileArguments(); err != nil {
		return nil, err
	}
	if err := c.compileSubCommands(path, options); err != nil {
		return nil, err
	}
	if len(cmd.SubCommands) == 0 && cmd.Exec == nil {
		return nil, &NoExecError{Command: c.path}
	}
	return c, nil
}

func (c *compiled) declError(decl, format string, args ...any) error {
	return &DeclarationError{Command: c.path, Declaration: decl, Reason: fmt.Sprintf(format, args...)}
}

func (c *compiled) compileOptions(options *BuildOptions) error {
	all := slices.Clone(c.cmd.Options)
	if !options.DisableHelp {
		c.help = helpOption()
		all = append(all, c.help)
	}
	if !options.DisableCompletion {
		c.completion = completionOption()
		all = append(all, c.completion)
	}
	for i, o := range all {
		if o == nil {
			return c.declError(fmt.Sprintf("option #%d", i), "is nil")
		}
		if len(o.Names) == 0 {
			return c.declError(fmt.Sprintf("option #%d", i), "has no names")
		}
		if o.Nargs < 0 {
			return c.declError(fmt.Sprintf("option %q", o.label()), "nargs must not be negative, got %d", o.Nargs)
		}
		for _, name := range o.Names {
			if err := c.checkOptionName(name); err != nil {
				return err
			}
			c.byName[name] = o
		}
		c.options = append(c.options, o)
	}
	return nil
}

func (c *compiled) checkOptionName(name string) error {
	decl := fmt.Sprintf("option %q", name)
	switch {
	case c.byName[name] != nil:
		return c.declError(decl, "name is already used by another option")
	case hasSpace(name):
		return c.declError(decl, "name must not contain whitespace")
	case !strings.HasPrefix(name, "-"):
		return c.declError(decl, "name must start with '-'")
	case name == "--":
		return c.declError(decl, "name must not be the separator '--'")
	case strings.Contains(name, "="):
		return c.declError(decl, "name must not contain '='")
	case len(name) < 2:
		return c.declError(decl, "name is too short")
	case !strings.HasPrefix(name, "--") && utf8.RuneCountInString(name) != 2:
		return c.declError(decl, "short names must be a single character, use '--' for long names")
	}
	return nil
}

func (c *compiled) compileArguments() error {
	args := c.cmd.Arguments
	for i, a := range args {
		if a == nil {
			return c.declError(fmt.Sprintf("argument #%d", i), "is nil")
		}
	}
	if len(args) > 1 {
		for _, a := range args {
			if a.Nargs < 0 {
				return c.declError(fmt.Sprintf("argument %q", a.Name), "unlimited nargs is only allowed for a command's sole argument")
			}
		}
	}
	positioned := 0
	for _, a := range args {
		if a.Position != nil {
			positioned++
		}
	}
	if positioned != 0 && positioned != len(args) {
		return c.declError("arguments", "either all or none of the arguments must have a position")
	}
	seen := make(map[int]string)
	for _, a := range args {
		if a.Position == nil {
			continue
		}
		if other, ok := seen[*a.Position]; ok {
			return c.declError(fmt.Sprintf("argument %q", a.Name), "position %d is already used by argument %q", *a.Position, other)
		}
		seen[*a.Position] = a.Name
	}

	for _, o := range c.options {
		key := o.key()
		if c.keys[key] {
			return c.declError(fmt.Sprintf("option %q", o.label()), "key %q is already used", key)
		}
		c.keys[key] = true
	}
	for _, a := range args {
		decl := fmt.Sprintf("argument %q", a.Name)
		switch {
		case a.Name == "":
			return c.declError("argument", "name must not be empty")
		case hasSpace(a.Name):
			return c.declError(decl, "name must not contain whitespace")
		case c.keys[a.Name]:
			return c.declError(decl, "name is already used")
		case a.Nargs < Unlimited:
			return c.declError(decl, "nargs must be positive or %d, got %d", Unlimited, a.Nargs)
		}
		c.keys[a.Name] = true
	}

	c.arguments = slices.Clone(args)
	if positioned > 0 {
		slices.SortStableFunc(c.arguments, func(a, b *Argument) int {
			return cmp.Compare(*a.Position, *b.Position)
		})
	}
	return nil
}

func (c *compiled) compileSubCommands(path []string, options *BuildOptions) error {
	names := make(map[string]bool)
	for i, sub := range c.cmd.SubCommands {
		if sub == nil {
			return c.declError(fmt.Sprintf("subcommand #%d", i), "is nil")
		}
		decl := fmt.Sprintf("subcommand %q", sub.Name)
		switch {
		case sub.Name == "":
			return c.declError("subcommand", "name must not be empty")
		case names[sub.Name]:
			return c.declError(decl, "name is already used by another subcommand")
		case hasSpace(sub.Name):
			return c.declError(decl, "name must not contain whitespace")
		case strings.HasPrefix(sub.Name, "-"):
			return c.declError(decl, "name must not start with '-'")
		}
		names[sub.Name] = true
	}
	for _, sub := range c.cmd.SubCommands {
		compiledSub, err := compile(sub, path, options)
		if err != nil {
			return err
		}
		c.subs[sub.Name] = compiledSub
		c.subOrder = append(c.subOrder, compiledSub)
	}
	return nil
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
