package befehl

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RichtersFinger/befehl/pkg/termwidth"
	"github.com/RichtersFinger/befehl/pkg/textutil"
)

// Usage returns the help text of the command at path below the root, e.g. Usage("todo", "add") for
// the "add" subcommand of root "todo". The root's own name may be omitted. Text is laid out for
// [termwidth.Fallback] columns without styling.
func (p *Program) Usage(path ...string) (string, error) {
	if len(path) > 0 && path[0] == p.root.cmd.Name {
		path = path[1:]
	}
	current := p.root
	for _, name := range path {
		sub, ok := current.subs[name]
		if !ok {
			return "", fmt.Errorf("command %q has no subcommand %q", current.path, name)
		}
		current = sub
	}
	return current.usage(io.Discard), nil
}

// usage renders help for w: sized to w's terminal width and styled only when w is a terminal.
func (c *compiled) usage(w io.Writer) string {
	if c.cmd.UsageFunc != nil {
		return c.cmd.UsageFunc(c.cmd)
	}

	width := termwidth.Of(w)
	header := lipgloss.NewStyle()
	if termwidth.IsTerminal(w) {
		header = lipgloss.NewRenderer(w).NewStyle().Bold(true)
	}

	var b strings.Builder
	b.WriteString(header.Render("Usage:") + " " + c.usageLine() + "\n")

	if c.cmd.ShortHelp != "" {
		b.WriteString("\n")
		for _, line := range textutil.Wrap(c.cmd.ShortHelp, width) {
			b.WriteString(line + "\n")
		}
	}

	if len(c.subOrder) > 0 {
		sorted := slices.Clone(c.subOrder)
		slices.SortFunc(sorted, func(a, b *compiled) int {
			return cmp.Compare(a.cmd.Name, b.cmd.Name)
		})
		rows := make([]textutil.Row, 0, len(sorted))
		for _, sub := range sorted {
			rows = append(rows, textutil.Row{Left: sub.cmd.Name, Right: sub.cmd.ShortHelp})
		}
		writeSection(&b, header.Render("Subcommands:"), rows, width)
	}

	if len(c.options) > 0 {
		rows := make([]textutil.Row, 0, len(c.options))
		for _, o := range c.options {
			rows = append(rows, textutil.Row{Left: o.label() + metavars(o), Right: o.Help})
		}
		writeSection(&b, header.Render("Options:"), rows, width)
	}

	if len(c.arguments) > 0 {
		rows := make([]textutil.Row, 0, len(c.arguments))
		for _, a := range c.arguments {
			rows = append(rows, textutil.Row{Left: a.Name, Right: a.Help})
		}
		writeSection(&b, header.Render("Arguments:"), rows, width)
	}

	if len(c.subOrder) > 0 && c.help != nil {
		fmt.Fprintf(&b, "\nUse \"%s <command> --help\" for more information about a command.\n", c.path)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (c *compiled) usageLine() string {
	if c.cmd.Usage != "" {
		return c.cmd.Usage
	}
	parts := []string{c.path}
	if len(c.subOrder) > 0 {
		parts = append(parts, "[<command>]")
	}
	if len(c.options) > 0 {
		parts = append(parts, "[options]")
	}
	for _, a := range c.arguments {
		if a.nargs() == Unlimited {
			parts = append(parts, fmt.Sprintf("[<%s> ...]", a.Name))
			continue
		}
		for range a.nargs() {
			parts = append(parts, fmt.Sprintf("<%s>", a.Name))
		}
	}
	return strings.Join(parts, " ")
}

func metavars(o *Option) string {
	var b strings.Builder
	for range o.Nargs {
		fmt.Fprintf(&b, " <%s>", strings.ToUpper(o.key()))
	}
	return b.String()
}

func writeSection(b *strings.Builder, title string, rows []textutil.Row, width int) {
	b.WriteString("\n" + title + "\n")
	for _, line := range textutil.Columns(rows, 2, 4, width) {
		b.WriteString(line + "\n")
	}
}
