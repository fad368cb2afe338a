package befehl

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
)

var nonIdentifier = regexp.MustCompile(`[^A-Za-z0-9_]`)

// writeCompletion prints a bash completion script for the whole tree. Words are fixed at build time:
// subcommand names and option names of the command addressed so far.
func (p *Program) writeCompletion(w io.Writer) error {
	name := p.root.cmd.Name
	fn := "_" + nonIdentifier.ReplaceAllString(name, "_") + "_completion"

	var paths, cases strings.Builder
	var walk func(c *compiled)
	walk = func(c *compiled) {
		var words []string
		for _, sub := range c.subOrder {
			words = append(words, sub.cmd.Name)
		}
		for _, o := range c.options {
			words = append(words, o.Names...)
		}
		slices.Sort(words)
		fmt.Fprintf(&cases, "        %q) words=%q ;;\n", c.path, strings.Join(words, " "))
		for _, sub := range c.subOrder {
			fmt.Fprintf(&paths, "            %q) cmd=\"$cmd ${COMP_WORDS[i]}\" ;;\n", sub.path)
			walk(sub)
		}
	}
	walk(p.root)

	_, err := fmt.Fprintf(w, bashCompletion, fn, name, paths.String(), cases.String(), fn, name)
	if err != nil {
		return fmt.Errorf("failed to write completion script: %w", err)
	}
	return nil
}

const bashCompletion = `%s() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    local cmd=%q
    local words=""
    local i
    for ((i = 1; i < COMP_CWORD; i++)); do
        case "$cmd ${COMP_WORDS[i]}" in
%s            *) break ;;
        esac
    done
    case "$cmd" in
%s    esac
    COMPREPLY=( $(compgen -W "$words" -- "$cur") )
}
complete -F %s %s
`
