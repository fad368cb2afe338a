package befehl

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/RichtersFinger/befehl/pkg/suggest"
)

const separator = "--"

type itemKind int

const (
	itemLiteral itemKind = iota
	itemOption
	itemSeparator
)

// item is one normalized token: an option reference, a literal or the end-of-options separator.
type item struct {
	kind itemKind
	opt  *Option
	// text is the literal value, or the option name as spelled in the input.
	text string
}

// binding is the outcome of binding one command's tokens.
type binding struct {
	values     Values
	help       bool
	completion bool
}

// occurrence records how many values one appearance of an option collected.
type occurrence struct {
	opt   *Option
	name  string
	count int
}

// bind matches tokens against the command's options and arguments. It never prints or exits; every
// user error is returned as an *Error. The first "--" is dropped wherever it stands, so in "x -- -y"
// both "x" and "-y" are arguments; any later "--" is a literal.
func (c *compiled) bind(tokens []string) (*binding, error) {
	if b := c.shortCircuit(tokens); b != nil {
		return b, nil
	}

	items, err := c.normalize(tokens)
	if err != nil {
		return nil, err
	}

	values := make(Values)
	rest, occurrences, err := c.collectOptions(items, values)
	if err != nil {
		return nil, err
	}
	for _, occ := range occurrences {
		if occ.opt.strict() && occ.count != occ.opt.Nargs {
			return nil, newParseError(c, ErrArity, "option %q expects %d value(s), got %d", occ.name, occ.opt.Nargs, occ.count)
		}
	}

	literals := make([]string, 0, len(rest))
	for _, it := range rest {
		if it.kind == itemSeparator {
			continue
		}
		literals = append(literals, it.text)
	}
	literals, err = c.bindArguments(literals, values)
	if err != nil {
		return nil, err
	}
	if len(literals) > 0 {
		return nil, c.extraArgumentsError(literals)
	}
	return &binding{values: values}, nil
}

// shortCircuit reports a help or completion request found anywhere before the separator. Tokens are
// looked at the way normalize reads them, so "-vh" and "--help=x" count as well.
func (c *compiled) shortCircuit(tokens []string) *binding {
	for _, tok := range tokens {
		if tok == separator {
			return nil
		}
		for _, o := range c.spelledOptions(tok) {
			switch {
			case o == nil:
			case o == c.help:
				return &binding{help: true}
			case o == c.completion:
				return &binding{completion: true}
			}
		}
	}
	return nil
}

// spelledOptions returns the options tok refers to, with nil for names that are not declared.
func (c *compiled) spelledOptions(tok string) []*Option {
	if !strings.HasPrefix(tok, "-") {
		return nil
	}
	if o, ok := c.byName[tok]; ok {
		return []*Option{o}
	}
	if name, _, found := strings.Cut(tok, "="); found {
		return []*Option{c.byName[name]}
	}
	if utf8.RuneCountInString(tok) <= 2 || tok[1] == '-' {
		return nil
	}
	opts := make([]*Option, 0, len(tok)-1)
	for _, r := range tok[1:] {
		opts = append(opts, c.byName["-"+string(r)])
	}
	return opts
}

// normalize turns raw tokens into items. It splits --name=value, expands short option groups such as
// -abc and rejects unknown options. Everything after the separator is literal.
func (c *compiled) normalize(tokens []string) ([]item, error) {
	items := make([]item, 0, len(tokens))
	separated := false
	for _, tok := range tokens {
		if separated {
			items = append(items, item{kind: itemLiteral, text: tok})
			continue
		}
		if tok == separator {
			separated = true
			items = append(items, item{kind: itemSeparator, text: tok})
			continue
		}
		if !strings.HasPrefix(tok, "-") {
			items = append(items, item{kind: itemLiteral, text: tok})
			continue
		}
		if o, ok := c.byName[tok]; ok {
			items = append(items, item{kind: itemOption, opt: o, text: tok})
			continue
		}
		if name, value, found := strings.Cut(tok, "="); found {
			o, ok := c.byName[name]
			if !ok {
				return nil, c.unknownOptionError(name)
			}
			if o.Nargs == 0 {
				return nil, newParseError(c, ErrInlineValue, "option %q does not take values", name)
			}
			items = append(items,
				item{kind: itemOption, opt: o, text: name},
				item{kind: itemLiteral, text: value},
			)
			continue
		}
		if utf8.RuneCountInString(tok) > 2 && tok[1] != '-' {
			group, err := c.expandGroup(tok)
			if err != nil {
				return nil, err
			}
			items = append(items, group...)
			continue
		}
		return nil, c.unknownOptionError(tok)
	}
	return items, nil
}

func (c *compiled) expandGroup(tok string) ([]item, error) {
	group := make([]item, 0, len(tok)-1)
	for _, r := range tok[1:] {
		name := "-" + string(r)
		o, ok := c.byName[name]
		if !ok {
			return nil, newParseError(c, ErrUnknownOption, "unknown option %q in %q", name, tok)
		}
		if o.Nargs > 0 && o.strict() {
			return nil, newParseError(c, ErrMissingValues, "missing arguments for option %q in %q", name, tok)
		}
		group = append(group, item{kind: itemOption, opt: o, text: name})
	}
	return group, nil
}

// collectOptions consumes the leading run of options with their values and returns the remaining
// items. An option found after that run and before the separator is out of order.
func (c *compiled) collectOptions(items []item, values Values) ([]item, []occurrence, error) {
	var occurrences []occurrence
	i := 0
	for i < len(items) && items[i].kind == itemOption {
		it := items[i]
		i++
		key := it.opt.key()
		if _, ok := values[key]; !ok {
			values[key] = []any{}
		}
		count := 0
		for count < it.opt.Nargs && i < len(items) && items[i].kind == itemLiteral {
			v, err := it.opt.Parser.parse(items[i].text)
			if err != nil {
				return nil, nil, newParseError(c, ErrInvalidValue, "option %q: %v", it.text, err)
			}
			values[key] = append(values[key], v)
			count++
			i++
		}
		occurrences = append(occurrences, occurrence{opt: it.opt, name: it.text, count: count})
	}
	for _, it := range items[i:] {
		if it.kind == itemSeparator {
			break
		}
		if it.kind == itemOption {
			return nil, nil, newParseError(c, ErrOptionOrder, "option %q must come before arguments, use %q to pass it as an argument", it.text, separator)
		}
	}
	return items[i:], occurrences, nil
}

// bindArguments hands literals to the arguments in their resolved order and returns what is left.
func (c *compiled) bindArguments(literals []string, values Values) ([]string, error) {
	for _, a := range c.arguments {
		n := a.nargs()
		if n == Unlimited {
			n = len(literals)
		}
		bound := make([]any, 0, n)
		for len(bound) < n {
			if len(literals) == 0 {
				return nil, newParseError(c, ErrTooFewValues, "argument %q expects %d value(s), got %d", a.Name, n, len(bound))
			}
			v, err := a.Parser.parse(literals[0])
			if err != nil {
				return nil, newParseError(c, ErrInvalidValue, "argument %q: %v", a.Name, err)
			}
			bound = append(bound, v)
			literals = literals[1:]
		}
		values[a.Name] = bound
	}
	return literals, nil
}

func (c *compiled) unknownOptionError(name string) error {
	known := make([]string, 0, len(c.byName))
	for n := range c.byName {
		known = append(known, n)
	}
	slices.Sort(known)
	if similar := suggest.FindSimilar(name, known, 3); len(similar) > 0 {
		return newParseError(c, ErrUnknownOption, "unknown option %q, did you mean %s?", name, strings.Join(similar, " or "))
	}
	return newParseError(c, ErrUnknownOption, "unknown option %q", name)
}

func (c *compiled) extraArgumentsError(extra []string) error {
	msg := fmt.Sprintf("got %d extra argument(s)", len(extra))
	if len(c.subOrder) > 0 && len(c.arguments) == 0 {
		names := make([]string, 0, len(c.subOrder))
		for _, sub := range c.subOrder {
			names = append(names, sub.cmd.Name)
		}
		if similar := suggest.FindSimilar(extra[0], names, 3); len(similar) > 0 {
			msg += fmt.Sprintf(", unknown command %q, did you mean %s?", extra[0], strings.Join(similar, " or "))
		} else {
			msg += fmt.Sprintf(", unknown command %q", extra[0])
		}
	}
	return newParseError(c, ErrExtraArguments, "%s", msg)
}
