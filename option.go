package befehl

import "strings"

// Option declares a named option such as "-v" or "--output". Options are read-only once the
// command tree is built.
type Option struct {
	// Names lists every spelling of the option, e.g. {"-o", "--output"}. Short names are a single
	// dash and one character, long names two dashes and at least one character.
	Names []string

	// Key identifies the option in [Values]. Defaults to the first long name without its dashes, or
	// the short name without its dash when there is no long name.
	Key string

	// Help describes the option in help output.
	Help string

	// Nargs is the number of values that follow the option. Zero declares a flag.
	Nargs int

	// Lenient disables the check that every occurrence collects exactly Nargs values. A lenient
	// option takes up to Nargs values and may appear in a short option group.
	Lenient bool

	// Parser converts each value. Nil keeps the raw string.
	Parser Parser
}

func (o *Option) key() string {
	if o.Key != "" {
		return o.Key
	}
	for _, name := range o.Names {
		if strings.HasPrefix(name, "--") {
			return strings.TrimPrefix(name, "--")
		}
	}
	if len(o.Names) == 0 {
		return ""
	}
	return strings.TrimPrefix(o.Names[0], "-")
}

func (o *Option) strict() bool {
	return !o.Lenient
}

func (o *Option) label() string {
	return strings.Join(o.Names, ", ")
}

// helpOption and completionOption are added to every command unless disabled in [BuildOptions].
func helpOption() *Option {
	return &Option{Names: []string{"-h", "--help"}, Key: "help", Help: "show this help and exit"}
}

func completionOption() *Option {
	return &Option{
		Names: []string{"--generate-autocomplete"},
		Key:   "generate-autocomplete",
		Help:  "print a bash completion script and exit",
	}
}
