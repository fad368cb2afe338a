package befehl

import (
	"io"
	"log/slog"
)

// Invocation is the outcome of parsing input against a [Program]: the selected command and what was
// bound to it, or a request for help or a completion script.
type Invocation struct {
	// Command is the selected command.
	Command *Command
	// Path is the space separated path of the selected command.
	Path string
	// Values is nil when Help or Completion is set.
	Values Values
	// Help is set when -h or --help was given.
	Help bool
	// Completion is set when --generate-autocomplete was given.
	Completion bool

	target *compiled
}

// Parse selects the command addressed by args and binds the remaining tokens to it. Subcommands are
// matched on the first remaining token only, so options of a parent command must not precede a
// subcommand name. Parse returns an *[Error] for any problem with the input; it does not print.
func (p *Program) Parse(args []string) (*Invocation, error) {
	return p.parse(args, discardLogger())
}

func (p *Program) parse(args []string, logger *slog.Logger) (*Invocation, error) {
	current := p.root
	for len(args) > 0 {
		sub, ok := current.subs[args[0]]
		if !ok {
			break
		}
		current = sub
		args = args[1:]
	}
	logger.Debug("selected command", "command", current.path, "tokens", args)

	b, err := current.bind(args)
	if err != nil {
		logger.Debug("binding failed", "command", current.path, "error", err)
		return nil, err
	}
	logger.Debug("bound input", "command", current.path, "values", b.values,
		"help", b.help, "completion", b.completion)
	return &Invocation{
		Command:    current.cmd,
		Path:       current.path,
		Values:     b.values,
		Help:       b.help,
		Completion: b.completion,
		target:     current,
	}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
