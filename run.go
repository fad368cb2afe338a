package befehl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ParseAndRun builds the command tree and runs it against args. A convenience function that
// combines [Build] and [Program.Run] into a single call. See [Program.Run] for more details.
func ParseAndRun(
	ctx context.Context,
	root *Command,
	args []string,
	options *RunOptions,
) error {
	options = checkAndSetRunOptions(options)
	p, err := Build(root, &options.Build)
	if err != nil {
		return err
	}
	return p.Run(ctx, args, options)
}

// Main is the top-level entry point for a program. It reads the arguments from options.Args, or
// from [os.Args] without the program name when options.Args is nil, runs the command tree, prints a
// single diagnostic line to stderr on failure and returns the process exit code:
//
//	func main() {
//	    os.Exit(befehl.Main(context.Background(), root, nil))
//	}
func Main(ctx context.Context, root *Command, options *RunOptions) int {
	options = checkAndSetRunOptions(options)
	args := options.Args
	if args == nil {
		args = os.Args[1:]
	}
	err := ParseAndRun(ctx, root, args, options)
	code := ExitCode(err)
	if code != 0 {
		fmt.Fprintf(options.Stderr, "error: %v\n", err)
	}
	return code
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Args is the input used by [Main]. Nil means os.Args[1:].
	Args []string

	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger receives debug records about command selection and binding. Nil discards them.
	Logger *slog.Logger

	// Build is used by [ParseAndRun] and [Main] to build the command tree.
	Build BuildOptions
}

// Run parses args and dispatches to the selected command. Help and completion requests are written
// to stdout and reported as [ErrHelp], as is selecting a command that only groups subcommands. A
// failing [Command.Validate] is reported as an *[Error] with code [ErrValidation] and Exec is not
// called.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func (p *Program) Run(ctx context.Context, args []string, options *RunOptions) error {
	options = checkAndSetRunOptions(options)
	inv, err := p.parse(args, options.Logger)
	if err != nil {
		return err
	}
	target := inv.target

	switch {
	case inv.Help:
		return target.showHelp(options.Stdout)
	case inv.Completion:
		if err := p.writeCompletion(options.Stdout); err != nil {
			return err
		}
		return ErrHelp
	case target.cmd.Exec == nil:
		return target.showHelp(options.Stdout)
	}

	if target.cmd.Validate != nil {
		if err := target.cmd.Validate(inv.Values); err != nil {
			options.Logger.Debug("validation rejected input", "command", target.path, "error", err)
			return &Error{code: ErrValidation, command: target.path, err: err}
		}
	}

	state := &State{
		Values: inv.Values,
		Path:   target.path,
		Stdin:  options.Stdin,
		Stdout: options.Stdout,
		Stderr: options.Stderr,
		Logger: options.Logger,
		keys:   target.keys,
	}
	if err := target.cmd.Exec(ctx, state); err != nil {
		if cliErr := (*Error)(nil); errors.As(err, &cliErr) && cliErr.code == ErrShowHelp {
			_ = target.showHelp(options.Stderr)
		}
		return err
	}
	return nil
}

func (c *compiled) showHelp(w io.Writer) error {
	if _, err := io.WriteString(w, c.usage(w)+"\n"); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}
	return ErrHelp
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Logger == nil {
		opt.Logger = discardLogger()
	}
	return opt
}
