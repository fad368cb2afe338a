package befehl

// Unlimited as an [Argument] Nargs absorbs every remaining token.
const Unlimited = -1

// Argument declares a positional argument.
type Argument struct {
	// Name identifies the argument in [Values] and help output.
	Name string

	// Help describes the argument in help output.
	Help string

	// Nargs is the number of tokens the argument consumes. Zero means one; [Unlimited] takes the
	// rest of the input and is only allowed for a command's sole argument.
	Nargs int

	// Parser converts each token. Nil keeps the raw string.
	Parser Parser

	// Position orders the argument explicitly, see [At]. Either every argument of a command has a
	// position or none has; without positions the declaration order applies.
	Position *int
}

// At returns a pointer to n for use as [Argument.Position].
func At(n int) *int {
	return &n
}

func (a *Argument) nargs() int {
	if a.Nargs == 0 {
		return 1
	}
	return a.Nargs
}
