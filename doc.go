// Package befehl is a declarative command-line parser. Options, positional arguments and nested
// subcommands are declared as data on a [Command]; [Build] validates the declarations once, and
// [Program.Run] binds process input against them and dispatches to the selected command.
//
// Input is bound in a fixed order: subcommand names first, then options with their values, then
// arguments. Options accept "--name value", "--name=value", grouped short flags ("-abc") and the
// end-of-options separator "--".
//
//	root := &befehl.Command{
//	    Name:      "greet",
//	    Options:   []*befehl.Option{{Names: []string{"-n", "--times"}, Nargs: 1, Parser: befehl.Int}},
//	    Arguments: []*befehl.Argument{{Name: "who"}},
//	    Exec: func(ctx context.Context, s *befehl.State) error {
//	        fmt.Fprintln(s.Stdout, "hello", befehl.GetValue[string](s, "who"))
//	        return nil
//	    },
//	}
//	os.Exit(befehl.Main(context.Background(), root, nil))
package befehl
