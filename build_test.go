package befehl

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(ctx context.Context, s *State) error { return nil }

func leaf(name string) *Command {
	return &Command{Name: name, Exec: noop}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("nil and unnamed root", func(t *testing.T) {
		t.Parallel()

		_, err := Build(nil, nil)
		require.ErrorContains(t, err, "root command is nil")

		_, err = Build(&Command{Exec: noop}, nil)
		require.ErrorContains(t, err, "root command has no name")

		_, err = Build(&Command{Name: "ro ot", Exec: noop}, nil)
		require.ErrorContains(t, err, `command name "ro ot" contains whitespace`)
	})
	t.Run("does not modify the tree", func(t *testing.T) {
		t.Parallel()
		opt := &Option{Names: []string{"--x"}}
		root := &Command{Name: "root", Options: []*Option{opt}, Exec: noop}

		_, err := Build(root, nil)
		require.NoError(t, err)
		_, err = Build(root, nil)
		require.NoError(t, err)
		assert.Equal(t, []*Option{opt}, root.Options)
	})
	t.Run("leaf without exec", func(t *testing.T) {
		t.Parallel()
		root := &Command{Name: "foo", Exec: noop, SubCommands: []*Command{{Name: "bar"}}}

		_, err := Build(root, nil)
		var noExecErr *NoExecError
		require.ErrorAs(t, err, &noExecErr)
		assert.ErrorContains(t, err, `command "foo bar" has no execution function`)
	})
	t.Run("group without exec", func(t *testing.T) {
		t.Parallel()
		_, err := Build(&Command{Name: "foo", SubCommands: []*Command{leaf("bar")}}, nil)
		require.NoError(t, err)
	})
	t.Run("must build panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { MustBuild(&Command{Name: "x"}, nil) })
		assert.NotPanics(t, func() { MustBuild(leaf("x"), nil) })
	})
}

func TestBuildOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options []*Option
		wantErr string
	}{
		{
			name:    "duplicate name",
			options: []*Option{{Names: []string{"--test"}}, {Names: []string{"--test"}}},
			wantErr: `option "--test": name is already used by another option`,
		},
		{
			name:    "duplicate name across spellings",
			options: []*Option{{Names: []string{"-t", "--test"}}, {Names: []string{"--test"}, Key: "other"}},
			wantErr: `option "--test": name is already used`,
		},
		{
			name:    "clashes with help",
			options: []*Option{{Names: []string{"-h", "--host"}}},
			wantErr: `option "-h": name is already used`,
		},
		{
			name:    "clashes with completion",
			options: []*Option{{Names: []string{"--generate-autocomplete"}, Key: "gen"}},
			wantErr: `option "--generate-autocomplete": name is already used`,
		},
		{name: "space", options: []*Option{{Names: []string{"--t est"}}}, wantErr: "must not contain whitespace"},
		{name: "newline", options: []*Option{{Names: []string{"--t\nest"}}}, wantErr: "must not contain whitespace"},
		{name: "tab", options: []*Option{{Names: []string{"--t\test"}}}, wantErr: "must not contain whitespace"},
		{name: "no dash", options: []*Option{{Names: []string{"test"}}}, wantErr: `option "test": name must start with '-'`},
		{name: "separator", options: []*Option{{Names: []string{"--"}}}, wantErr: `option "--": name must not be the separator`},
		{name: "equals", options: []*Option{{Names: []string{"--test=bad"}}}, wantErr: `option "--test=bad": name must not contain '='`},
		{name: "single dash", options: []*Option{{Names: []string{"-"}}}, wantErr: `option "-": name is too short`},
		{name: "long short name", options: []*Option{{Names: []string{"-test"}}}, wantErr: `option "-test": short names must be a single character`},
		{name: "no names", options: []*Option{{Help: "nameless"}}, wantErr: "option #0: has no names"},
		{name: "nil", options: []*Option{nil}, wantErr: "option #0: is nil"},
		{name: "negative nargs", options: []*Option{{Names: []string{"--x"}, Nargs: -1}}, wantErr: "nargs must not be negative"},
		{
			name:    "duplicate key",
			options: []*Option{{Names: []string{"--x"}}, {Names: []string{"-x"}}},
			wantErr: `key "x" is already used`,
		},
		{name: "multi byte short name", options: []*Option{{Names: []string{"-é"}}}},
		{name: "two rune short name", options: []*Option{{Names: []string{"-éa"}}}, wantErr: "short names must be a single character"},
		{name: "short and long", options: []*Option{{Names: []string{"-t", "--test"}}}},
		{name: "minimal long", options: []*Option{{Names: []string{"--x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Build(&Command{Name: "test", Options: tt.options, Exec: noop}, nil)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var declErr *DeclarationError
			require.ErrorAs(t, err, &declErr)
			assert.Equal(t, "test", declErr.Command)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("implicit options can be disabled", func(t *testing.T) {
		t.Parallel()
		root := &Command{
			Name:    "test",
			Options: []*Option{{Names: []string{"-h", "--host"}}, {Names: []string{"--generate-autocomplete"}}},
			Exec:    noop,
		}
		_, err := Build(root, &BuildOptions{DisableHelp: true, DisableCompletion: true})
		require.NoError(t, err)
	})
}

func TestBuildArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		arguments []*Argument
		wantErr   string
		wantOrder []string
	}{
		{
			name:      "unlimited with another",
			arguments: []*Argument{{Name: "a0", Nargs: Unlimited}, {Name: "a1"}},
			wantErr:   `argument "a0": unlimited nargs is only allowed for a command's sole argument`,
		},
		{
			name:      "unlimited alone",
			arguments: []*Argument{{Name: "args", Nargs: Unlimited}},
			wantOrder: []string{"args"},
		},
		{
			name:      "mixed positions",
			arguments: []*Argument{{Name: "a0", Position: At(-1)}, {Name: "a1"}},
			wantErr:   "either all or none of the arguments must have a position",
		},
		{
			name:      "all positioned",
			arguments: []*Argument{{Name: "a0", Position: At(1)}, {Name: "a1", Position: At(-1)}},
			wantOrder: []string{"a1", "a0"},
		},
		{
			name: "extreme positions",
			arguments: []*Argument{
				{Name: "a", Position: At(2)},
				{Name: "b", Position: At(math.MinInt)},
				{Name: "c", Position: At(math.MaxInt)},
			},
			wantOrder: []string{"b", "a", "c"},
		},
		{
			name:      "none positioned",
			arguments: []*Argument{{Name: "a0"}, {Name: "a1"}},
			wantOrder: []string{"a0", "a1"},
		},
		{
			name:      "duplicate position",
			arguments: []*Argument{{Name: "a0", Position: At(1)}, {Name: "a1", Position: At(1)}},
			wantErr:   `argument "a1": position 1 is already used by argument "a0"`,
		},
		{
			name:      "duplicate name",
			arguments: []*Argument{{Name: "a0"}, {Name: "a0"}},
			wantErr:   `argument "a0": name is already used`,
		},
		{
			name:      "name clashes with option key",
			arguments: []*Argument{{Name: "help"}},
			wantErr:   `argument "help": name is already used`,
		},
		{
			name:      "empty name",
			arguments: []*Argument{{}},
			wantErr:   "name must not be empty",
		},
		{
			name:      "nargs below unlimited",
			arguments: []*Argument{{Name: "a0", Nargs: -2}},
			wantErr:   "nargs must be positive or -1, got -2",
		},
		{
			name:      "nil",
			arguments: []*Argument{nil},
			wantErr:   "argument #0: is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := Build(&Command{Name: "test", Arguments: tt.arguments, Exec: noop}, nil)
			if tt.wantErr != "" {
				var declErr *DeclarationError
				require.ErrorAs(t, err, &declErr)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			var order []string
			for _, a := range p.root.arguments {
				order = append(order, a.Name)
			}
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestBuildSubCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		subs    []*Command
		wantErr string
	}{
		{name: "ambiguous", subs: []*Command{leaf("test"), leaf("test")}, wantErr: `subcommand "test": name is already used`},
		{name: "distinct", subs: []*Command{leaf("test1"), leaf("test2")}},
		{name: "space", subs: []*Command{leaf("te st")}, wantErr: "must not contain whitespace"},
		{name: "newline", subs: []*Command{leaf("te\nst")}, wantErr: "must not contain whitespace"},
		{name: "tab", subs: []*Command{leaf("te\tst")}, wantErr: "must not contain whitespace"},
		{name: "leading dash", subs: []*Command{leaf("-test")}, wantErr: `subcommand "-test": name must not start with '-'`},
		{name: "empty", subs: []*Command{leaf("")}, wantErr: "subcommand: name must not be empty"},
		{name: "nil", subs: []*Command{nil}, wantErr: "subcommand #0: is nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Build(&Command{Name: "test", SubCommands: tt.subs, Exec: noop}, nil)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("nested error names full path", func(t *testing.T) {
		t.Parallel()
		root := &Command{
			Name: "root",
			SubCommands: []*Command{{
				Name: "sub",
				SubCommands: []*Command{{
					Name:    "deep",
					Options: []*Option{{Names: []string{"bad"}}},
					Exec:    noop,
				}},
			}},
		}
		_, err := Build(root, nil)
		var declErr *DeclarationError
		require.ErrorAs(t, err, &declErr)
		assert.Equal(t, "root sub deep", declErr.Command)
		assert.EqualError(t, err, `failed to build: command "root sub deep": option "bad": name must start with '-'`)
	})
	t.Run("siblings checked before recursion", func(t *testing.T) {
		t.Parallel()
		root := &Command{
			Name: "root",
			SubCommands: []*Command{
				{Name: "a", Options: []*Option{{Names: []string{"bad"}}}, Exec: noop},
				leaf("-b"),
			},
		}
		_, err := Build(root, nil)
		assert.ErrorContains(t, err, `subcommand "-b"`)
	})
}
