package commands

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func testCommands() []*Command {
	return []*Command{
		{
			Names: []string{"ping", "pong"},
		},
		{
			Names: []string{"blacklist", "bl"},
			Sub: []*Command{
				{Names: []string{"group"}},
				{Names: []string{"delete", "remove"}},
			},
		},
	}
}

func TestCommandMapResolve(t *testing.T) {
	c := qt.New(t)

	m := NewCommandMap(testCommands())

	tests := []struct {
		input    string
		name     string
		ok       bool
		leftover string
	}{
		{
			input: "ping",
			name:  "ping",
			ok:    true,
		},
		{
			// alias resolves to the same command
			input: "pong",
			name:  "ping",
			ok:    true,
		},
		{
			// case-insensitive at every level
			input: "BL GROUP 123",
			name:  "group",
			ok:    true,

			leftover: "123",
		},
		{
			input:    "blacklist delete 4",
			name:     "delete",
			ok:       true,
			leftover: "4",
		},
		{
			// unmatched second token stays for binding
			input:    "blacklist 123",
			name:     "blacklist",
			ok:       true,
			leftover: "123",
		},
		{
			input: "blacklist",
			name:  "blacklist",
			ok:    true,
		},
		{
			input: "nosuchcommand",
		},
		{
			input: "",
		},
	}

	for _, test := range tests {
		args := NewArguments(test.input)
		cmd, ok := m.Resolve(args)
		c.Assert(ok, qt.Equals, test.ok, qt.Commentf("input=%q", test.input))
		if !ok {
			continue
		}
		c.Assert(cmd.Name(), qt.Equals, test.name, qt.Commentf("input=%q", test.input))
		c.Assert(args.Rest(), qt.Equals, test.leftover, qt.Commentf("input=%q", test.input))
	}
}

func TestCommandMapAliasIdentity(t *testing.T) {
	c := qt.New(t)

	m := NewCommandMap(testCommands())

	byName, _ := m.Resolve(NewArguments("blacklist"))
	byAlias, _ := m.Resolve(NewArguments("bl"))
	c.Assert(byName, qt.Equals, byAlias)
}
