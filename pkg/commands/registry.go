package commands

import "database/sql"

// SQLClient is shared with the command handler packages, assigned once from
// main before the session opens.
var SQLClient *sql.DB

var (
	registered []*Command
	m          *CommandMap
)

// Register adds a top-level command tree to the static registry. Called from
// the handler packages' init functions.
func Register(cmd *Command) {
	registered = append(registered, cmd)
	m = NewCommandMap(registered)
}

// Match resolves args against the registry.
func Match(args *Arguments) (*Command, bool) {
	if m == nil {
		return nil, false
	}
	return m.Resolve(args)
}

// All returns the registered top-level commands.
func All() []*Command {
	return registered
}
