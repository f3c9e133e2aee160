package commands

import "strings"

// CommandMap is a trie over command names and aliases, one level per
// sub-command table. It is built once at startup and read-only afterwards.
type CommandMap struct {
	entries map[string]*mapNode
}

type mapNode struct {
	cmd *Command
	sub map[string]*mapNode
}

// NewCommandMap indexes cmds and, recursively, their sub-commands. Names are
// lowercased; uniqueness per level is a registry-build invariant, not checked
// here.
func NewCommandMap(cmds []*Command) *CommandMap {
	return &CommandMap{entries: buildLevel(cmds)}
}

func buildLevel(cmds []*Command) map[string]*mapNode {
	level := make(map[string]*mapNode, len(cmds))
	for _, cmd := range cmds {
		node := &mapNode{cmd: cmd}
		if len(cmd.Sub) > 0 {
			node.sub = buildLevel(cmd.Sub)
		}
		for _, name := range cmd.Names {
			level[strings.ToLower(name)] = node
		}
	}
	return level
}

// Resolve greedily matches tokens from args against the trie and returns the
// deepest matched command. Tokens that do not name a sub-command are left in
// args for argument binding. ok is false when the first token matches nothing
// at the top level.
func (m *CommandMap) Resolve(args *Arguments) (*Command, bool) {
	token, ok := args.Peek()
	if !ok {
		return nil, false
	}

	node, ok := m.entries[strings.ToLower(token)]
	if !ok {
		return nil, false
	}
	args.Next()

	for node.sub != nil {
		token, ok := args.Peek()
		if !ok {
			break
		}
		next, ok := node.sub[strings.ToLower(token)]
		if !ok {
			break
		}
		args.Next()
		node = next
	}

	return node.cmd, true
}
