package commands

import (
	"errors"
	"fmt"
)

// The errors below are the user-actionable command failures. Anything else a
// handler returns is treated as an infrastructure error: logged with its full
// cause and reported to the user as a generic retry message.

// BlacklistError means the target user is on the server blacklist.
type BlacklistError struct {
	Reason string
}

func (e *BlacklistError) Error() string {
	return "user is on the server blacklist: " + e.Reason
}

// NicknameTooLongError means a computed nickname exceeds Discord's 32
// character limit.
type NicknameTooLongError struct {
	Nickname string
}

func (e *NicknameTooLongError) Error() string {
	return fmt.Sprintf("nickname %q is longer than 32 characters", e.Nickname)
}

// ErrGuildNotSetUp means the guild has not run the setup command yet.
var ErrGuildNotSetUp = errors.New("guild is not set up")

// ErrTimeout means an awaited interactive step exceeded its deadline.
var ErrTimeout = errors.New("timeout reached")

// ParseError carries enough information to underline the offending fragment
// inside the original message text.
type ParseError struct {
	// Fragment is the raw token that failed to parse, or "" when a required
	// parameter was missing entirely.
	Fragment string
	// Param is the declared parameter name.
	Param string
	// Expected describes the expected type.
	Expected string
}

func (e *ParseError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("missing %s, expected a %s", e.Param, e.Expected)
	}
	return fmt.Sprintf("expected %s (%q) to be a %s", e.Param, e.Fragment, e.Expected)
}
