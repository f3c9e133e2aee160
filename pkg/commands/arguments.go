package commands

// Arguments walks the argument portion of a message as whitespace-delimited
// tokens, while keeping the untouched remainder available for rest params.
type Arguments struct {
	raw string
	pos int
}

// NewArguments wraps raw argument text.
func NewArguments(raw string) *Arguments {
	return &Arguments{raw: raw}
}

func (a *Arguments) skipSpace() {
	for a.pos < len(a.raw) && isSpace(a.raw[a.pos]) {
		a.pos++
	}
}

// Next consumes and returns the next token. ok is false when the stream is
// exhausted.
func (a *Arguments) Next() (token string, ok bool) {
	a.skipSpace()
	if a.pos >= len(a.raw) {
		return "", false
	}
	start := a.pos
	for a.pos < len(a.raw) && !isSpace(a.raw[a.pos]) {
		a.pos++
	}
	return a.raw[start:a.pos], true
}

// Peek returns the next token without consuming it.
func (a *Arguments) Peek() (token string, ok bool) {
	pos := a.pos
	token, ok = a.Next()
	a.pos = pos
	return token, ok
}

// Rest returns everything left unconsumed, with leading whitespace stripped,
// and consumes it.
func (a *Arguments) Rest() string {
	a.skipSpace()
	rest := a.raw[a.pos:]
	a.pos = len(a.raw)
	return rest
}

// Count returns how many tokens remain without consuming any.
func (a *Arguments) Count() int {
	pos := a.pos
	n := 0
	for {
		if _, ok := a.Next(); !ok {
			break
		}
		n++
	}
	a.pos = pos
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
