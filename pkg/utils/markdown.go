package utils

import "strings"

// EscapeMarkdown neutralizes Discord markdown in user-supplied text so
// usernames and blacklist reasons render verbatim inside embeds.
func EscapeMarkdown(s string) (o string) {
	o = s
	o = strings.ReplaceAll(o, `\`, `\\`)
	o = EscapeCodeBlock(o)
	o = strings.ReplaceAll(o, `_`, `\_`)
	o = strings.ReplaceAll(o, `*`, `\*`)
	o = strings.ReplaceAll(o, "~~", `\~\~`)
	o = strings.ReplaceAll(o, "||", `\|\|`)

	return
}

// EscapeCodeBlock replaces backticks with a lookalike so text stays inside
// the code block it is rendered in.
func EscapeCodeBlock(s string) string {
	return strings.ReplaceAll(s, "`", "ˋ")
}
