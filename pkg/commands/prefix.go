package commands

import "strings"

// PrefixResult classifies what ResolvePrefix found at the head of a message.
type PrefixResult int

const (
	// PrefixNone means the message does not address the bot at all.
	PrefixNone PrefixResult = iota
	// PrefixOnly means a prefix was consumed but nothing follows it.
	PrefixOnly
	// PrefixContent means a prefix was consumed and content remains.
	PrefixContent
)

// ResolvePrefix strips the command prefix from content. The guild prefix
// override wins over the default prefix; a mention of the bot user works as a
// prefix too. Whitespace around the prefix is not significant: "!  ping" and
// "!ping" resolve the same way.
func ResolvePrefix(content, guildPrefix, defaultPrefix, botUserID string) (string, PrefixResult) {
	content = strings.TrimLeft(content, " \t\n")

	prefix := guildPrefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	var rest string
	switch {
	case prefix != "" && strings.HasPrefix(content, prefix):
		rest = content[len(prefix):]
	case botUserID != "" && strings.HasPrefix(content, "<@"+botUserID+">"):
		rest = content[len("<@"+botUserID+">"):]
	case botUserID != "" && strings.HasPrefix(content, "<@!"+botUserID+">"):
		rest = content[len("<@!"+botUserID+">"):]
	default:
		return "", PrefixNone
	}

	rest = strings.TrimLeft(rest, " \t\n")
	if rest == "" {
		return "", PrefixOnly
	}
	return rest, PrefixContent
}
