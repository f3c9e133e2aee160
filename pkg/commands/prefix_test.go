package commands

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestResolvePrefix(t *testing.T) {
	c := qt.New(t)

	const botID = "646701695224643614"

	tests := []struct {
		content     string
		guildPrefix string
		rest        string
		result      PrefixResult
	}{
		{
			content: "!ping",
			rest:    "ping",
			result:  PrefixContent,
		},
		{
			content: "!  ping",
			rest:    "ping",
			result:  PrefixContent,
		},
		{
			content: "  !ping",
			rest:    "ping",
			result:  PrefixContent,
		},
		{
			content: "!",
			result:  PrefixOnly,
		},
		{
			content: "!   ",
			result:  PrefixOnly,
		},
		{
			content: "ping",
			result:  PrefixNone,
		},
		{
			content:     "?ping",
			guildPrefix: "?",
			rest:        "ping",
			result:      PrefixContent,
		},
		{
			// default prefix no longer applies once a guild prefix is set
			content:     "!ping",
			guildPrefix: "?",
			result:      PrefixNone,
		},
		{
			content: "<@" + botID + "> ping",
			rest:    "ping",
			result:  PrefixContent,
		},
		{
			content: "<@!" + botID + ">ping",
			rest:    "ping",
			result:  PrefixContent,
		},
		{
			content: "<@" + botID + ">",
			result:  PrefixOnly,
		},
		{
			content: "<@123> ping",
			result:  PrefixNone,
		},
	}

	for _, test := range tests {
		rest, result := ResolvePrefix(test.content, test.guildPrefix, "!", botID)
		c.Assert(result, qt.Equals, test.result, qt.Commentf("content=%q", test.content))
		c.Assert(rest, qt.Equals, test.rest, qt.Commentf("content=%q", test.content))
	}
}
