package commands

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestBindRequired(t *testing.T) {
	c := qt.New(t)

	params := []Param{
		{Name: "group_id", Type: ParamInt},
		{Name: "name", Type: ParamString},
	}

	args, err := Bind(params, NewArguments("42 def"))
	c.Assert(err, qt.IsNil)
	c.Assert(args.Int("group_id"), qt.Equals, int64(42))
	c.Assert(args.String("name"), qt.Equals, "def")
}

func TestBindParseFailure(t *testing.T) {
	c := qt.New(t)

	params := []Param{
		{Name: "group_id", Type: ParamInt},
		{Name: "name", Type: ParamString},
	}

	_, err := Bind(params, NewArguments("abc def"))
	c.Assert(err, qt.Not(qt.IsNil))

	parseErr, ok := err.(*ParseError)
	c.Assert(ok, qt.IsTrue)
	c.Assert(parseErr.Fragment, qt.Equals, "abc")
	c.Assert(parseErr.Param, qt.Equals, "group_id")
	c.Assert(parseErr.Expected, qt.Equals, "number")
}

func TestBindMissingRequired(t *testing.T) {
	c := qt.New(t)

	params := []Param{
		{Name: "group_id", Type: ParamInt},
	}

	_, err := Bind(params, NewArguments(""))
	parseErr, ok := err.(*ParseError)
	c.Assert(ok, qt.IsTrue)
	c.Assert(parseErr.Fragment, qt.Equals, "")
	c.Assert(parseErr.Param, qt.Equals, "group_id")
}

func TestBindOptionalAbsent(t *testing.T) {
	c := qt.New(t)

	params := []Param{
		{Name: "user", Type: ParamUser, Optional: true},
	}

	args, err := Bind(params, NewArguments(""))
	c.Assert(err, qt.IsNil)
	c.Assert(args.Has("user"), qt.IsFalse)
	c.Assert(args.String("user"), qt.Equals, "")
}

func TestBindUser(t *testing.T) {
	c := qt.New(t)

	params := []Param{
		{Name: "user", Type: ParamUser},
	}

	args, err := Bind(params, NewArguments("<@!646701695224643614>"))
	c.Assert(err, qt.IsNil)
	c.Assert(args.String("user"), qt.Equals, "646701695224643614")
}

func TestBindRest(t *testing.T) {
	c := qt.New(t)

	params := []Param{
		{Name: "group_id", Type: ParamInt},
		{Name: "reason", Type: ParamRest, Optional: true},
	}

	// rest keeps inner whitespace verbatim
	args, err := Bind(params, NewArguments("17 was  seen   griefing"))
	c.Assert(err, qt.IsNil)
	c.Assert(args.String("reason"), qt.Equals, "was  seen   griefing")

	args, err = Bind(params, NewArguments("17"))
	c.Assert(err, qt.IsNil)
	c.Assert(args.Has("reason"), qt.IsFalse)
}

func TestBindDuration(t *testing.T) {
	c := qt.New(t)

	params := []Param{
		{Name: "window", Type: ParamDuration},
	}

	args, err := Bind(params, NewArguments("1h5m"))
	c.Assert(err, qt.IsNil)
	c.Assert(args.Duration("window"), qt.Equals, time.Hour+5*time.Minute)
}
