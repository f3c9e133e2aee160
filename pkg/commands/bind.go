package commands

import (
	"strconv"
	"time"

	pb2utils "github.com/pajbot/utils"

	"github.com/peterhenryd/rowifi-v4/pkg/utils"
)

// ParamType selects the parser applied to one token.
type ParamType int

const (
	ParamInt ParamType = iota
	ParamString
	ParamUser
	ParamRole
	ParamDuration
	// ParamRest captures all remaining text verbatim. Must be the last
	// declared parameter.
	ParamRest
)

func (t ParamType) describe() string {
	switch t {
	case ParamInt:
		return "number"
	case ParamString:
		return "word"
	case ParamUser:
		return "user mention or id"
	case ParamRole:
		return "role mention or id"
	case ParamDuration:
		return "duration (e.g. 1h5m)"
	case ParamRest:
		return "text"
	default:
		return "value"
	}
}

// Param declares one positional parameter of a command.
type Param struct {
	Name     string
	Type     ParamType
	Optional bool
	// Parse overrides the parser for this parameter. It receives one token
	// (or the full remaining text for ParamRest) and returns the bound value.
	Parse func(token string) (interface{}, error)
}

// Args holds the values bound for one invocation, keyed by parameter name.
// Accessors return zero values for absent optional parameters.
type Args struct {
	values map[string]interface{}
}

// Has reports whether the named parameter was bound.
func (a *Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

func (a *Args) Int(name string) int64 {
	v, _ := a.values[name].(int64)
	return v
}

func (a *Args) String(name string) string {
	v, _ := a.values[name].(string)
	return v
}

func (a *Args) Duration(name string) time.Duration {
	v, _ := a.values[name].(time.Duration)
	return v
}

// Value returns the raw bound value for custom-parsed parameters.
func (a *Args) Value(name string) interface{} {
	return a.values[name]
}

// Bind consumes tokens from args positionally according to params. A missing
// or unparsable required parameter yields a *ParseError; absent optional
// parameters bind to their zero value without consuming a token.
func Bind(params []Param, args *Arguments) (*Args, error) {
	bound := &Args{values: make(map[string]interface{}, len(params))}

	for _, p := range params {
		var raw string
		if p.Type == ParamRest {
			raw = args.Rest()
			if raw == "" {
				if p.Optional {
					continue
				}
				return nil, &ParseError{Param: p.Name, Expected: p.Type.describe()}
			}
		} else {
			token, ok := args.Next()
			if !ok {
				if p.Optional {
					continue
				}
				return nil, &ParseError{Param: p.Name, Expected: p.Type.describe()}
			}
			raw = token
		}

		value, err := parseParam(p, raw)
		if err != nil {
			return nil, &ParseError{Fragment: raw, Param: p.Name, Expected: p.Type.describe()}
		}
		bound.values[p.Name] = value
	}

	return bound, nil
}

func parseParam(p Param, raw string) (interface{}, error) {
	if p.Parse != nil {
		return p.Parse(raw)
	}

	switch p.Type {
	case ParamInt:
		return strconv.ParseInt(raw, 10, 64)
	case ParamString, ParamRest:
		return raw, nil
	case ParamUser:
		if id := utils.CleanUserID(raw); id != "" {
			return id, nil
		}
		return nil, &ParseError{Fragment: raw, Param: p.Name, Expected: p.Type.describe()}
	case ParamRole:
		if id := utils.CleanRoleID(raw); id != "" {
			return id, nil
		}
		return nil, &ParseError{Fragment: raw, Param: p.Name, Expected: p.Type.describe()}
	case ParamDuration:
		return pb2utils.ParseDuration(raw)
	default:
		return raw, nil
	}
}
