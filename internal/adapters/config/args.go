// Package config turns the command line and option files into domain values.
package config

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/zerr"
)

var numberPattern = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?$`)

// Parser implements ports.ArgsParser for free-form flags.
//
// Flags are not declared up front:
//   - "--name=value" sets name to value
//   - "--name" sets name to true, "--no-name" sets it to false
//   - "-abc" sets a, b and c to true, "-a=value" sets a to value
//   - "--" ends flag parsing; everything after it is a task name
//
// Values that look like numbers become int64 or float64, "true" and "false"
// become booleans, and a flag given more than once collects its values in a []any.
// A flag never consumes the following argument.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements ports.ArgsParser.
func (p *Parser) Parse(argv []string) (domain.Invocation, error) {
	return ParseArgs(argv)
}

// ParseArgs splits argv into positional task names and flags.
func ParseArgs(argv []string) (domain.Invocation, error) {
	inv := domain.Invocation{Args: make(map[string]any)}

	for i, arg := range argv {
		switch {
		case arg == "--":
			inv.Tasks = append(inv.Tasks, argv[i+1:]...)
			return inv, nil
		case strings.HasPrefix(arg, "--"):
			if err := parseLong(inv.Args, arg[2:]); err != nil {
				return domain.Invocation{}, zerr.With(err, "arg", arg)
			}
		case len(arg) > 1 && arg[0] == '-' && !numberPattern.MatchString(arg):
			if err := parseShort(inv.Args, arg[1:]); err != nil {
				return domain.Invocation{}, zerr.With(err, "arg", arg)
			}
		default:
			inv.Tasks = append(inv.Tasks, arg)
		}
	}

	return inv, nil
}

func parseLong(args map[string]any, body string) error {
	name, value, hasValue := strings.Cut(body, "=")
	if name == "" {
		return domain.ErrInvalidFlag
	}
	if hasValue {
		set(args, name, parseValue(value))
		return nil
	}
	if negated, ok := strings.CutPrefix(name, "no-"); ok {
		if negated == "" {
			return domain.ErrInvalidFlag
		}
		set(args, negated, false)
		return nil
	}
	set(args, name, true)
	return nil
}

func parseShort(args map[string]any, body string) error {
	if name, value, ok := strings.Cut(body, "="); ok {
		if name == "" {
			return domain.ErrInvalidFlag
		}
		set(args, name, parseValue(value))
		return nil
	}
	for _, r := range body {
		set(args, string(r), true)
	}
	return nil
}

func parseValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if !numberPattern.MatchString(raw) {
		return raw
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// set stores value under name, collecting repeated flags into a list.
func set(args map[string]any, name string, value any) {
	existing, ok := args[name]
	if !ok {
		args[name] = value
		return
	}
	if list, isList := existing.([]any); isList {
		args[name] = append(list, value)
		return
	}
	args[name] = []any{existing, value}
}

var _ ports.ArgsParser = (*Parser)(nil)
