package domain

import "go.trai.ch/zerr"

// Invocation is the parsed command line: positional task names plus every flag.
type Invocation struct {
	Tasks []string
	Args  map[string]any
}

// LogFlag is the flag that selects the log level from the command line.
const LogFlag = "log"

// LogLevelFlag returns the value of --log, or "" when the flag is absent.
// A value that is not a single level name, such as --log=1 or a repeated --log, is an error.
func (i Invocation) LogLevelFlag() (string, error) {
	v, ok := i.Args[LogFlag]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", zerr.With(zerr.Wrap(ErrInvalidLogLevel, "failed to read --"+LogFlag), "value", v)
	}
	return s, nil
}
