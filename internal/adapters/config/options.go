package config

import (
	"errors"
	"io"
	"os"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultOptionsFile is the name of the optional options file next to the entry script.
const DefaultOptionsFile = "tasker.yaml"

// LoadOptions reads RunOptions from a YAML file. Unknown keys are rejected.
// An empty file yields zero options.
func LoadOptions(path string) (domain.RunOptions, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by the build script
	if err != nil {
		return domain.RunOptions{}, zerr.With(zerr.Wrap(err, "failed to open options file"), "path", path)
	}
	defer func() { _ = f.Close() }()

	var opts domain.RunOptions
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return domain.RunOptions{}, zerr.With(zerr.Wrap(err, "failed to parse options file"), "path", path)
	}

	if opts.LogLevel != "" {
		if _, err := domain.ParseLogLevel(opts.LogLevel); err != nil {
			return domain.RunOptions{}, zerr.With(err, "path", path)
		}
	}

	return opts, nil
}
