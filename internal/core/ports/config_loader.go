package ports

import "go.trai.ch/tasker/internal/core/domain"

// ArgsParser defines the interface for turning the raw command line into an invocation.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ArgsParser interface {
	// Parse splits argv (without the program name) into task names and flags.
	Parse(argv []string) (domain.Invocation, error)
}
