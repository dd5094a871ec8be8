package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tasker/internal/core/ports"
)

// NodeID is the unique identifier for the argument parser Graft node.
const NodeID graft.ID = "adapter.args_parser"

func init() {
	graft.Register(graft.Node[ports.ArgsParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArgsParser, error) {
			return NewParser(), nil
		},
	})
}
