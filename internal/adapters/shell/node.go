package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tasker/internal/core/ports"
)

// NodeID is the unique identifier for the shell runner Graft node.
const NodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[ports.ShellRunner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ShellRunner, error) {
			return NewSystemRunner(), nil
		},
	})
}
