package workdir

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tasker/internal/adapters/logger"
	"go.trai.ch/tasker/internal/core/ports"
)

// NodeID is the unique identifier for the working directory Graft node.
const NodeID graft.ID = "adapter.workdir"

func init() {
	graft.Register(graft.Node[ports.WorkingDir]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkingDir, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(log.Named("workdir")), nil
		},
	})
}
