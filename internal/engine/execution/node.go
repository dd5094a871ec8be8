package execution

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tasker/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tasker/internal/adapters/shell"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tasker/internal/adapters/workdir" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tasker/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "engine.executor"

func init() {
	graft.Register(graft.Node[*Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			shell.NodeID,
			workdir.NodeID,
		},
		Run: func(ctx context.Context) (*Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.ShellRunner](ctx)
			if err != nil {
				return nil, err
			}

			wd, err := graft.Dep[ports.WorkingDir](ctx)
			if err != nil {
				return nil, err
			}

			return New(runner, wd, log.Named("exec")), nil
		},
	})
}
