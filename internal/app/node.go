package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tasker/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tasker/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tasker/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/tasker/internal/adapters/workdir" //nolint:depguard // Wired in app layer
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/tasker/internal/engine/execution"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			workdir.NodeID,
			execution.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			parser, err := graft.Dep[ports.ArgsParser](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			wd, err := graft.Dep[ports.WorkingDir](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[*execution.Executor](ctx)
			if err != nil {
				return nil, err
			}

			return New(parser, log, wd, executor, shell.New), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
