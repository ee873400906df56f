package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/linear"             //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/store"              //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/depcache/internal/engine/provider"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			provider.CoalescingNodeID,
			fs.ResolverNodeID,
			fs.PathCacheNodeID,
			fs.CheckerNodeID,
			store.NodeID,
			linear.NodeID,
			progrock.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*provider.Coalescing](ctx)
	if err != nil {
		return nil, err
	}

	headers, err := graft.Dep[ports.HeaderResolver](ctx)
	if err != nil {
		return nil, err
	}

	paths, err := graft.Dep[ports.SourcePathCache](ctx)
	if err != nil {
		return nil, err
	}

	checker, err := graft.Dep[*fs.Checker](ctx)
	if err != nil {
		return nil, err
	}

	deps, err := graft.Dep[ports.DependencyStore](ctx)
	if err != nil {
		return nil, err
	}

	printer, err := graft.Dep[ports.ResultPrinter](ctx)
	if err != nil {
		return nil, err
	}

	progress, err := graft.Dep[ports.ProgressRecorder](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, headers, paths, deps, printer, progress, tracer, log).
		WithWatcher(watchers, checker), nil
}
