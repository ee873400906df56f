package provider

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/adapters/scanner"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/adapters/store"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the dependencies provider Graft node.
	NodeID graft.ID = "engine.provider"
	// CoalescingNodeID is the unique identifier for the coalescing provider Graft node.
	CoalescingNodeID graft.ID = "engine.provider.coalescing"
)

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			fs.CheckerNodeID,
			scanner.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Provider, error) {
			deps, err := graft.Dep[ports.DependencyStore](ctx)
			if err != nil {
				return nil, err
			}

			checker, err := graft.Dep[*fs.Checker](ctx)
			if err != nil {
				return nil, err
			}

			scan, err := graft.Dep[*scanner.Scanner](ctx)
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

			return New(
				deps,
				checker,
				NewPersisting(scan, deps),
				WithTracer(tracer),
				WithLogger(log),
			), nil
		},
	})

	graft.Register(graft.Node[*Coalescing]{
		ID:        CoalescingNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*Coalescing, error) {
			p, err := graft.Dep[*Provider](ctx)
			if err != nil {
				return nil, err
			}
			return NewCoalescing(p), nil
		},
	})
}
