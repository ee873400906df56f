package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/config" //nolint:depguard // Settings come from the config adapter
	"go.trai.ch/depcache/internal/adapters/logger" //nolint:depguard // Badger logs through the logger adapter
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the dependency store Graft node.
const NodeID graft.ID = "adapter.dependency_store"

func init() {
	graft.Register(graft.Node[ports.DependencyStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DependencyStore, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return Open(settings, log)
		},
	})
}
