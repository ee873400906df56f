package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/fs"     //nolint:depguard // Paths and signatures come from the fs adapter
	"go.trai.ch/depcache/internal/adapters/logger" //nolint:depguard // Scan diagnostics go through the logger adapter
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the include scanner Graft node.
const NodeID graft.ID = "adapter.scanner"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.PathCacheNodeID, fs.SignerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Scanner, error) {
			paths, err := graft.Dep[ports.SourcePathCache](ctx)
			if err != nil {
				return nil, err
			}
			signer, err := graft.Dep[ports.Signer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(paths, signer, log), nil
		},
	})
}
