package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/fs" //nolint:depguard // Paths are resolved through the fs adapter
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the result printer Graft node.
const NodeID graft.ID = "adapter.linear"

func init() {
	graft.Register(graft.Node[ports.ResultPrinter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.PathCacheNodeID},
		Run: func(ctx context.Context) (ports.ResultPrinter, error) {
			paths, err := graft.Dep[ports.SourcePathCache](ctx)
			if err != nil {
				return nil, err
			}
			return NewPrinter(paths), nil
		},
	})
}
