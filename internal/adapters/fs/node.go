package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/config" //nolint:depguard // Settings come from the config adapter
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the file walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the header resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// PathCacheNodeID is the unique identifier for the source path table Graft node.
	PathCacheNodeID graft.ID = "adapter.fs.path_cache"
	// SignerNodeID is the unique identifier for the file signer Graft node.
	SignerNodeID graft.ID = "adapter.fs.signer"
	// CheckerNodeID is the unique identifier for the freshness checker Graft node.
	CheckerNodeID graft.ID = "adapter.fs.checker"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.HeaderResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.HeaderResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker), nil
		},
	})

	graft.Register(graft.Node[ports.SourcePathCache]{
		ID:        PathCacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.SourcePathCache, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewPathCache(domain.PathTablePath(settings.StateDir))
		},
	})

	graft.Register(graft.Node[ports.Signer]{
		ID:        SignerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Signer, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewSigner(settings.Freshness)
		},
	})

	graft.Register(graft.Node[*Checker]{
		ID:        CheckerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{PathCacheNodeID, SignerNodeID},
		Run: func(ctx context.Context) (*Checker, error) {
			paths, err := graft.Dep[ports.SourcePathCache](ctx)
			if err != nil {
				return nil, err
			}
			signer, err := graft.Dep[ports.Signer](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(paths, signer), nil
		},
	})
}
