// Package app implements the application layer for depcache.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/depcache/internal/adapters/telemetry"
	"go.trai.ch/depcache/internal/adapters/watcher"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/depcache/internal/engine/provider"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     provider.Resolver
	headers      ports.HeaderResolver
	paths        ports.SourcePathCache
	store        ports.DependencyStore
	printer      ports.ResultPrinter
	progress     ports.ProgressRecorder
	tracer       ports.Tracer
	logger       ports.Logger

	watchers   watcher.Factory
	signatures ports.SignatureInvalidator
	stdout     io.Writer

	closeOnce sync.Once
	closeErr  error
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver provider.Resolver,
	headers ports.HeaderResolver,
	paths ports.SourcePathCache,
	store ports.DependencyStore,
	printer ports.ResultPrinter,
	progress ports.ProgressRecorder,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		headers:      headers,
		paths:        paths,
		store:        store,
		printer:      printer,
		progress:     progress,
		tracer:       tracer,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithOutput sets where results are printed.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWatcher enables Watch. Changed paths are invalidated in signatures
// before parts are resolved again.
func (a *App) WithWatcher(factory watcher.Factory, signatures ports.SignatureInvalidator) *App {
	a.watchers = factory
	a.signatures = signatures
	return a
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	Format domain.OutputFormat
	// Parallelism overrides the configured number of concurrently resolved parts when positive.
	Parallelism int
	// Trace logs every resolution span.
	Trace bool
}

// ConfigureLogging switches the logger to verbose or JSON output when it supports it.
func (a *App) ConfigureLogging(verbose, jsonMode bool) {
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(jsonMode)
	}
}

// Resolve resolves the named project parts, or every part when none are
// named, and prints the results in the requested order.
func (a *App) Resolve(ctx context.Context, partNames []string, opts ResolveOptions) error {
	ws, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	parts, err := selectParts(ws, partNames)
	if err != nil {
		return err
	}

	if opts.Trace {
		shutdown := telemetry.Setup(telemetry.NewBridge(a.logger))
		defer func() {
			_ = shutdown(ctx)
		}()
	}

	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = p.Name
	}
	a.tracer.EmitPlan(ctx, names)

	limit := opts.Parallelism
	if limit <= 0 {
		limit = ws.Settings.Parallelism
	}
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results, err := a.resolveParts(ctx, ws.Root, parts, limit)
	if err != nil {
		return err
	}

	if err := a.paths.Flush(); err != nil {
		return err
	}

	return a.printer.Print(a.stdout, results, opts.Format)
}

func (a *App) resolveParts(
	ctx context.Context,
	root string,
	parts []domain.ProjectPart,
	limit int,
) ([]domain.PartResult, error) {
	results := make([]domain.PartResult, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, part := range parts {
		g.Go(func() error {
			vertex := a.progress.Vertex(part.Name)

			res, err := a.resolvePart(gctx, root, part)
			if err != nil {
				vertex.Complete(err)
				return zerr.With(zerr.Wrap(err, domain.ErrResolutionFailed.Error()), "project_part", part.Name)
			}

			if res.Regenerated {
				_, _ = fmt.Fprintf(vertex.Stdout(), "regenerated %d includes\n", len(res.Dependency.Includes))
			} else {
				vertex.Cached()
			}
			vertex.Complete(nil)

			a.logger.Debug(fmt.Sprintf("%s: %d includes, %d macros (regenerated: %t)",
				part.Name, len(res.Dependency.Includes), len(res.Dependency.UsedMacros), res.Regenerated))

			results[i] = domain.PartResult{Name: part.Name, Resolution: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *App) resolvePart(ctx context.Context, root string, part domain.ProjectPart) (domain.Resolution, error) {
	container, err := a.container(root, part)
	if err != nil {
		return domain.Resolution{}, err
	}
	return a.resolver.Resolve(ctx, container)
}

// container maps the paths of part to source ids.
func (a *App) container(root string, part domain.ProjectPart) (domain.ProjectPartContainer, error) {
	c := domain.ProjectPartContainer{
		Name:               part.Name,
		Arguments:          part.Arguments,
		CompilerMacros:     part.Macros,
		IncludeSearchPaths: part.IncludePaths,
	}

	if part.ProjectFile != "" {
		id, err := a.paths.SourceID(part.ProjectFile)
		if err != nil {
			return domain.ProjectPartContainer{}, err
		}
		c.ProjectFile = id
	}

	if len(part.Headers) == 0 {
		return c, nil
	}

	headers, err := a.headers.ResolveHeaders(part.Headers, root)
	if err != nil {
		return domain.ProjectPartContainer{}, err
	}

	c.EntryPoints = make([]domain.SourceID, 0, len(headers))
	for _, h := range headers {
		id, err := a.paths.SourceID(h)
		if err != nil {
			return domain.ProjectPartContainer{}, err
		}
		c.EntryPoints = append(c.EntryPoints, id)
	}

	return c, nil
}

func selectParts(ws *domain.Workspace, names []string) ([]domain.ProjectPart, error) {
	if len(names) == 0 {
		return ws.Parts, nil
	}

	parts := make([]domain.ProjectPart, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		part, ok := ws.Part(name)
		if !ok {
			return nil, zerr.With(domain.ErrProjectPartNotFound, "project_part", name)
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// Watch resolves the parts once and then again after every debounced batch
// of file changes below the workspace root, until ctx is done. Failed
// re-resolutions are logged and watching continues.
func (a *App) Watch(ctx context.Context, partNames []string, opts ResolveOptions) error {
	if a.watchers == nil {
		return domain.ErrWatchUnavailable
	}

	if err := a.Resolve(ctx, partNames, opts); err != nil {
		return err
	}

	settings, err := a.configLoader.LoadSettings(".")
	if err != nil {
		return err
	}

	w, err := a.watchers()
	if err != nil {
		return err
	}
	if err := w.Start(ctx, settings.Root); err != nil {
		_ = w.Stop()
		return err
	}

	invalidator := watcher.NewInvalidator(a.signatures, watcher.DefaultDebounceWindow)
	done := make(chan struct{})
	go func() {
		defer close(done)
		invalidator.Run(ctx, w.Events())
	}()
	defer func() {
		_ = w.Stop()
		<-done
	}()

	a.logger.Info(fmt.Sprintf("watching %s for changes", settings.Root))

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-invalidator.Changes():
			paths = outside(paths, settings.StateDir)
			if len(paths) == 0 {
				continue
			}
			a.logger.Info(fmt.Sprintf("%d file(s) changed, resolving", len(paths)))
			if err := a.Resolve(ctx, partNames, opts); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.logger.Error(err)
			}
		}
	}
}

// outside drops the paths below dir.
func outside(paths []string, dir string) []string {
	dir = filepath.Clean(dir)
	prefix := dir + string(filepath.Separator)
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == dir || strings.HasPrefix(p, prefix) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// Clean closes the dependency store and removes the state directory.
func (a *App) Clean(_ context.Context) error {
	settings, err := a.configLoader.LoadSettings(".")
	if err != nil {
		return err
	}

	if err := a.Close(); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("removing %s...", settings.StateDir))
	if err := os.RemoveAll(settings.StateDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFailedToClean.Error()), "path", settings.StateDir)
	}
	a.logger.Info(fmt.Sprintf("removed %s", settings.StateDir))

	return nil
}

// Close releases the dependency store and the progress recorder. It is safe
// to call more than once.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.closeErr = errors.Join(a.store.Close(), a.progress.Close())
	})
	return a.closeErr
}
