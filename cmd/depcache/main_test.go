package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depcache/internal/app"
	"go.trai.ch/depcache/internal/core/ports/mocks"
	"go.trai.ch/depcache/internal/engine/provider"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader   *mocks.MockConfigLoader
	store    *mocks.MockDependencyStore
	progress *mocks.MockProgressRecorder
	logger   *mocks.MockLogger
}

func newApp(t *testing.T) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := appMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		store:    mocks.NewMockDependencyStore(ctrl),
		progress: mocks.NewMockProgressRecorder(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	// Every run closes the application on exit.
	m.store.EXPECT().Close().Return(nil)
	m.progress.EXPECT().Close().Return(nil)

	resolver := provider.NewCoalescing(provider.New(
		m.store,
		mocks.NewMockModifiedTimeChecker(ctrl),
		mocks.NewMockDependenciesGenerator(ctrl),
	))

	a := app.New(
		m.loader,
		resolver,
		mocks.NewMockHeaderResolver(ctrl),
		mocks.NewMockSourcePathCache(ctrl),
		m.store,
		mocks.NewMockResultPrinter(ctrl),
		m.progress,
		mocks.NewMockTracer(ctrl),
		m.logger,
	)
	return a, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	application, m := newApp(t)

	provide := func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: m.logger}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provide)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "depcache version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provide := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provide)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	application, m := newApp(t)

	m.loader.EXPECT().Load(".").Return(nil, errors.New("load failed"))
	m.logger.EXPECT().Error(gomock.Any())

	provide := func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: application, Logger: m.logger}, nil
	}

	exitCode := run(context.Background(), []string{"resolve", "core"}, new(bytes.Buffer), new(bytes.Buffer), provide)
	assert.Equal(t, 1, exitCode)
}

// TestRun_CloseError verifies that a failure to close the application is logged.
func TestRun_CloseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDependencyStore(ctrl)
	progress := mocks.NewMockProgressRecorder(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	store.EXPECT().Close().Return(errors.New("close failed"))
	progress.EXPECT().Close().Return(nil)
	logger.EXPECT().Error(gomock.Any())

	application := app.New(
		mocks.NewMockConfigLoader(ctrl),
		provider.NewCoalescing(provider.New(store, mocks.NewMockModifiedTimeChecker(ctrl), mocks.NewMockDependenciesGenerator(ctrl))),
		mocks.NewMockHeaderResolver(ctrl),
		mocks.NewMockSourcePathCache(ctrl),
		store,
		mocks.NewMockResultPrinter(ctrl),
		progress,
		mocks.NewMockTracer(ctrl),
		logger,
	)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer),
		func(_ context.Context) (*app.Components, error) {
			return &app.Components{App: application, Logger: logger}, nil
		})
	assert.Equal(t, 0, exitCode)
}
