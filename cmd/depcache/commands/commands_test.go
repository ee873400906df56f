package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/cmd/depcache/commands"
	"go.trai.ch/depcache/internal/app"
	"go.trai.ch/depcache/internal/build"
	"go.trai.ch/depcache/internal/core/domain"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, partNames []string, opts app.ResolveOptions) error
	watchFunc   func(ctx context.Context, partNames []string, opts app.ResolveOptions) error
	cleanFunc   func(ctx context.Context) error

	verbose bool
	logJSON bool
}

func (m *mockApp) Resolve(ctx context.Context, partNames []string, opts app.ResolveOptions) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, partNames, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, partNames []string, opts app.ResolveOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, partNames, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func (m *mockApp) ConfigureLogging(verbose, jsonMode bool) {
	m.verbose = verbose
	m.logJSON = jsonMode
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ResolveOptions
		var capturedParts []string

		mock := &mockApp{
			resolveFunc: func(_ context.Context, partNames []string, opts app.ResolveOptions) error {
				capturedOpts = opts
				capturedParts = partNames
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "core", "tools", "--json", "-j", "3", "--trace", "-v"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"core", "tools"}, capturedParts)
		assert.Equal(t, app.ResolveOptions{Format: domain.OutputJSON, Parallelism: 3, Trace: true}, capturedOpts)
		assert.True(t, mock.verbose)
		assert.False(t, mock.logJSON)
	})

	t.Run("defaults to every part and text output", func(t *testing.T) {
		called := false
		mock := &mockApp{
			resolveFunc: func(_ context.Context, partNames []string, opts app.ResolveOptions) error {
				called = true
				assert.Empty(t, partNames)
				assert.Equal(t, domain.OutputText, opts.Format)
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--log-json", "resolve"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.True(t, mock.logJSON)
	})

	t.Run("returns error on resolve failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ []string, _ app.ResolveOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"resolve", "core"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.ErrorContains(t, err, "simulated error")
	})
}

func TestCommands_Watch(t *testing.T) {
	var capturedParts []string
	var capturedOpts app.ResolveOptions

	mock := &mockApp{
		watchFunc: func(_ context.Context, partNames []string, opts app.ResolveOptions) error {
			capturedParts = partNames
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "core", "--parallelism", "2"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"core"}, capturedParts)
	assert.Equal(t, 2, capturedOpts.Parallelism)
}

func TestCommands_Clean(t *testing.T) {
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)

	cli = commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean", "extra"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "depcache version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "commit: "+build.Commit)
}
