package watcher_test

import (
	"context"
	"slices"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/watcher"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/depcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInvalidator_InvalidatesAndNotifies(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		signatures := mocks.NewMockSignatureInvalidator(ctrl)
		signatures.EXPECT().Invalidate([]string{"/ws/a.h", "/ws/b.h"})

		inv := watcher.NewInvalidator(signatures, 50*time.Millisecond)

		events := make(chan ports.WatchEvent)
		done := make(chan struct{})
		go func() {
			defer close(done)
			inv.Run(context.Background(), func(yield func(ports.WatchEvent) bool) {
				for e := range events {
					if !yield(e) {
						return
					}
				}
			})
		}()

		events <- ports.WatchEvent{Path: "/ws/b.h", Operation: ports.OpWrite}
		events <- ports.WatchEvent{Path: "/ws/a.h", Operation: ports.OpCreate}

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		select {
		case paths := <-inv.Changes():
			assert.Equal(t, []string{"/ws/a.h", "/ws/b.h"}, paths)
		default:
			t.Fatal("expected a change notification")
		}

		close(events)
		<-done
	})
}

func TestInvalidator_FlushesOnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	signatures := mocks.NewMockSignatureInvalidator(ctrl)
	signatures.EXPECT().Invalidate([]string{"/ws/a.h"})

	inv := watcher.NewInvalidator(signatures, time.Hour)
	inv.Run(context.Background(), slices.Values([]ports.WatchEvent{{Path: "/ws/a.h", Operation: ports.OpRemove}}))

	require.Len(t, inv.Changes(), 1)
}

func TestInvalidator_CoalescesNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	signatures := mocks.NewMockSignatureInvalidator(ctrl)
	signatures.EXPECT().Invalidate(gomock.Any()).Times(2)

	inv := watcher.NewInvalidator(signatures, time.Hour)
	inv.Run(context.Background(), slices.Values([]ports.WatchEvent{{Path: "/ws/a.h"}}))
	inv.Run(context.Background(), slices.Values([]ports.WatchEvent{{Path: "/ws/b.h"}}))

	assert.Len(t, inv.Changes(), 1)
}
