package watcher

import (
	"context"
	"iter"
	"time"

	"go.trai.ch/depcache/internal/core/ports"
)

// Invalidator turns file events into signature invalidations and reports
// each debounced batch on Changes.
type Invalidator struct {
	signatures ports.SignatureInvalidator
	debouncer  *Debouncer
	changes    chan []string
}

// NewInvalidator creates an Invalidator that debounces events over window.
func NewInvalidator(signatures ports.SignatureInvalidator, window time.Duration) *Invalidator {
	i := &Invalidator{
		signatures: signatures,
		changes:    make(chan []string, 1),
	}
	i.debouncer = NewDebouncer(window, i.invalidate)
	return i
}

func (i *Invalidator) invalidate(paths []string) {
	i.signatures.Invalidate(paths)

	// One pending notification is enough: the signatures are already
	// invalidated and the consumer re-reads everything.
	select {
	case i.changes <- paths:
	default:
	}
}

// Changes reports batches of changed paths after their signatures were invalidated.
func (i *Invalidator) Changes() <-chan []string {
	return i.changes
}

// Run consumes events until they end or ctx is done, then flushes the
// pending batch.
func (i *Invalidator) Run(ctx context.Context, events iter.Seq[ports.WatchEvent]) {
	defer i.debouncer.Flush()

	for event := range events {
		if ctx.Err() != nil {
			return
		}
		i.debouncer.Add(event.Path)
	}
}
