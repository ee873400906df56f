// Package progrock records per project part progress on a progrock tape.
package progrock

import (
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/depcache/internal/core/ports"
)

var _ ports.ProgressRecorder = (*Recorder)(nil)

// Recorder implements ports.ProgressRecorder using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Vertex starts recording the named project part. Vertices are keyed by
// name, so resolving the same part again reuses its vertex.
func (r *Recorder) Vertex(name string) ports.ProgressVertex {
	v := r.rec.Vertex(digest.FromString(name), name)
	return &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
