package progrock

import (
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/depcache/internal/core/ports"
)

var _ ports.ProgressVertex = (*Vertex)(nil)

// Vertex implements ports.ProgressVertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer to capture the vertex output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Cached marks the vertex as served from stored data.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}

// Complete marks the vertex as finished, successfully or with an error.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
