// Package telemetry records execution progress using progrock.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/mk/internal/core/ports"
)

var _ ports.Reporter = (*Recorder)(nil)

// Recorder implements ports.Reporter on a progrock tape: one vertex per
// executed target, completed with its error. Close renders the tape, so the
// recording becomes the run's progress report.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	// Out receives the rendered tape on Close. Defaults to the process
	// stderr; tests override it.
	Out io.Writer

	mu       sync.Mutex
	vertices map[string]*progrock.VertexRecorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:        w,
		rec:      progrock.NewRecorder(w),
		Out:      os.Stderr,
		vertices: make(map[string]*progrock.VertexRecorder),
	}
}

// PlanResolved records the ordered target names of the resolved plan.
func (r *Recorder) PlanResolved(names []string) {
	v := r.rec.Vertex(digest.FromString("mk.plan"), "plan")
	_, _ = fmt.Fprintln(v.Stdout(), strings.Join(names, " "))
	v.Done(nil)
}

// TargetStarted opens a vertex for the target.
func (r *Recorder) TargetStarted(name string) {
	v := r.rec.Vertex(digest.FromString(name), name)
	r.mu.Lock()
	r.vertices[name] = v
	r.mu.Unlock()
}

// TargetFinished completes the target's vertex.
func (r *Recorder) TargetFinished(name string, err error) {
	r.mu.Lock()
	v, ok := r.vertices[name]
	delete(r.vertices, name)
	r.mu.Unlock()
	if ok {
		v.Done(err)
	}
}

// TargetSkipped records an up-to-date target as a cached vertex.
func (r *Recorder) TargetSkipped(name, reason string) {
	v := r.rec.Vertex(digest.FromString(name), name)
	_, _ = fmt.Fprintln(v.Stdout(), reason)
	v.Cached()
	v.Done(nil)
}

// Close renders the recorded tape to Out and closes the recording session.
func (r *Recorder) Close() error {
	if tape, ok := r.w.(*progrock.Tape); ok {
		if err := tape.Render(r.Out, progrock.DefaultUI()); err != nil {
			return err
		}
	}
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
