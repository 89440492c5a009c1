package telemetry

import "go.trai.ch/mk/internal/core/ports"

var _ ports.Reporter = (*Quiet)(nil)

// Quiet is a no-op Reporter for tests and non-interactive runs.
type Quiet struct{}

// NewQuiet creates a no-op Reporter.
func NewQuiet() *Quiet { return &Quiet{} }

func (*Quiet) PlanResolved([]string)        {}
func (*Quiet) TargetStarted(string)         {}
func (*Quiet) TargetFinished(string, error) {}
func (*Quiet) TargetSkipped(string, string) {}
func (*Quiet) Close() error                 { return nil }
