package ports

// Reporter receives progress events for one execution plan.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// PlanResolved signals the ordered set of targets about to run.
	PlanResolved(names []string)
	// TargetStarted signals that a target's recipe began executing.
	TargetStarted(name string)
	// TargetFinished signals completion; err is nil on success.
	TargetFinished(name string, err error)
	// TargetSkipped signals an up-to-date target that was not executed.
	TargetSkipped(name, reason string)
	// Close flushes the recording session.
	Close() error
}
