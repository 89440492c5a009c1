package ports

// StalenessChecker decides whether a file-backed target needs to run based on
// filesystem modification times.
//
//go:generate go run go.uber.org/mock/mockgen -source=staleness.go -destination=mocks/mock_staleness.go -package=mocks
type StalenessChecker interface {
	// IsStale reports whether path is missing or older than any of the given
	// prerequisite files. Missing prerequisite files are ignored; they belong
	// to phony targets that already ran. The returned reason is human
	// readable and only meaningful when stale is true.
	IsStale(path string, prereqs []string) (stale bool, reason string, err error)

	// Exists reports whether path is an existing regular file.
	Exists(path string) bool
}
