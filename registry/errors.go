package registry

import "fmt"

// DiscoveryError reports an entry-point or override reference that could not
// be resolved to a class-lister function. It is fatal at construction: a
// broken declaration means the registry is mis-configured.
type DiscoveryError struct {
	Ref   string
	Cause error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("resolving class lister %q: %v", e.Ref, e.Cause)
}

func (e *DiscoveryError) Unwrap() error { return e.Cause }

// ResolutionError reports a declared superclass whose own module or member
// could not be resolved. It is raised on the first query for that key only.
type ResolutionError struct {
	Superclass string
	Cause      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving superclass %q: %v", e.Superclass, e.Cause)
}

func (e *ResolutionError) Unwrap() error { return e.Cause }

// ScanError reports a module that failed to import during scanning. It is
// recorded in the registry diagnostics; scanning of the remaining modules
// continues.
type ScanError struct {
	Module string
	Cause  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scanning module %q: %v", e.Module, e.Cause)
}

func (e *ScanError) Unwrap() error { return e.Cause }
